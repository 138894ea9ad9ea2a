package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"scrape-digest/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Message   string                 `json:"message"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks,omitempty"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler reports API liveness and database connectivity.
type HealthHandler struct {
	DB *sql.DB
}

// ServeHTTP checks database connectivity and returns 200 when healthy or
// 503 when any check fails.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	healthy := true

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			checks["database"] = CheckStatus{Status: "unhealthy", Message: err.Error()}
			healthy = false
		} else {
			checks["database"] = CheckStatus{Status: "healthy"}
		}
	} else {
		checks["database"] = CheckStatus{Status: "unhealthy", Message: "not configured"}
		healthy = false
	}

	status := "healthy"
	message := "API is running"
	statusCode := http.StatusOK
	if !healthy {
		status = "unhealthy"
		message = "one or more checks failed"
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}
