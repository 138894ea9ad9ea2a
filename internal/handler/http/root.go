package http

import (
	"net/http"

	"scrape-digest/internal/handler/http/respond"
)

// RootHandler serves the API banner at /.
type RootHandler struct {
	Version string
}

// ServeHTTP returns the service name, version, and entry points.
func (h RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "Scrape Digest API",
		"version": h.Version,
		"health":  "/health",
		"api":     "/api/v1",
	})
}
