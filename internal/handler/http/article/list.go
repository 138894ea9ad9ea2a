package article

import (
	"net/http"
	"strconv"

	"scrape-digest/internal/handler/http/respond"
	artUC "scrape-digest/internal/usecase/article"
)

// defaultListLimit caps one page of articles when the client sends no limit.
const defaultListLimit = 100

// ListResponse is one page of articles plus the total stored count.
type ListResponse struct {
	Articles []DTO `json:"articles"`
	Total    int64 `json:"total"`
	Skip     int   `json:"skip"`
	Limit    int   `json:"limit"`
}

// ListHandler serves GET /api/v1/articles?skip=N&limit=M.
type ListHandler struct{ Svc *artUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", defaultListLimit)

	result, err := h.Svc.List(r.Context(), skip, limit)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Articles))
	for _, a := range result.Articles {
		dtos = append(dtos, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, ListResponse{
		Articles: dtos,
		Total:    result.Total,
		Skip:     skip,
		Limit:    limit,
	})
}

// queryInt parses an integer query parameter, returning fallback on missing
// or malformed values.
func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return fallback
	}
	return val
}
