package article

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"scrape-digest/internal/domain/entity"
	"scrape-digest/internal/handler/http/respond"
	scrapeUC "scrape-digest/internal/usecase/scrape"
)

// ScrapeRequest is the body of POST /api/v1/scrape-and-summarize.
type ScrapeRequest struct {
	URL   string `json:"url"`
	Limit int    `json:"limit"`
}

// ScrapeResponse reports the outcome of one scrape-and-summarize run.
type ScrapeResponse struct {
	Message           string  `json:"message"`
	ArticlesProcessed int     `json:"articles_processed"`
	ArticleIDs        []int64 `json:"article_ids"`
}

// ScrapeHandler runs the scrape-and-summarize pipeline for a requested URL.
type ScrapeHandler struct{ Svc *scrapeUC.Service }

// ServeHTTP handles POST /api/v1/scrape-and-summarize.
// Responds 404 when the page yields no records and 400 on invalid input.
func (h ScrapeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	result, err := h.Svc.ScrapeAndSummarize(r.Context(), req.URL, req.Limit)
	if err != nil {
		code := http.StatusInternalServerError
		var vErr *entity.ValidationError
		if errors.Is(err, scrapeUC.ErrNoArticles) {
			code = http.StatusNotFound
		} else if errors.As(err, &vErr) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, ScrapeResponse{
		Message:           fmt.Sprintf("Successfully processed %d articles", result.Processed),
		ArticlesProcessed: result.Processed,
		ArticleIDs:        result.IDs,
	})
}
