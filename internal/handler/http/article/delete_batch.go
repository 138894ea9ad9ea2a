package article

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"scrape-digest/internal/handler/http/respond"
	artUC "scrape-digest/internal/usecase/article"
)

// BatchDeleteHandler serves DELETE /api/v1/articles. The request body is a
// bare JSON array of article IDs.
type BatchDeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes the requested articles. Responds 400 when no IDs are
// given and 404 when none of the IDs matched a stored article.
func (h BatchDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var ids []int64
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		respond.Error(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	result, err := h.Svc.DeleteBatch(r.Context(), ids)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrNoIDs) || errors.Is(err, artUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	if result.Deleted == 0 {
		respond.Error(w, http.StatusNotFound,
			fmt.Errorf("no articles found for the provided ids"))
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "Articles deleted successfully",
		"deleted": result.Deleted,
	})
}
