package article

import (
	"errors"
	"fmt"
	"net/http"

	"scrape-digest/internal/handler/http/pathutil"
	"scrape-digest/internal/handler/http/respond"
	artUC "scrape-digest/internal/usecase/article"
)

// DeleteHandler serves DELETE /api/v1/articles/{id}.
type DeleteHandler struct{ Svc *artUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/v1/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Article %d deleted successfully", id),
	})
}
