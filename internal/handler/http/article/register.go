package article

import (
	"net/http"

	artUC "scrape-digest/internal/usecase/article"
	scrapeUC "scrape-digest/internal/usecase/scrape"
)

// Register wires the /api/v1 article routes onto mux.
func Register(mux *http.ServeMux, scrapeSvc *scrapeUC.Service, articleSvc *artUC.Service) {
	mux.Handle("POST /api/v1/scrape-and-summarize", ScrapeHandler{Svc: scrapeSvc})
	mux.Handle("GET /api/v1/get-summary/", GetHandler{Svc: articleSvc})
	mux.Handle("GET /api/v1/articles", ListHandler{Svc: articleSvc})
	mux.Handle("DELETE /api/v1/articles", BatchDeleteHandler{Svc: articleSvc})
	mux.Handle("DELETE /api/v1/articles/", DeleteHandler{Svc: articleSvc})
}
