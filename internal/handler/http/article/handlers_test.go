package article_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"scrape-digest/internal/domain/entity"
	"scrape-digest/internal/handler/http/article"
	artUC "scrape-digest/internal/usecase/article"
	scrapeUC "scrape-digest/internal/usecase/scrape"
	"scrape-digest/internal/utils/text"
)

// memRepo is an in-memory ArticleRepository for handler tests.
type memRepo struct {
	articles map[int64]*entity.Article
	nextID   int64
}

func newMemRepo(arts ...*entity.Article) *memRepo {
	repo := &memRepo{articles: make(map[int64]*entity.Article)}
	for _, a := range arts {
		repo.articles[a.ID] = a
		if a.ID > repo.nextID {
			repo.nextID = a.ID
		}
	}
	return repo
}

func (m *memRepo) Create(_ context.Context, a *entity.Article) (int64, error) {
	m.nextID++
	a.ID = m.nextID
	m.articles[a.ID] = a
	return a.ID, nil
}

func (m *memRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	return m.articles[id], nil
}

func (m *memRepo) List(_ context.Context, offset, limit int) ([]*entity.Article, error) {
	all := make([]*entity.Article, 0, len(m.articles))
	for _, a := range m.articles {
		all = append(all, a)
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (m *memRepo) Count(context.Context) (int64, error) {
	return int64(len(m.articles)), nil
}

func (m *memRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.articles[id]; !ok {
		return 0, nil
	}
	delete(m.articles, id)
	return 1, nil
}

func (m *memRepo) DeleteBatch(_ context.Context, ids []int64) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if _, ok := m.articles[id]; ok {
			delete(m.articles, id)
			deleted++
		}
	}
	return deleted, nil
}

type fixedExtractor struct{ records []entity.Record }

func (f fixedExtractor) Extract(_ context.Context, _ string, limit int) []entity.Record {
	if limit < len(f.records) {
		return f.records[:limit]
	}
	return f.records
}

type fixedSummarizer struct{ summary string }

func (f fixedSummarizer) SummarizeArticle(context.Context, string, string, string) string {
	return f.summary
}

func storedArticle(id int64) *entity.Article {
	return &entity.Article{
		ID: id, Title: "Stored title", Author: "gopher",
		Content: "stored content", Summary: "stored summary",
		SourceURL: "https://example.com",
		CreatedAt: time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC),
	}
}

func newMux(repo *memRepo, records ...entity.Record) *http.ServeMux {
	scrapeSvc := &scrapeUC.Service{
		Extractor:  fixedExtractor{records: records},
		Normalizer: text.NewNormalizer(nil),
		Summarizer: fixedSummarizer{summary: "A summary."},
		Repo:       repo,
	}
	articleSvc := &artUC.Service{Repo: repo}

	mux := http.NewServeMux()
	article.Register(mux, scrapeSvc, articleSvc)
	return mux
}

func TestScrapeHandler(t *testing.T) {
	repo := newMemRepo()
	mux := newMux(repo, entity.Record{
		Title: "T", Author: "a", Content: "c", SourceURL: "https://example.com",
	})

	body := strings.NewReader(`{"url": "https://example.com", "limit": 5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scrape-and-summarize", body)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	var resp article.ScrapeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ArticlesProcessed != 1 || len(resp.ArticleIDs) != 1 {
		t.Errorf("resp = %+v, want 1 processed", resp)
	}
	if len(repo.articles) != 1 {
		t.Errorf("stored %d articles, want 1", len(repo.articles))
	}
}

func TestScrapeHandler_NoRecords(t *testing.T) {
	mux := newMux(newMemRepo())

	body := strings.NewReader(`{"url": "https://example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scrape-and-summarize", body)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestScrapeHandler_BadRequest(t *testing.T) {
	mux := newMux(newMemRepo())

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"url":`},
		{name: "missing url", body: `{}`},
		{name: "bad scheme", body: `{"url": "ftp://example.com"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/scrape-and-summarize", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	mux := newMux(newMemRepo(storedArticle(1)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/get-summary/1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	var dto article.DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.ID != 1 || dto.Title != "Stored title" {
		t.Errorf("dto = %+v", dto)
	}
	if dto.CreatedAt != "2026-08-23T10:00:00Z" {
		t.Errorf("created_at = %q, want RFC3339", dto.CreatedAt)
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	mux := newMux(newMemRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/get-summary/42", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetHandler_InvalidID(t *testing.T) {
	mux := newMux(newMemRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/get-summary/abc", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListHandler(t *testing.T) {
	mux := newMux(newMemRepo(storedArticle(1), storedArticle(2), storedArticle(3)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?skip=0&limit=2", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	var resp article.ListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 3 || len(resp.Articles) != 2 || resp.Limit != 2 {
		t.Errorf("resp total=%d page=%d limit=%d", resp.Total, len(resp.Articles), resp.Limit)
	}
}

func TestListHandler_DefaultsOnBadParams(t *testing.T) {
	mux := newMux(newMemRepo(storedArticle(1)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?skip=x&limit=-5", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with defaults", rec.Code)
	}

	var resp article.ListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Skip != 0 || resp.Limit != 100 {
		t.Errorf("skip=%d limit=%d, want defaults 0 and 100", resp.Skip, resp.Limit)
	}
}

func TestDeleteHandler(t *testing.T) {
	repo := newMemRepo(storedArticle(1))
	mux := newMux(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/articles/1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	if len(repo.articles) != 0 {
		t.Error("article not deleted")
	}

	// Deleting again reports not found.
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/articles/1", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestBatchDeleteHandler(t *testing.T) {
	repo := newMemRepo(storedArticle(1), storedArticle(2))
	mux := newMux(repo)

	body := strings.NewReader(`[1, 2, 99]`)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/articles", body)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	if len(repo.articles) != 0 {
		t.Error("articles not deleted")
	}
}

func TestBatchDeleteHandler_NoIDs(t *testing.T) {
	mux := newMux(newMemRepo())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/articles", strings.NewReader(`[]`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestBatchDeleteHandler_NoneMatched(t *testing.T) {
	mux := newMux(newMemRepo())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/articles", strings.NewReader(`[7, 8]`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
