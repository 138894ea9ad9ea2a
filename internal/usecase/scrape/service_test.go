package scrape_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"scrape-digest/internal/domain/entity"
	"scrape-digest/internal/usecase/scrape"
	"scrape-digest/internal/utils/text"
)

type stubExtractor struct {
	records []entity.Record
	url     string
	limit   int
}

func (s *stubExtractor) Extract(_ context.Context, url string, limit int) []entity.Record {
	s.url = url
	s.limit = limit
	if limit < len(s.records) {
		return s.records[:limit]
	}
	return s.records
}

type stubSummarizer struct {
	summary string
	calls   int
}

func (s *stubSummarizer) SummarizeArticle(_ context.Context, _, _, _ string) string {
	s.calls++
	return s.summary
}

type stubRepo struct {
	created []*entity.Article
	err     error
	nextID  int64
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.nextID++
	a.ID = s.nextID
	s.created = append(s.created, a)
	return s.nextID, nil
}

func (s *stubRepo) Get(context.Context, int64) (*entity.Article, error) { return nil, nil }
func (s *stubRepo) List(context.Context, int, int) ([]*entity.Article, error) {
	return nil, nil
}
func (s *stubRepo) Count(context.Context) (int64, error)                { return 0, nil }
func (s *stubRepo) Delete(context.Context, int64) (int64, error)        { return 0, nil }
func (s *stubRepo) DeleteBatch(context.Context, []int64) (int64, error) { return 0, nil }

func newService(ext *stubExtractor, sum *stubSummarizer, repo *stubRepo) *scrape.Service {
	return &scrape.Service{
		Extractor:  ext,
		Normalizer: text.NewNormalizer(nil),
		Summarizer: sum,
		Repo:       repo,
	}
}

func TestService_ScrapeAndSummarize(t *testing.T) {
	ext := &stubExtractor{records: []entity.Record{
		{Title: "First", Author: "gopher", Content: "Some <b>content</b> here.", SourceURL: "https://example.com"},
		{Title: "Second", Content: "More content here.", SourceURL: "https://example.com"},
	}}
	sum := &stubSummarizer{summary: "A generated summary."}
	repo := &stubRepo{}

	result, err := newService(ext, sum, repo).ScrapeAndSummarize(context.Background(), "https://example.com", 5)
	if err != nil {
		t.Fatalf("ScrapeAndSummarize: %v", err)
	}

	if result.Processed != 2 || len(result.IDs) != 2 {
		t.Fatalf("processed=%d ids=%v, want 2", result.Processed, result.IDs)
	}
	if sum.calls != 2 {
		t.Errorf("summarizer calls = %d, want 2", sum.calls)
	}
	if len(repo.created) != 2 {
		t.Fatalf("stored %d articles, want 2", len(repo.created))
	}

	// Stored content keeps the extracted form; only the summarizer input
	// is cleaned.
	first := repo.created[0]
	if first.Content != "Some <b>content</b> here." {
		t.Errorf("content = %q, want original extracted form", first.Content)
	}
	if first.Summary != "A generated summary." {
		t.Errorf("summary = %q", first.Summary)
	}
	// Missing author is stored as the Unknown sentinel.
	if repo.created[1].Author != entity.UnknownAuthor {
		t.Errorf("author = %q, want %q", repo.created[1].Author, entity.UnknownAuthor)
	}
}

func TestService_ScrapeAndSummarize_NoRecords(t *testing.T) {
	svc := newService(&stubExtractor{}, &stubSummarizer{summary: "s"}, &stubRepo{})

	_, err := svc.ScrapeAndSummarize(context.Background(), "https://example.com", 5)
	if !errors.Is(err, scrape.ErrNoArticles) {
		t.Fatalf("err = %v, want ErrNoArticles", err)
	}
}

func TestService_ScrapeAndSummarize_InvalidURL(t *testing.T) {
	svc := newService(&stubExtractor{}, &stubSummarizer{}, &stubRepo{})

	for _, url := range []string{"", "ftp://example.com", "not a url"} {
		if _, err := svc.ScrapeAndSummarize(context.Background(), url, 5); err == nil {
			t.Errorf("ScrapeAndSummarize(%q) succeeded, want validation error", url)
		}
	}
}

func TestService_ScrapeAndSummarize_DefaultLimit(t *testing.T) {
	ext := &stubExtractor{records: []entity.Record{
		{Title: "T", Content: "c", SourceURL: "https://example.com"},
	}}
	svc := newService(ext, &stubSummarizer{summary: "s"}, &stubRepo{})

	if _, err := svc.ScrapeAndSummarize(context.Background(), "https://example.com", 0); err != nil {
		t.Fatalf("ScrapeAndSummarize: %v", err)
	}
	if ext.limit != scrape.DefaultLimit {
		t.Errorf("limit = %d, want %d", ext.limit, scrape.DefaultLimit)
	}
}

func TestService_ScrapeAndSummarize_StorageFaultSkipsRecord(t *testing.T) {
	ext := &stubExtractor{records: []entity.Record{
		{Title: "T", Content: "c", SourceURL: "https://example.com"},
	}}
	repo := &stubRepo{err: errors.New("disk full")}
	svc := newService(ext, &stubSummarizer{summary: "s"}, repo)

	result, err := svc.ScrapeAndSummarize(context.Background(), "https://example.com", 5)
	if err != nil {
		t.Fatalf("ScrapeAndSummarize: %v", err)
	}
	if result.Processed != 0 || len(result.IDs) != 0 {
		t.Fatalf("processed=%d, want 0 when storage fails", result.Processed)
	}
}

func TestService_ScrapeAndSummarize_SummaryPostprocessed(t *testing.T) {
	ext := &stubExtractor{records: []entity.Record{
		{Title: "T", Content: "c", SourceURL: "https://example.com"},
	}}
	sum := &stubSummarizer{summary: "**Bold point.** Second sentence here. Third sentence here"}
	repo := &stubRepo{}
	svc := newService(ext, sum, repo)

	if _, err := svc.ScrapeAndSummarize(context.Background(), "https://example.com", 5); err != nil {
		t.Fatalf("ScrapeAndSummarize: %v", err)
	}

	got := repo.created[0].Summary
	if strings.Contains(got, "**") {
		t.Errorf("summary keeps markdown: %q", got)
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("summary not sentence-terminated: %q", got)
	}
}
