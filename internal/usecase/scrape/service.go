// Package scrape implements the scrape-and-summarize pipeline: fetch a page,
// extract article records, normalize their content, summarize each one, and
// persist the results.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"scrape-digest/internal/domain/entity"
	"scrape-digest/internal/observability/metrics"
	"scrape-digest/internal/repository"
	"scrape-digest/internal/utils/text"
)

// Extractor fetches a page and extracts up to limit article records.
type Extractor interface {
	Extract(ctx context.Context, url string, limit int) []entity.Record
}

// Summarizer produces a summary for article content. Implementations return
// placeholder text instead of errors so the pipeline never stops on a
// summarization fault.
type Summarizer interface {
	SummarizeArticle(ctx context.Context, title, content, author string) string
}

// DefaultLimit is the number of records extracted per page when the caller
// does not specify one.
const DefaultLimit = 10

// summaryMaxSentences caps the stored summary length after postprocessing.
const summaryMaxSentences = 5

// Service wires the extraction, normalization, summarization, and
// persistence stages together.
type Service struct {
	Extractor  Extractor
	Normalizer *text.Normalizer
	Summarizer Summarizer
	Repo       repository.ArticleRepository
}

// Result reports the outcome of one pipeline run.
type Result struct {
	Processed int
	IDs       []int64
}

// ScrapeAndSummarize runs the full pipeline against url.
// Returns ErrNoArticles when the page yields no records. Summarization and
// storage faults on individual records are logged and skipped; the run
// succeeds if at least one record was extracted.
func (s *Service) ScrapeAndSummarize(ctx context.Context, url string, limit int) (*Result, error) {
	if err := entity.ValidateURL(url); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	records := s.Extractor.Extract(ctx, url, limit)
	if len(records) == 0 {
		return nil, ErrNoArticles
	}
	metrics.RecordArticlesScraped(url, len(records))

	slog.InfoContext(ctx, "extracted records",
		slog.String("url", url),
		slog.Int("count", len(records)))

	result := &Result{IDs: make([]int64, 0, len(records))}
	for i, rec := range records {
		id, err := s.processRecord(ctx, rec)
		if err != nil {
			metrics.RecordArticleStoreFailure()
			slog.ErrorContext(ctx, "record dropped",
				slog.String("url", url),
				slog.Int("index", i),
				slog.String("title", rec.Title),
				slog.Any("error", err))
			continue
		}
		metrics.RecordArticleStored()
		result.Processed++
		result.IDs = append(result.IDs, id)
	}
	return result, nil
}

// processRecord normalizes, summarizes, and stores one extracted record.
func (s *Service) processRecord(ctx context.Context, rec entity.Record) (int64, error) {
	// Stopwords stay in: the summarizer needs the full wording, cleanup
	// here only strips markup and noise characters. The stored content
	// keeps the original extracted form.
	cleaned := s.Normalizer.Normalize(rec.Content, false)
	if cleaned == "" {
		return 0, fmt.Errorf("no content after normalization")
	}

	start := time.Now()
	summary := s.Summarizer.SummarizeArticle(ctx, rec.Title, cleaned, rec.Author)
	metrics.RecordSummarizationDuration(time.Since(start))

	summary = text.PostprocessSummary(summary, summaryMaxSentences)

	article := &entity.Article{
		Title:     rec.Title,
		Author:    rec.AuthorOrUnknown(),
		Content:   rec.Content,
		Summary:   summary,
		SourceURL: rec.SourceURL,
	}
	if err := entity.ValidateArticle(article); err != nil {
		return 0, err
	}

	id, err := s.Repo.Create(ctx, article)
	if err != nil {
		return 0, fmt.Errorf("store article: %w", err)
	}
	return id, nil
}
