// Package scraper extracts article-like records from web pages. A Scraper
// fetches a document and routes it to one of several extraction strategies
// based on the source URL; unknown sites fall back to a generic heuristic
// scan for article-shaped containers.
package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"scrape-digest/internal/domain/entity"
)

const (
	maxBodySize = 10 * 1024 * 1024 // 10MB
	userAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Strategy extracts records from a parsed document. Implementations must not
// return more than limit records and must skip malformed items rather than
// failing the whole document.
type Strategy interface {
	Extract(doc *goquery.Document, sourceURL string, limit int) []entity.Record
}

// route pairs a URL predicate with the strategy handling matching sources.
type route struct {
	match    func(url string) bool
	strategy Strategy
}

// Scraper fetches pages and dispatches extraction by source URL. Routes are
// evaluated in order and the first match wins; the generic strategy handles
// everything else.
type Scraper struct {
	client   *http.Client
	routes   []route
	fallback Strategy
}

// New creates a Scraper with the default site routes: the quotes.toscrape.com
// quote layout, the news.ycombinator.com item-row layout, and the generic
// heuristic fallback for all other URLs.
func New(client *http.Client) *Scraper {
	if client == nil {
		client = http.DefaultClient
	}
	return &Scraper{
		client: client,
		routes: []route{
			{match: matchSubstring("quotes.toscrape.com"), strategy: &QuoteStrategy{}},
			{match: matchSubstring("news.ycombinator.com"), strategy: &HackerNewsStrategy{}},
		},
		fallback: &GenericStrategy{},
	}
}

func matchSubstring(sub string) func(string) bool {
	return func(url string) bool { return strings.Contains(url, sub) }
}

// Extract fetches the page at url and extracts up to limit records using the
// strategy matching the URL. Fetch and parse failures are logged and yield an
// empty slice; extraction is non-fatal to the caller.
func (s *Scraper) Extract(ctx context.Context, url string, limit int) []entity.Record {
	if limit <= 0 {
		return nil
	}
	doc, err := s.fetchDocument(ctx, url)
	if err != nil {
		slog.Error("scrape failed", slog.String("url", url), slog.Any("error", err))
		return nil
	}
	return s.strategyFor(url).Extract(doc, url, limit)
}

// strategyFor returns the first strategy whose predicate matches url, or the
// generic fallback.
func (s *Scraper) strategyFor(url string) Strategy {
	for _, r := range s.routes {
		if r.match(url) {
			return r.strategy
		}
	}
	return s.fallback
}

// fetchDocument retrieves and parses the HTML document at url.
func (s *Scraper) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	// Limit body size to prevent memory exhaustion.
	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	return doc, nil
}
