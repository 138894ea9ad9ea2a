package scraper_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"scrape-digest/internal/infra/scraper"
)

const quotesFixture = `
<html><body>
<div class="quote">
  <span class="text">“The world as we have created it is a process of our thinking.”</span>
  <span>by <small class="author">Albert Einstein</small></span>
  <div class="tags">
    <a class="tag" href="/tag/change">change</a>
    <a class="tag" href="/tag/deep-thoughts">deep-thoughts</a>
  </div>
</div>
<div class="quote">
  <span class="text">“It is our choices that show what we truly are.”</span>
  <span>by <small class="author">J.K. Rowling</small></span>
  <div class="tags">
    <a class="tag" href="/tag/abilities">abilities</a>
  </div>
</div>
<div class="quote">
  <span class="text">“There are only two ways to live your life.”</span>
  <span>by <small class="author">Albert Einstein</small></span>
  <div class="tags">
    <a class="tag" href="/tag/inspirational">inspirational</a>
  </div>
</div>
</body></html>`

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestQuoteStrategy_LimitAndShape(t *testing.T) {
	doc := parseDoc(t, quotesFixture)

	records := scraper.QuoteStrategy{}.Extract(doc, "http://quotes.toscrape.com", 2)

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for i, rec := range records {
		if rec.Author == "" {
			t.Errorf("record %d has empty author", i)
		}
		if !strings.Contains(rec.Content, "Tags: ") {
			t.Errorf("record %d content missing tag list: %q", i, rec.Content)
		}
		if !strings.HasPrefix(rec.Title, "Quote by ") {
			t.Errorf("record %d title = %q, want Quote by prefix", i, rec.Title)
		}
		if rec.SourceURL != "http://quotes.toscrape.com" {
			t.Errorf("record %d source = %q", i, rec.SourceURL)
		}
	}

	if got, want := records[0].Title, "Quote by Albert Einstein"; got != want {
		t.Errorf("first title = %q, want %q", got, want)
	}
	if !strings.Contains(records[0].Content, "Tags: change, deep-thoughts") {
		t.Errorf("first content = %q, want joined tags", records[0].Content)
	}
}

func TestQuoteStrategy_SkipsMalformedContainer(t *testing.T) {
	const fixture = `
<html><body>
<div class="quote"><span class="text">“No author on this one.”</span></div>
<div class="quote">
  <span class="text">“A complete quote survives.”</span>
  <small class="author">Jane Austen</small>
</div>
</body></html>`
	doc := parseDoc(t, fixture)

	records := scraper.QuoteStrategy{}.Extract(doc, "http://quotes.toscrape.com", 5)

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (malformed container skipped)", len(records))
	}
	if records[0].Author != "Jane Austen" {
		t.Errorf("author = %q, want %q", records[0].Author, "Jane Austen")
	}
}

func TestQuoteStrategy_EmptyDocument(t *testing.T) {
	doc := parseDoc(t, "<html><body><p>nothing here</p></body></html>")

	if records := (scraper.QuoteStrategy{}).Extract(doc, "http://quotes.toscrape.com", 5); len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}
