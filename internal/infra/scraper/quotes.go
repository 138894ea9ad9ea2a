package scraper

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"scrape-digest/internal/domain/entity"
)

// QuoteStrategy extracts quotes from the quotes.toscrape.com layout:
// repeated div.quote containers holding the quote text, the author, and a
// list of tag links. A container missing its text or author is skipped
// without aborting the rest of the batch.
type QuoteStrategy struct{}

// Extract returns up to limit quote records from doc.
func (QuoteStrategy) Extract(doc *goquery.Document, sourceURL string, limit int) []entity.Record {
	var records []entity.Record

	doc.Find("div.quote").EachWithBreak(func(i int, quote *goquery.Selection) bool {
		if len(records) >= limit {
			return false
		}

		quoteText := strings.TrimSpace(quote.Find("span.text").Text())
		author := strings.TrimSpace(quote.Find("small.author").Text())
		if quoteText == "" || author == "" {
			slog.Debug("skipping malformed quote container", slog.Int("index", i))
			return true
		}

		tags := make([]string, 0, 4)
		quote.Find("a.tag").Each(func(_ int, tag *goquery.Selection) {
			tags = append(tags, tag.Text())
		})

		records = append(records, entity.Record{
			Title:     fmt.Sprintf("Quote by %s", author),
			Author:    author,
			Content:   fmt.Sprintf("%s\n\nTags: %s", quoteText, strings.Join(tags, ", ")),
			SourceURL: sourceURL,
		})
		return true
	})

	return records
}
