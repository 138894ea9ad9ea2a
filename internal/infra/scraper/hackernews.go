package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"scrape-digest/internal/domain/entity"
)

// HackerNewsStrategy extracts items from the news.ycombinator.com front page
// layout: tr.athing rows carrying the title link, with the submitter in the
// following metadata row. Rows without a title link are skipped; a missing
// metadata row or submitter falls back to the Unknown author sentinel.
type HackerNewsStrategy struct{}

// Extract returns up to limit item records from doc.
func (HackerNewsStrategy) Extract(doc *goquery.Document, sourceURL string, limit int) []entity.Record {
	var records []entity.Record

	doc.Find("tr.athing").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if len(records) >= limit {
			return false
		}

		titleLink := row.Find("span.titleline a").First()
		if titleLink.Length() == 0 {
			return true
		}
		title := strings.TrimSpace(titleLink.Text())
		link := titleLink.AttrOr("href", "")

		// The submitter lives in the next sibling metadata row.
		author := entity.UnknownAuthor
		if next := row.Next(); next.Length() > 0 {
			if user := strings.TrimSpace(next.Find("a.hnuser").Text()); user != "" {
				author = user
			}
		}

		records = append(records, entity.Record{
			Title:     title,
			Author:    author,
			Content:   fmt.Sprintf("Title: %s\nLink: %s", title, link),
			SourceURL: sourceURL,
		})
		return true
	})

	return records
}
