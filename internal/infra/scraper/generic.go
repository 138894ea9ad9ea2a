package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"scrape-digest/internal/domain/entity"
)

// maxGenericContentLength caps the body text of a generically extracted
// article, in runes.
const maxGenericContentLength = 2000

// GenericStrategy is the fallback for sites without a dedicated strategy. It
// scans for article-shaped containers: article elements first, then divs
// whose class mentions "post", then divs whose class mentions "article". The
// candidate lists are concatenated in that order and truncated to the limit.
type GenericStrategy struct{}

// Extract returns up to limit heuristically located article records from doc.
// Documents with no matching containers yield an empty slice.
func (GenericStrategy) Extract(doc *goquery.Document, sourceURL string, limit int) []entity.Record {
	candidates := collectCandidates(doc, limit)

	records := make([]entity.Record, 0, len(candidates))
	for i, candidate := range candidates {
		title := extractTitle(candidate)
		if title == "" {
			title = fmt.Sprintf("Article %d", i+1)
		}

		// Drop embedded script/style content before reading text.
		candidate.Find("script, style").Remove()

		content := strings.TrimSpace(candidate.Text())
		if runes := []rune(content); len(runes) > maxGenericContentLength {
			content = string(runes[:maxGenericContentLength])
		}

		records = append(records, entity.Record{
			Title:     title,
			Author:    entity.UnknownAuthor,
			Content:   content,
			SourceURL: sourceURL,
		})
	}
	return records
}

// collectCandidates gathers potential article containers in priority order:
// article tags, then "post"-classed divs, then "article"-classed divs.
func collectCandidates(doc *goquery.Document, limit int) []*goquery.Selection {
	var candidates []*goquery.Selection

	doc.Find("article").Each(func(_ int, sel *goquery.Selection) {
		candidates = append(candidates, sel)
	})
	candidates = append(candidates, divsWithClassContaining(doc, "post")...)
	candidates = append(candidates, divsWithClassContaining(doc, "article")...)

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// divsWithClassContaining returns div elements whose class attribute contains
// the given substring, case-insensitively.
func divsWithClassContaining(doc *goquery.Document, sub string) []*goquery.Selection {
	var out []*goquery.Selection
	doc.Find("div[class]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if strings.Contains(strings.ToLower(class), sub) {
			out = append(out, sel)
		}
	})
	return out
}

// extractTitle picks the candidate's title from the first h1, h2, h3, or
// title element, in that order. Returns "" when none is present.
func extractTitle(sel *goquery.Selection) string {
	for _, tag := range []string{"h1", "h2", "h3", "title"} {
		if heading := sel.Find(tag).First(); heading.Length() > 0 {
			return strings.TrimSpace(heading.Text())
		}
	}
	return ""
}
