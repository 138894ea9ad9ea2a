package scraper_test

import (
	"testing"

	"scrape-digest/internal/infra/scraper"
)

const hackerNewsFixture = `
<html><body><table>
<tr class="athing" id="1">
  <td><span class="titleline"><a href="https://example.com/go-release">Go 1.25 released</a></span></td>
</tr>
<tr>
  <td class="subtext"><a class="hnuser" href="user?id=gopher">gopher</a> 3 hours ago</td>
</tr>
<tr class="athing" id="2">
  <td><span class="titleline"><a href="https://example.com/db-post">A database story</a></span></td>
</tr>
<tr>
  <td class="subtext">no user link here</td>
</tr>
<tr class="athing" id="3">
  <td>row without a titleline</td>
</tr>
</table></body></html>`

func TestHackerNewsStrategy(t *testing.T) {
	doc := parseDoc(t, hackerNewsFixture)

	records := scraper.HackerNewsStrategy{}.Extract(doc, "https://news.ycombinator.com", 5)

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (row without title link skipped)", len(records))
	}

	first := records[0]
	if first.Title != "Go 1.25 released" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Author != "gopher" {
		t.Errorf("author = %q, want submitter from sibling row", first.Author)
	}
	if want := "Title: Go 1.25 released\nLink: https://example.com/go-release"; first.Content != want {
		t.Errorf("content = %q, want %q", first.Content, want)
	}

	// Second row's metadata row has no hnuser link.
	if records[1].Author != "Unknown" {
		t.Errorf("author = %q, want Unknown fallback", records[1].Author)
	}
}

func TestHackerNewsStrategy_Limit(t *testing.T) {
	doc := parseDoc(t, hackerNewsFixture)

	records := scraper.HackerNewsStrategy{}.Extract(doc, "https://news.ycombinator.com", 1)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}
