// Package article provides HTTP handlers for the scrape-and-summarize and
// article endpoints under /api/v1.
package article

import (
	"time"

	"scrape-digest/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	Summary   string `json:"summary"`
	SourceURL string `json:"source_url"`
	CreatedAt string `json:"created_at"`
}

// toDTO maps a stored article to its transfer form. The author falls back
// to the Unknown sentinel and the timestamp is ISO 8601.
func toDTO(a *entity.Article) DTO {
	author := a.Author
	if author == "" {
		author = entity.UnknownAuthor
	}
	createdAt := ""
	if !a.CreatedAt.IsZero() {
		createdAt = a.CreatedAt.UTC().Format(time.RFC3339)
	}
	return DTO{
		ID:        a.ID,
		Title:     a.Title,
		Author:    author,
		Content:   a.Content,
		Summary:   a.Summary,
		SourceURL: a.SourceURL,
		CreatedAt: createdAt,
	}
}
