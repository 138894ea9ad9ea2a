// Package repository defines the persistence interfaces consumed by the
// usecase layer. Concrete implementations live under infra/adapter.
package repository

import (
	"context"

	"scrape-digest/internal/domain/entity"
)

// ArticleRepository defines storage operations for scraped articles.
type ArticleRepository interface {
	// Create stores a new article and returns its assigned ID.
	Create(ctx context.Context, article *entity.Article) (int64, error)

	// Get retrieves an article by ID.
	// Returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id int64) (*entity.Article, error)

	// List retrieves articles ordered by creation time (newest first).
	// offset rows are skipped and at most limit rows are returned.
	List(ctx context.Context, offset, limit int) ([]*entity.Article, error)

	// Count returns the total number of stored articles.
	Count(ctx context.Context) (int64, error)

	// Delete removes an article by ID and returns the number of deleted
	// rows. Returns 0 (not an error) if the article did not exist.
	Delete(ctx context.Context, id int64) (int64, error)

	// DeleteBatch removes the articles with the given IDs and returns the
	// number of deleted rows. Missing IDs are skipped silently.
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
}
