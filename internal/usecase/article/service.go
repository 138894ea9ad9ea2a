// Package article provides article retrieval and deletion use cases.
package article

import (
	"context"
	"fmt"

	"scrape-digest/internal/domain/entity"
	"scrape-digest/internal/repository"
)

// Service provides article management use cases. It handles validation and
// delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// ListResult contains one page of articles plus the total stored count.
type ListResult struct {
	Articles []*entity.Article
	Total    int64
}

// BatchDeleteResult reports how a batch delete went.
type BatchDeleteResult struct {
	Requested int
	Deleted   int64
}

// Get retrieves a single article by ID.
// Returns ErrInvalidArticleID for non-positive IDs and ErrArticleNotFound
// when the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}
	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// List retrieves one page of articles ordered newest first, along with the
// total count. Negative skip is clamped to 0; non-positive limit falls back
// to 100.
func (s *Service) List(ctx context.Context, skip, limit int) (*ListResult, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}

	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	articles, err := s.Repo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return &ListResult{Articles: articles, Total: total}, nil
}

// Delete removes a single article by ID.
// Returns ErrArticleNotFound when no row was deleted.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if deleted == 0 {
		return ErrArticleNotFound
	}
	return nil
}

// DeleteBatch removes the articles with the given IDs. IDs that do not exist
// are skipped; the result reports how many rows were actually deleted.
func (s *Service) DeleteBatch(ctx context.Context, ids []int64) (*BatchDeleteResult, error) {
	if len(ids) == 0 {
		return nil, ErrNoIDs
	}
	for _, id := range ids {
		if id <= 0 {
			return nil, ErrInvalidArticleID
		}
	}

	deleted, err := s.Repo.DeleteBatch(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("delete articles: %w", err)
	}
	return &BatchDeleteResult{Requested: len(ids), Deleted: deleted}, nil
}
