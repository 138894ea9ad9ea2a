// Package sqlite provides the SQLite implementation of the article
// repository.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"scrape-digest/internal/domain/entity"
	"scrape-digest/internal/repository"
)

// ArticleRepo implements repository.ArticleRepository using SQLite.
type ArticleRepo struct{ db *sql.DB }

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) (int64, error) {
	const query = `
INSERT INTO articles (title, author, content, summary, source_url)
VALUES (?, ?, ?, ?, ?)`
	result, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Author, article.Content, article.Summary, article.SourceURL)
	if err != nil {
		return 0, fmt.Errorf("Create: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("Create: LastInsertId: %w", err)
	}
	article.ID = id
	return id, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, author, content, summary, source_url, created_at
FROM articles
WHERE id = ?
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Title, &article.Author, &article.Content,
			&article.Summary, &article.SourceURL, &article.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) List(ctx context.Context, offset, limit int) ([]*entity.Article, error) {
	const query = `
SELECT id, title, author, content, summary, source_url, created_at
FROM articles
ORDER BY created_at DESC
LIMIT ? OFFSET ?`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.Title, &article.Author,
			&article.Content, &article.Summary, &article.SourceURL, &article.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM articles WHERE id = ?`
	result, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("Delete: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	return deleted, nil
}

func (repo *ArticleRepo) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := fmt.Sprintf(`DELETE FROM articles WHERE id IN (%s)`, placeholders)

	result, err := repo.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("DeleteBatch: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteBatch: RowsAffected: %w", err)
	}
	return deleted, nil
}
