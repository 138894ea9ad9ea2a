package db

import (
	"database/sql"
	"fmt"
)

// MigrateUp creates the articles table and its indexes if they do not exist.
// The DDL is chosen per dialect; both shapes store the same columns.
func MigrateUp(pool *sql.DB, dialect Dialect) error {
	var ddl string
	switch dialect {
	case DialectPostgres:
		ddl = `
CREATE TABLE IF NOT EXISTS articles (
    id         SERIAL PRIMARY KEY,
    title      TEXT NOT NULL,
    author     TEXT NOT NULL DEFAULT 'Unknown',
    content    TEXT NOT NULL,
    summary    TEXT,
    source_url TEXT NOT NULL,
    created_at TIMESTAMPTZ DEFAULT now()
)`
	default:
		ddl = `
CREATE TABLE IF NOT EXISTS articles (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    title      TEXT NOT NULL,
    author     TEXT NOT NULL DEFAULT 'Unknown',
    content    TEXT NOT NULL,
    summary    TEXT,
    source_url TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`
	}
	if _, err := pool.Exec(ddl); err != nil {
		return fmt.Errorf("create articles table: %w", err)
	}

	indexes := []string{
		// List orders by created_at DESC.
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_source_url ON articles(source_url)`,
	}
	for _, idx := range indexes {
		if _, err := pool.Exec(idx); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
