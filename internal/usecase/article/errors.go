package article

import "errors"

var (
	// ErrArticleNotFound is returned when no article exists for the given ID.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID is returned when the ID is not a positive integer.
	ErrInvalidArticleID = errors.New("article id must be a positive integer")

	// ErrNoIDs is returned when a batch delete is requested with no IDs.
	ErrNoIDs = errors.New("at least one article id is required")
)
