// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Article and
// Record, along with their validation rules and domain-specific errors.
package entity

import "time"

// UnknownAuthor is the sentinel stored when no author could be extracted.
const UnknownAuthor = "Unknown"

// Article represents a scraped article together with its generated summary.
// It is the persisted form of a Record after the processing pipeline has run.
type Article struct {
	ID        int64
	Title     string
	Author    string
	Content   string
	Summary   string
	SourceURL string
	CreatedAt time.Time
}

// Record is one extracted candidate article, quote, or post before
// normalization, summarization, and persistence. Records carry no identity
// beyond their position in the extraction batch.
type Record struct {
	Title     string
	Author    string // empty when the extraction strategy found no author
	Content   string
	SourceURL string
}

// AuthorOrUnknown returns the record's author, falling back to the
// UnknownAuthor sentinel when the strategy emitted no author.
func (r Record) AuthorOrUnknown() string {
	if r.Author == "" {
		return UnknownAuthor
	}
	return r.Author
}
