package entity

import (
	"fmt"
	"net/url"
)

// maxURLLength bounds accepted URLs to keep oversized input out of the store.
const maxURLLength = 2048

// ValidateURL validates the format of a URL used as a scrape target or
// article source. It checks that the URL is well-formed, uses an HTTP or
// HTTPS scheme, and has a host. Returns a ValidationError when invalid.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "URL is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "url", Message: "URL is not well-formed"}
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "URL must use http or https scheme"}
	}

	if parsed.Host == "" {
		return &ValidationError{Field: "url", Message: "URL must have a valid host"}
	}

	return nil
}

// ValidateArticle checks that an article satisfies the persistence
// invariants: title and content are never empty, and the source URL is valid.
func ValidateArticle(a *Article) error {
	if a.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if a.Content == "" {
		return &ValidationError{Field: "content", Message: "is required"}
	}
	return ValidateURL(a.SourceURL)
}
