package scrape

import "errors"

// ErrNoArticles is returned when the page yields no extractable records.
var ErrNoArticles = errors.New("no articles found at the given url")
