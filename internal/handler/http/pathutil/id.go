// Package pathutil provides helpers for working with URL paths: extracting
// numeric IDs from path suffixes and normalizing paths for metrics labels.
package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the path suffix is not a positive integer.
var ErrInvalidID = errors.New("invalid id in path")

// ExtractID parses the numeric ID following prefix in path.
// Returns ErrInvalidID when the suffix is missing, non-numeric, or not
// positive.
func ExtractID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
