package pathutil

import "strings"

// NormalizePath replaces numeric path segments with :id so that metrics
// labels stay bounded. Query strings are stripped.
//
//	/api/v1/get-summary/123 -> /api/v1/get-summary/:id
//	/api/v1/articles        -> /api/v1/articles
func NormalizePath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	segments := strings.Split(path, "/")
	changed := false
	for i, seg := range segments {
		if seg != "" && isNumeric(seg) {
			segments[i] = ":id"
			changed = true
		}
	}
	if !changed {
		return path
	}
	return strings.Join(segments, "/")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
