// Package text provides the deterministic text-processing pipeline: input
// normalization, sentence segmentation, and summary post-processing. All
// functions are pure and safe to call from any goroutine.
package text

// CountRunes counts the number of Unicode characters (runes) in the given
// text. It correctly handles multi-byte characters by counting runes instead
// of bytes, so length limits behave the same for ASCII and non-ASCII input.
func CountRunes(text string) int {
	return len([]rune(text))
}
