package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minSentenceLength is the shortest fragment (after trimming) kept by
// SplitSentences. Anything at or below this length is treated as noise.
const minSentenceLength = 5

// SplitSentences splits text into sentences. A boundary is sentence-ending
// punctuation (. ! ?) followed by whitespace and then an uppercase letter;
// the whitespace is consumed and the uppercase letter starts the next
// sentence. This is a heuristic, not a grammar-aware segmenter: it will
// under-split text lacking capitalization after terminal punctuation and
// over-split abbreviations followed by a capitalized word. Fragments of five
// characters or fewer after trimming are discarded.
func SplitSentences(text string) []string {
	runes := []rune(text)
	var parts []string
	start := 0

	for i := 0; i < len(runes); i++ {
		if !isSentenceEnd(runes[i]) {
			continue
		}
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		// Boundary requires at least one whitespace rune and an uppercase
		// letter after it.
		if j == i+1 || j >= len(runes) || !unicode.IsUpper(runes[j]) {
			continue
		}
		parts = append(parts, string(runes[start:i+1]))
		start = j
		i = j - 1
	}
	if start < len(runes) {
		parts = append(parts, string(runes[start:]))
	}

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) > minSentenceLength {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
