package text

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Defaults for summary post-processing and length-bounded truncation.
const (
	DefaultMaxSentences = 5
	DefaultMaxChars     = 500

	// boundaryRatio is how far into the truncation window a sentence end must
	// sit for the cut to land on it instead of the hard limit.
	boundaryRatio = 0.7
)

var (
	boldRE     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRE   = regexp.MustCompile(`\*(.*?)\*`)
	codeRE     = regexp.MustCompile("`(.*?)`")
	bulletRE   = regexp.MustCompile(`(?m)^[-•*]\s+`)
	numberedRE = regexp.MustCompile(`(?m)^\d+\.\s+`)

	htmlEntityRE = regexp.MustCompile(`&[a-zA-Z]+;`)
	multiDotRE   = regexp.MustCompile(`\.{2,}`)
	multiBangRE  = regexp.MustCompile(`!{2,}`)
	multiQmarkRE = regexp.MustCompile(`\?{2,}`)
)

// PostprocessSummary cleans a raw model-generated summary: whitespace is
// collapsed, markdown bold/italic/code delimiters and list markers are
// stripped, the text is segmented into sentences, only the first maxSentences
// are kept, and a terminal period is appended when missing. A non-positive
// maxSentences uses DefaultMaxSentences. Empty input yields an empty string;
// the function never fails.
func PostprocessSummary(summary string, maxSentences int) string {
	if summary == "" {
		return ""
	}
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}

	s := strings.TrimSpace(whitespaceRE.ReplaceAllString(summary, " "))

	s = boldRE.ReplaceAllString(s, "$1")
	s = italicRE.ReplaceAllString(s, "$1")
	s = codeRE.ReplaceAllString(s, "$1")

	s = bulletRE.ReplaceAllString(s, "")
	s = numberedRE.ReplaceAllString(s, "")

	sentences := SplitSentences(s)
	if len(sentences) > maxSentences {
		sentences = sentences[:maxSentences]
	}

	out := strings.TrimSpace(strings.Join(sentences, " "))
	if out != "" && !strings.HasSuffix(out, ".") {
		out += "."
	}
	return out
}

// LimitLength bounds text to maxChars runes, preferring to cut at a sentence
// boundary. If the rightmost sentence-ending punctuation inside the window
// sits past 70% of maxChars the cut lands there (inclusive); otherwise the
// text is hard-truncated at maxChars with "..." appended. A non-positive
// maxChars uses DefaultMaxChars.
func LimitLength(text string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}

	truncated := runes[:maxChars]
	lastEnd := -1
	for i, r := range truncated {
		if isSentenceEnd(r) {
			lastEnd = i
		}
	}

	if float64(lastEnd) > float64(maxChars)*boundaryRatio {
		return string(runes[:lastEnd+1])
	}
	return string(truncated) + "..."
}

// CleanFormatting removes markdown delimiters, HTML entities, and runs of
// repeated terminal punctuation from text.
func CleanFormatting(text string) string {
	s := boldRE.ReplaceAllString(text, "$1")
	s = italicRE.ReplaceAllString(s, "$1")
	s = codeRE.ReplaceAllString(s, "$1")

	s = htmlEntityRE.ReplaceAllString(s, "")

	s = multiDotRE.ReplaceAllString(s, ".")
	s = multiBangRE.ReplaceAllString(s, "!")
	s = multiQmarkRE.ReplaceAllString(s, "?")

	return strings.TrimSpace(s)
}

// EnsureSentenceCompletion appends a period when text does not already end
// with sentence-ending punctuation.
func EnsureSentenceCompletion(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	last, _ := utf8.DecodeLastRuneInString(text)
	if !isSentenceEnd(last) {
		text += "."
	}
	return text
}
