package text

import (
	"regexp"
	"strings"
)

var (
	htmlTagRE    = regexp.MustCompile(`<[^>]+>`)
	urlRE        = regexp.MustCompile(`https?://[A-Za-z0-9$\-_@.&+!*(),%/?=#~]+`)
	emailRE      = regexp.MustCompile(`\S+@\S+`)
	whitespaceRE = regexp.MustCompile(`\s+`)
	// Characters outside word characters, whitespace, and basic punctuation.
	specialCharRE = regexp.MustCompile(`[^\w\s.,!?;:\-'"()]`)
	nonWordRE     = regexp.MustCompile(`[^\w\s]`)
)

// Normalizer cleans and normalizes raw article text before summarization.
// The stopword set is injected at construction time so locale or domain
// specific lists can be substituted without touching the pipeline.
type Normalizer struct {
	stopwords map[string]struct{}
}

// NewNormalizer creates a Normalizer with the given stopword list.
// A nil or empty list falls back to the default English stopword set.
func NewNormalizer(stopwords []string) *Normalizer {
	if len(stopwords) == 0 {
		stopwords = DefaultStopwords()
	}
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Normalizer{stopwords: set}
}

// Normalize cleans text in a fixed order: HTML tags, URLs, and email
// addresses are removed, whitespace runs collapse to a single space,
// characters outside the basic punctuation whitelist are stripped, and the
// result is lowercased. When removeStopwords is true, tokens present in the
// stopword set are dropped. Empty input yields an empty string; the function
// never fails.
func (n *Normalizer) Normalize(text string, removeStopwords bool) string {
	if text == "" {
		return ""
	}

	s := htmlTagRE.ReplaceAllString(text, "")
	s = urlRE.ReplaceAllString(s, "")
	s = emailRE.ReplaceAllString(s, "")
	s = whitespaceRE.ReplaceAllString(s, " ")
	s = specialCharRE.ReplaceAllString(s, "")
	s = strings.ToLower(s)

	if removeStopwords {
		words := strings.Fields(s)
		kept := make([]string, 0, len(words))
		for _, w := range words {
			if _, ok := n.stopwords[w]; !ok {
				kept = append(kept, w)
			}
		}
		s = strings.Join(kept, " ")
	}

	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

// CleanHTML removes HTML tags from text.
func CleanHTML(text string) string {
	return htmlTagRE.ReplaceAllString(text, "")
}

// NormalizeWhitespace collapses whitespace runs to single spaces and trims.
func NormalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}

// RemoveSpecialCharacters strips special characters from text. When
// keepBasicPunctuation is true the basic punctuation set (. , ! ? ; : - ' " ( ))
// is preserved; otherwise only word characters and whitespace remain.
func RemoveSpecialCharacters(text string, keepBasicPunctuation bool) string {
	if keepBasicPunctuation {
		return specialCharRE.ReplaceAllString(text, "")
	}
	return nonWordRE.ReplaceAllString(text, "")
}
