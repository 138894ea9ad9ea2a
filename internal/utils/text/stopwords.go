package text

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultStopwords is the built-in English stopword set used when no custom
// list is configured.
var defaultStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
	"has", "he", "in", "is", "it", "its", "of", "on", "that", "the",
	"to", "was", "will", "with", "this", "but", "they", "have", "had",
	"what", "said", "each", "which", "their", "time", "if", "up", "out",
	"many", "then", "them", "these", "so", "some", "her", "would",
	"make", "like", "into", "him", "two", "more", "go", "no",
	"way", "could", "my", "than", "first", "been", "call", "who",
	"oil", "now", "find", "long", "down", "day", "did", "get",
	"come", "made", "may", "part",
}

// DefaultStopwords returns a copy of the built-in English stopword list.
func DefaultStopwords() []string {
	out := make([]string, len(defaultStopwords))
	copy(out, defaultStopwords)
	return out
}

// stopwordsFile is the YAML shape accepted by LoadStopwords.
type stopwordsFile struct {
	Stopwords []string `yaml:"stopwords"`
}

// LoadStopwords reads a stopword list from a YAML file of the form:
//
//	stopwords:
//	  - the
//	  - and
//
// It returns an error when the file cannot be read or parsed, or when the
// list is empty. Callers typically fall back to DefaultStopwords on error.
func LoadStopwords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stopwords file: %w", err)
	}

	var f stopwordsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse stopwords file: %w", err)
	}
	if len(f.Stopwords) == 0 {
		return nil, fmt.Errorf("stopwords file %s contains no entries", path)
	}
	return f.Stopwords, nil
}
