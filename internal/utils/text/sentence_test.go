package text_test

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"scrape-digest/internal/utils/text"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "two sentences",
			input:    "Hello world. This Is Two.",
			expected: []string{"Hello world.", "This Is Two."},
		},
		{
			name:     "exclamation and question boundaries",
			input:    "What a day! Is it over? Nearly there.",
			expected: []string{"What a day!", "Is it over?", "Nearly there."},
		},
		{
			name:  "no capital after period does not split",
			input: "versions 1.2 and 1.3 are out. they ship today",
			// The lowercase continuation keeps everything in one fragment.
			expected: []string{"versions 1.2 and 1.3 are out. they ship today"},
		},
		{
			name:     "short fragments filtered",
			input:    "Ok. A much longer sentence follows here.",
			expected: []string{"A much longer sentence follows here."},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "no terminal punctuation",
			input:    "a single run of text without punctuation",
			expected: []string{"a single run of text without punctuation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := text.SplitSentences(tt.input)
			if diff := cmp.Diff(tt.expected, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("SplitSentences(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSplitSentences_MinimumLength(t *testing.T) {
	got := text.SplitSentences("Hello world. This Is Two.")
	if len(got) != 2 {
		t.Fatalf("expected 2 fragments, got %d: %v", len(got), got)
	}
	for _, s := range got {
		if utf8.RuneCountInString(s) < 6 {
			t.Errorf("fragment %q shorter than 6 characters", s)
		}
	}
}
