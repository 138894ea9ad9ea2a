package summarizer

import (
	"context"

	"scrape-digest/internal/utils/text"
)

const noOpMaxRunes = 500

// NoOp implements Provider without calling any external API. It echoes a
// truncated form of the prompt, which keeps local development and the worker
// usable without API keys.
type NoOp struct{}

// NewNoOp creates a NoOp provider.
func NewNoOp() *NoOp { return &NoOp{} }

// Name implements Provider.
func (n *NoOp) Name() string { return "noop" }

// Generate implements Provider. It never fails.
func (n *NoOp) Generate(_ context.Context, prompt string) (string, error) {
	if text.CountRunes(prompt) <= noOpMaxRunes {
		return prompt, nil
	}
	runes := []rune(prompt)
	return string(runes[:noOpMaxRunes]) + "...", nil
}
