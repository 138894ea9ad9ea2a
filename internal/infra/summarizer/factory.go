package summarizer

import (
	"context"
	"fmt"
	"os"
)

// NewProviderFromEnv builds the Provider selected by SUMMARIZER_PROVIDER:
// "gemini" (default), "openai", "claude", or "noop". API keys come from
// GEMINI_API_KEY, OPENAI_API_KEY and CLAUDE_API_KEY respectively; a missing
// key for the selected backend is an error.
func NewProviderFromEnv(ctx context.Context) (Provider, error) {
	name := os.Getenv("SUMMARIZER_PROVIDER")
	if name == "" {
		name = "gemini"
	}

	switch name {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
		return NewGemini(ctx, apiKey)
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
		return NewOpenAI(apiKey), nil
	case "claude":
		apiKey := os.Getenv("CLAUDE_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("CLAUDE_API_KEY is required for the claude provider")
		}
		return NewClaude(apiKey), nil
	case "noop":
		return NewNoOp(), nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider: %q", name)
	}
}
