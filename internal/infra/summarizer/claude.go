package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const claudeMaxTokens = 1024

// Claude implements Provider using Anthropic's Claude API.
type Claude struct {
	client anthropic.Client
	model  string
}

// NewClaude creates a Claude provider with the given API key. The model is
// taken from CLAUDE_MODEL, defaulting to the current Sonnet release.
func NewClaude(apiKey string) *Claude {
	model := os.Getenv("CLAUDE_MODEL")
	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_5_20250929)
	}

	slog.Info("Initialized Claude provider", slog.String("model", model))

	return &Claude{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Name implements Provider.
func (c *Claude) Name() string { return "claude" }

// Generate implements Provider.
func (c *Claude) Generate(ctx context.Context, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: claudeMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("claude api returned empty response")
	}
	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", fmt.Errorf("claude api returned unexpected response type")
	}
	return textBlock.Text, nil
}
