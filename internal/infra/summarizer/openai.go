package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT3Dot5Turbo

// OpenAI implements Provider using the OpenAI chat completion API.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI provider with the given API key. The model is
// taken from OPENAI_MODEL, defaulting to gpt-3.5-turbo.
func NewOpenAI(apiKey string) *OpenAI {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultOpenAIModel
	}

	slog.Info("Initialized OpenAI provider", slog.String("model", model))

	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Name implements Provider.
func (o *OpenAI) Name() string { return "openai" }

// Generate implements Provider.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}

	// Safety check to prevent panic on array access.
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
