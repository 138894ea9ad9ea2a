package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-1.5-flash"

// Gemini implements Provider using Google's Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini provider with the given API key. The model is
// taken from GEMINI_MODEL, defaulting to gemini-1.5-flash.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}

	slog.Info("Initialized Gemini provider", slog.String("model", model))

	return &Gemini{client: client, model: model}, nil
}

// Name implements Provider.
func (g *Gemini) Name() string { return "gemini" }

// Generate implements Provider.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("gemini api error: %w", err)
	}
	if result == nil {
		return "", fmt.Errorf("gemini api returned nil result")
	}
	return result.Text(), nil
}
