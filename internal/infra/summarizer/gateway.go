// Package summarizer provides AI-powered text summarization backends behind a
// single Gateway. Providers (Gemini, OpenAI, Claude, no-op) implement raw
// prompt completion; the Gateway adds prompt construction, rate limiting, and
// a fault-tolerant result contract in which failures surface as fixed English
// placeholder summaries rather than errors.
package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"scrape-digest/internal/observability/metrics"
)

// Placeholder summaries returned by the Gateway instead of errors. Callers
// can rely on always receiving a non-empty summary string.
const (
	NoContentPlaceholder      = "No content to summarize."
	EmptySummaryPlaceholder   = "Unable to generate summary."
	EmptyArticlePlaceholder   = "Unable to generate article summary."
	summaryErrorFormat        = "Error generating summary: %v"
	articleSummaryErrorFormat = "Error generating article summary: %v"
)

// Provider generates a completion for a fully built prompt. Implementations
// wrap a single model API and return the raw model output.
type Provider interface {
	// Generate returns the model output for prompt, or an error when the API
	// call fails or returns an unusable response.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name identifies the backend for logging and the test-summarizer CLI
	// command.
	Name() string
}

// GatewayConfig holds configuration parameters for the summarization Gateway.
type GatewayConfig struct {
	// MinInterval is the minimum spacing between provider calls. Requests
	// arriving faster than this block until the limiter releases them.
	// Loaded from SUMMARIZER_MIN_INTERVAL. Default: 1s.
	MinInterval time.Duration

	// MaxSentences is the sentence count requested from the model in both
	// the text and article prompts. Default: 3.
	MaxSentences int
}

// LoadGatewayConfig loads Gateway settings from environment variables,
// falling back to defaults on missing or invalid values.
//
// Environment variables:
//   - SUMMARIZER_MIN_INTERVAL: minimum spacing between API calls
//     (Go duration string, default: 1s)
func LoadGatewayConfig() GatewayConfig {
	cfg := GatewayConfig{
		MinInterval:  time.Second,
		MaxSentences: 3,
	}
	if v := os.Getenv("SUMMARIZER_MIN_INTERVAL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil || parsed <= 0 {
			slog.Warn("Invalid SUMMARIZER_MIN_INTERVAL, using default",
				slog.String("value", v),
				slog.Duration("default", cfg.MinInterval))
		} else {
			cfg.MinInterval = parsed
		}
	}
	return cfg
}

// Gateway wraps a Provider with rate limiting and the placeholder-summary
// contract. Every summarize call returns a usable string; provider faults
// are logged and converted into the corresponding placeholder.
type Gateway struct {
	provider Provider
	limiter  *rate.Limiter
	config   GatewayConfig
}

// NewGateway creates a Gateway around provider using cfg. The limiter admits
// one call per MinInterval with no burst headroom, so back-to-back requests
// are spaced at least MinInterval apart.
func NewGateway(provider Provider, cfg GatewayConfig) *Gateway {
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = time.Second
	}
	if cfg.MaxSentences <= 0 {
		cfg.MaxSentences = 3
	}
	return &Gateway{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Every(cfg.MinInterval), 1),
		config:   cfg,
	}
}

// Provider returns the wrapped backend.
func (g *Gateway) Provider() Provider {
	return g.provider
}

// SummarizeText summarizes a plain block of text. Empty or whitespace-only
// input short-circuits to the no-content placeholder without touching the
// provider or the rate limiter.
func (g *Gateway) SummarizeText(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return NoContentPlaceholder
	}
	prompt := buildTextPrompt(text, g.config.MaxSentences)
	return g.generate(ctx, prompt, "text", EmptySummaryPlaceholder, summaryErrorFormat)
}

// SummarizeArticle summarizes article content, optionally attributed to
// title and author. Empty content short-circuits to the no-content
// placeholder.
func (g *Gateway) SummarizeArticle(ctx context.Context, title, content, author string) string {
	if strings.TrimSpace(content) == "" {
		return NoContentPlaceholder
	}
	prompt := buildArticlePrompt(title, content, author, g.config.MaxSentences)
	return g.generate(ctx, prompt, "article", EmptyArticlePlaceholder, articleSummaryErrorFormat)
}

// generate runs a single rate-limited provider call. Provider errors and
// empty responses are logged with a request ID and mapped to placeholder
// strings so the pipeline never stops on a summarization fault.
func (g *Gateway) generate(ctx context.Context, prompt, kind, emptyPlaceholder, errorFormat string) string {
	requestID := uuid.New().String()

	if err := g.limiter.Wait(ctx); err != nil {
		slog.ErrorContext(ctx, "Summarization cancelled while rate limited",
			slog.String("request_id", requestID),
			slog.String("kind", kind),
			slog.String("error", err.Error()))
		return fmt.Sprintf(errorFormat, err)
	}

	slog.InfoContext(ctx, "Starting summarization",
		slog.String("request_id", requestID),
		slog.String("kind", kind),
		slog.String("provider", g.provider.Name()),
		slog.Int("prompt_length", len(prompt)))

	start := time.Now()
	summary, err := g.provider.Generate(ctx, prompt)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordSummarizerFailure(g.provider.Name())
		slog.ErrorContext(ctx, "Summarization failed",
			slog.String("request_id", requestID),
			slog.String("kind", kind),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return fmt.Sprintf(errorFormat, err)
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		metrics.RecordSummarizerFailure(g.provider.Name())
		slog.ErrorContext(ctx, "Provider returned empty summary",
			slog.String("request_id", requestID),
			slog.String("kind", kind),
			slog.Duration("duration", duration))
		return emptyPlaceholder
	}

	metrics.RecordSummaryGenerated(g.provider.Name())
	slog.InfoContext(ctx, "Summarization completed",
		slog.String("request_id", requestID),
		slog.String("kind", kind),
		slog.Int("summary_length", len(summary)),
		slog.Duration("duration", duration))
	return summary
}

// buildTextPrompt builds the prompt for plain text summarization.
func buildTextPrompt(text string, maxSentences int) string {
	return fmt.Sprintf(
		"Please provide a concise summary of the following text in %d sentences or less. "+
			"Focus on the main points and key information:\n\n"+
			"Text to summarize:\n%s\n\nSummary:",
		maxSentences, text)
}

// buildArticlePrompt builds the prompt for article summarization, naming the
// title and, when known, the author, and bounding the summary to maxSentences.
func buildArticlePrompt(title, content, author string, maxSentences int) string {
	attribution := ""
	if author != "" && author != "Unknown" {
		attribution = fmt.Sprintf(" by %s", author)
	}
	return fmt.Sprintf(
		"Please provide a concise %d-sentence summary of this article titled \"%s\"%s. "+
			"Focus on the main message, key points, and important details. "+
			"Make the summary informative and well-structured.\n\n"+
			"Article content:\n%s\n\nSummary:",
		maxSentences, title, attribution, content)
}
