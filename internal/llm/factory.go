package llm

import (
	"context"
	"fmt"

	"github.com/cloudprep/dailyquiz/internal/store"
)

// NewPrimaryProviders builds one provider per configured Gemini candidate,
// in priority order, each wrapped with event logging and rate-limit retry.
func NewPrimaryProviders(ctx context.Context, cfg Config, events store.EventRepo) ([]Provider, error) {
	providers := make([]Provider, 0, len(cfg.Gemini.Candidates))
	for _, cand := range cfg.Gemini.Candidates {
		base, err := NewGeminiProvider(ctx, cfg.Gemini.APIKey, cand)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini candidate %s: %w", cand.Model, err)
		}
		// Middleware order: caller → retry → logging → base.
		providers = append(providers, WithRetry(WithLogging(base, events), cfg.Retry))
	}
	return providers, nil
}

// NewFallbackProvider builds the configured backstop provider, wrapped with
// event logging and a single transient retry.
func NewFallbackProvider(cfg Config, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Fallback {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown fallback provider: %q", cfg.Fallback)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s fallback: %w", cfg.Fallback, err)
	}

	return WithRetry(WithLogging(base, events), cfg.FallbackRetry), nil
}
