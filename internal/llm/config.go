package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all provider configuration for the generation pipeline.
//
// The primary provider is always Gemini, targeting an ordered list of
// (model, API version) candidates. The fallback provider is a single fixed
// model on a second vendor, selected by Fallback.
type Config struct {
	Gemini GeminiConfig

	// Fallback selects the backstop provider used when every primary
	// candidate fails. Values: "openai", "anthropic", "openrouter", "mock".
	Fallback string

	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	OpenRouter OpenRouterConfig

	// Retry bounds the rate-limit backoff applied per primary candidate.
	Retry RetryConfig

	// FallbackRetry bounds the fallback provider's single transient retry.
	FallbackRetry RetryConfig

	// Budget caps the total wall-clock time one exam type may spend on
	// generation, across all candidates, retries, and the fallback.
	// Default: 30s.
	Budget time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string

	// Candidates is the prioritized (model, API version) list traversed
	// left to right. Preview models get removed without notice, so the
	// list ends with a stable model on the stable API surface.
	Candidates []ModelCandidate
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for a wrapped provider.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64

	// RetryTransient also retries generic transport failures, not just
	// rate limits. Off for primary candidates (the next candidate is the
	// retry), on for the fallback's single retry.
	RetryTransient bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Gemini: GeminiConfig{
			Candidates: []ModelCandidate{
				{Model: "gemini-2.5-flash-preview-09-2025", APIVersion: "v1beta"},
				{Model: "gemini-2.5-flash", APIVersion: "v1beta"},
				{Model: "gemini-2.0-flash", APIVersion: "v1"},
			},
		},
		Fallback: "openai",
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		FallbackRetry: RetryConfig{
			MaxAttempts:    2,
			InitialWait:    1 * time.Second,
			MaxWait:        2 * time.Second,
			Multiplier:     2.0,
			RetryTransient: true,
		},
		Budget: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. The bare GEMINI_API_KEY / OPENAI_API_KEY /
// ANTHROPIC_API_KEY names are honored as a convenience.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if k := firstEnv("DAILYQUIZ_GEMINI_API_KEY", "GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("DAILYQUIZ_GEMINI_MODELS"); m != "" {
		cfg.Gemini.Candidates = parseCandidates(m)
	}

	if f := os.Getenv("DAILYQUIZ_FALLBACK"); f != "" {
		cfg.Fallback = f
	}

	if k := firstEnv("DAILYQUIZ_OPENAI_API_KEY", "OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("DAILYQUIZ_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("DAILYQUIZ_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := firstEnv("DAILYQUIZ_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("DAILYQUIZ_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := firstEnv("DAILYQUIZ_OPENROUTER_API_KEY", "OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("DAILYQUIZ_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	if d := os.Getenv("DAILYQUIZ_BUDGET"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Budget = parsed
		}
	}

	return cfg
}

// Validate checks that the configured providers have their API keys set.
func (c Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("DAILYQUIZ_GEMINI_API_KEY is required for the primary provider")
	}
	if len(c.Gemini.Candidates) == 0 {
		return fmt.Errorf("at least one Gemini model candidate is required")
	}

	switch c.Fallback {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("DAILYQUIZ_OPENAI_API_KEY is required for the openai fallback")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("DAILYQUIZ_ANTHROPIC_API_KEY is required for the anthropic fallback")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("DAILYQUIZ_OPENROUTER_API_KEY is required for the openrouter fallback")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown fallback provider: %q", c.Fallback)
	}
	return nil
}

// parseCandidates parses a comma-separated "model@apiVersion" list,
// e.g. "gemini-2.5-flash@v1beta,gemini-2.0-flash@v1".
func parseCandidates(s string) []ModelCandidate {
	var out []ModelCandidate
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		model, version, _ := strings.Cut(part, "@")
		out = append(out, ModelCandidate{Model: model, APIVersion: version})
	}
	return out
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}
