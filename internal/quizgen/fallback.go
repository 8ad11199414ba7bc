package quizgen

import (
	"context"

	"github.com/cloudprep/dailyquiz/internal/llm"
)

// FallbackClient issues a single request to one fixed backstop model.
// No multi-model iteration; the wrapped provider's single transient retry
// is the only repetition.
type FallbackClient struct {
	provider llm.Provider
	cfg      Config
}

// NewFallbackClient creates a FallbackClient over the given provider.
func NewFallbackClient(provider llm.Provider, cfg Config) *FallbackClient {
	return &FallbackClient{provider: provider, cfg: cfg}
}

func (c *FallbackClient) Generate(ctx context.Context, examType string) (Batch, error) {
	ctx = llm.WithPurpose(ctx, "bank-refill-fallback")

	resp, err := c.provider.Generate(ctx, buildRequest(examType, c.cfg))
	if err != nil {
		return nil, err
	}
	return parseBatch(resp.Content, c.cfg)
}
