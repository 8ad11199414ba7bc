package quizgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudprep/dailyquiz/internal/llm"
)

// PrimaryClient walks an ordered list of model candidates and returns the
// first fully valid batch. Each provider is pinned to one (model, API
// version) pair and already carries its own rate-limit retry; this client
// only decides whether to advance to the next candidate.
//
// Advancement rules per candidate:
//   - model not found (deprecated): advance, no retry budget consumed
//   - rate limited (after the provider's own backoff): advance
//   - malformed or schema-violating output: advance, never re-ask that model
//   - any other failure: advance
//   - success: return the batch, remaining candidates untouched
type PrimaryClient struct {
	providers []llm.Provider
	cfg       Config
}

// NewPrimaryClient creates a PrimaryClient over providers in priority order.
func NewPrimaryClient(providers []llm.Provider, cfg Config) *PrimaryClient {
	return &PrimaryClient{providers: providers, cfg: cfg}
}

func (c *PrimaryClient) Generate(ctx context.Context, examType string) (Batch, error) {
	if len(c.providers) == 0 {
		return nil, fmt.Errorf("no model candidates configured")
	}

	ctx = llm.WithPurpose(ctx, "bank-refill")
	req := buildRequest(examType, c.cfg)

	// Track the last failure plus the most recent operationally specific
	// one (rate limit or deprecated model); surfacing those over a generic
	// transport error makes the aggregate failure diagnosable.
	var lastErr, specificErr error

	for _, p := range c.providers {
		resp, err := p.Generate(ctx, req)
		if err != nil {
			lastErr = err
			if isSpecific(err) {
				specificErr = err
			}
			if ctx.Err() != nil {
				// Attempt budget exhausted; stop walking candidates.
				break
			}
			continue
		}

		batch, err := parseBatch(resp.Content, c.cfg)
		if err != nil {
			lastErr = err
			continue
		}
		return batch, nil
	}

	if specificErr != nil {
		return nil, specificErr
	}
	return nil, lastErr
}

func isSpecific(err error) bool {
	var rl *llm.ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var nf *llm.ErrModelNotFound
	return errors.As(err, &nf)
}
