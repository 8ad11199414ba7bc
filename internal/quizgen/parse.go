package quizgen

import (
	"encoding/json"
	"fmt"

	"github.com/cloudprep/dailyquiz/internal/llm"
)

// parseBatch turns a raw provider payload into a validated Batch.
//
// Acceptance is all-or-nothing: one bad record rejects the whole batch, so
// the bank never silently shrinks below the per-call question contract.
// Failures come back as *llm.ErrInvalidResponse carrying the raw payload,
// which classifies them as malformed output for fallback purposes.
func parseBatch(raw json.RawMessage, cfg Config) (Batch, error) {
	var batch Batch
	if err := json.Unmarshal(raw, &batch); err != nil {
		return nil, &llm.ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("parse question array: %w", err),
		}
	}

	if len(batch) != cfg.BatchSize {
		return nil, &llm.ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("expected %d questions, got %d", cfg.BatchSize, len(batch)),
		}
	}

	for i := range batch {
		for _, v := range cfg.Validators {
			if verr := v.Validate(&batch[i]); verr != nil {
				verr.Index = i
				return nil, &llm.ErrInvalidResponse{
					Content: raw,
					Err:     verr,
				}
			}
		}
	}

	return batch, nil
}
