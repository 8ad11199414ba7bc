package quizgen

import (
	"context"
	"fmt"
)

// Client generates one validated batch of questions for an exam type.
// Failures carry the llm error taxonomy: rate limit, model not found,
// invalid response, provider unavailable.
type Client interface {
	Generate(ctx context.Context, examType string) (Batch, error)
}

// RefillError aggregates both attempts of a failed refill for diagnosis.
// The caller treats it as "no questions available this cycle for this exam
// type", never as fatal to the run.
type RefillError struct {
	ExamType string
	Primary  error
	Fallback error
}

func (e *RefillError) Error() string {
	return fmt.Sprintf("refill %s failed: primary: %v; fallback: %v",
		e.ExamType, e.Primary, e.Fallback)
}

func (e *RefillError) Unwrap() []error {
	return []error{e.Primary, e.Fallback}
}
