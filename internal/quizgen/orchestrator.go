package quizgen

import "context"

// Orchestrator runs the primary-then-fallback generation strategy.
// The order is fixed and sequential: the primary is higher quality and
// cheaper, the fallback exists purely as a reliability backstop.
type Orchestrator struct {
	primary  Client
	fallback Client
}

// NewOrchestrator creates an Orchestrator with the given clients.
func NewOrchestrator(primary, fallback Client) *Orchestrator {
	return &Orchestrator{primary: primary, fallback: fallback}
}

// Refill produces one validated batch for the exam type. The primary client
// is consulted first; any primary failure triggers exactly one fallback
// attempt. Both failing yields a *RefillError carrying both classifications.
func (o *Orchestrator) Refill(ctx context.Context, examType string) (Batch, error) {
	batch, primaryErr := o.primary.Generate(ctx, examType)
	if primaryErr == nil {
		return batch, nil
	}

	batch, fallbackErr := o.fallback.Generate(ctx, examType)
	if fallbackErr == nil {
		return batch, nil
	}

	return nil, &RefillError{
		ExamType: examType,
		Primary:  primaryErr,
		Fallback: fallbackErr,
	}
}
