package quizgen

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cloudprep/dailyquiz/internal/store"
)

// ErrUnavailable marks an exam type that produced no question this cycle:
// the bank was empty and both providers failed to refill it. Callers skip
// the type and continue the run.
var ErrUnavailable = errors.New("no question available this cycle")

// Refiller produces a fresh validated batch for an exam type.
type Refiller interface {
	Refill(ctx context.Context, examType string) (Batch, error)
}

// Service is the replenishment controller. It holds no state across calls;
// bank status is re-derived on every invocation, since the pipeline runs as
// a periodic batch job rather than a long-lived process.
type Service struct {
	bank     store.BankRepo
	refiller Refiller
	budget   time.Duration
}

// NewService creates a Service. budget caps the wall-clock time one exam
// type may spend inside RunCycle; zero means no per-type deadline.
func NewService(bank store.BankRepo, refiller Refiller, budget time.Duration) *Service {
	return &Service{bank: bank, refiller: refiller, budget: budget}
}

// EnsureAndFetch returns one claimed, previously unused question for the
// exam type, refilling the bank first when it has none. Returns an error
// wrapping ErrUnavailable when refill fails; other errors are persistence
// failures and propagate as-is.
func (s *Service) EnsureAndFetch(ctx context.Context, examType string) (*store.Record, error) {
	rec, err := s.bank.ClaimOne(ctx, examType)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, store.ErrNotAvailable) {
		return nil, fmt.Errorf("claim %s: %w", examType, err)
	}

	batch, err := s.refiller.Refill(ctx, examType)
	if err != nil {
		return nil, fmt.Errorf("exam type %s: %w", examType, errors.Join(ErrUnavailable, err))
	}

	if err := s.bank.Append(ctx, examType, batch.Records(examType)); err != nil {
		return nil, fmt.Errorf("append %s: %w", examType, err)
	}

	rec, err = s.bank.ClaimOne(ctx, examType)
	if err != nil {
		if errors.Is(err, store.ErrNotAvailable) {
			// Concurrent claimers drained the fresh batch before we got
			// back to it. Anomalous but not fatal.
			log.Printf("bank for %s drained immediately after refill", examType)
			return nil, fmt.Errorf("exam type %s: %w", examType, ErrUnavailable)
		}
		return nil, fmt.Errorf("claim after refill %s: %w", examType, err)
	}
	return rec, nil
}

// Result is the outcome of one exam type within a cycle.
type Result struct {
	ExamType string
	Record   *store.Record
	Err      error
}

// RunCycle processes each exam type independently: a refill failure for one
// type never aborts the others. Each type gets its own attempt budget.
func (s *Service) RunCycle(ctx context.Context, examTypes []string) []Result {
	results := make([]Result, 0, len(examTypes))
	for _, examType := range examTypes {
		typeCtx := ctx
		cancel := context.CancelFunc(func() {})
		if s.budget > 0 {
			typeCtx, cancel = context.WithTimeout(ctx, s.budget)
		}

		rec, err := s.EnsureAndFetch(typeCtx, examType)
		cancel()

		results = append(results, Result{ExamType: examType, Record: rec, Err: err})
	}
	return results
}
