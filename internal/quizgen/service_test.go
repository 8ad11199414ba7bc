package quizgen

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cloudprep/dailyquiz/internal/llm"
	"github.com/cloudprep/dailyquiz/internal/store"
)

func openTestBank(t *testing.T) store.BankRepo {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.Bank("test-ns")
}

func TestService_EmptyBankTriggersRefill(t *testing.T) {
	bank := openTestBank(t)
	batch, err := parseBatch(validBatchJSON(2), testConfig())
	if err != nil {
		t.Fatalf("build batch: %v", err)
	}
	refiller := &stubRefiller{batch: batch}

	svc := NewService(bank, refiller, 0)
	rec, err := svc.EnsureAndFetch(context.Background(), "aws-saa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil || !rec.Used {
		t.Fatal("expected a claimed record")
	}
	if refiller.calls != 1 {
		t.Fatalf("refiller called %d times, want 1", refiller.calls)
	}

	// One claimed, the rest banked for future cycles.
	n, err := bank.CountUnused(context.Background(), "aws-saa")
	if err != nil {
		t.Fatalf("count unused: %v", err)
	}
	if n != 1 {
		t.Fatalf("unused after claim = %d, want 1", n)
	}
}

func TestService_StockedBankSkipsRefill(t *testing.T) {
	bank := openTestBank(t)
	batch, err := parseBatch(validBatchJSON(2), testConfig())
	if err != nil {
		t.Fatalf("build batch: %v", err)
	}
	if err := bank.Append(context.Background(), "aws-saa", batch.Records("aws-saa")); err != nil {
		t.Fatalf("seed bank: %v", err)
	}

	refiller := &stubRefiller{}
	svc := NewService(bank, refiller, 0)

	rec, err := svc.EnsureAndFetch(context.Background(), "aws-saa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a claimed record")
	}
	if refiller.calls != 0 {
		t.Fatalf("refiller called %d times, want 0", refiller.calls)
	}
}

func TestService_RefillFailureIsUnavailable(t *testing.T) {
	bank := openTestBank(t)
	refiller := &stubRefiller{err: &RefillError{
		ExamType: "aws-saa",
		Primary:  &llm.ErrRateLimit{Err: errors.New("429")},
		Fallback: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	}}

	svc := NewService(bank, refiller, 0)
	_, err := svc.EnsureAndFetch(context.Background(), "aws-saa")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got: %v", err)
	}

	// The underlying classification stays reachable for diagnosis.
	var refillErr *RefillError
	if !errors.As(err, &refillErr) {
		t.Fatalf("expected RefillError in chain, got: %v", err)
	}

	// Bank untouched.
	n, err := bank.CountUnused(context.Background(), "aws-saa")
	if err != nil {
		t.Fatalf("count unused: %v", err)
	}
	if n != 0 {
		t.Fatalf("unused = %d, want 0", n)
	}
}

func TestService_ClaimedQuestionNeverRepeats(t *testing.T) {
	bank := openTestBank(t)
	batch, err := parseBatch(validBatchJSON(2), testConfig())
	if err != nil {
		t.Fatalf("build batch: %v", err)
	}
	if err := bank.Append(context.Background(), "aws-saa", batch.Records("aws-saa")); err != nil {
		t.Fatalf("seed bank: %v", err)
	}

	svc := NewService(bank, &stubRefiller{err: errors.New("no refill in this test")}, 0)

	first, err := svc.EnsureAndFetch(context.Background(), "aws-saa")
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	second, err := svc.EnsureAndFetch(context.Background(), "aws-saa")
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("record %s claimed twice", first.ID)
	}
}

func TestService_RunCycleIsolatesFailures(t *testing.T) {
	bank := openTestBank(t)
	batch, err := parseBatch(validBatchJSON(2), testConfig())
	if err != nil {
		t.Fatalf("build batch: %v", err)
	}
	// Only gcp-ace has stock; the refiller is down, so aws-saa must fail.
	if err := bank.Append(context.Background(), "gcp-ace", batch.Records("gcp-ace")); err != nil {
		t.Fatalf("seed bank: %v", err)
	}

	refiller := &stubRefiller{err: &RefillError{
		ExamType: "aws-saa",
		Primary:  &llm.ErrProviderUnavailable{Err: errors.New("down")},
		Fallback: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	}}
	svc := NewService(bank, refiller, 0)

	results := svc.RunCycle(context.Background(), []string{"aws-saa", "gcp-ace"})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if results[0].ExamType != "aws-saa" || !errors.Is(results[0].Err, ErrUnavailable) {
		t.Errorf("aws-saa result = %+v, want ErrUnavailable", results[0])
	}
	if results[1].ExamType != "gcp-ace" || results[1].Err != nil {
		t.Errorf("gcp-ace result err = %v, want nil", results[1].Err)
	}
	if results[1].Record == nil {
		t.Error("gcp-ace record missing")
	}
}
