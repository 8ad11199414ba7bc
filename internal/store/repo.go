package store

import (
	"context"
	"errors"
	"time"
)

// Record is one persisted question-bank entry. Records are immutable after
// creation except for the single false→true flip of Used.
type Record struct {
	ID           string
	ExamType     string
	Question     string
	Options      []string // exactly 4 entries
	CorrectIndex int      // index into Options, [0,3]
	Explanation  string
	Topic        string
	Used         bool
	CreatedAt    time.Time
	UsedAt       time.Time // zero until claimed
}

// ErrNotAvailable is returned by ClaimOne when no unused record exists for
// the exam type.
var ErrNotAvailable = errors.New("no unused question available")

// BankRepo is the question-bank adapter. All rows are scoped to the
// namespace the repo was constructed with.
type BankRepo interface {
	// Append persists every record in the batch as a new entry with
	// used=false and createdAt=now, assigning fresh IDs. The write is
	// transactional: either the whole batch lands or none of it does.
	// Records are assumed pre-validated; no semantic re-check happens here.
	Append(ctx context.Context, examType string, records []Record) error

	// ClaimOne selects one unused record for the exam type, atomically
	// marks it used, and returns it. Returns ErrNotAvailable when the bank
	// holds no unused record for the type. Concurrent callers never claim
	// the same record.
	ClaimOne(ctx context.Context, examType string) (*Record, error)

	// CountUnused reports how many unused records remain for the exam type.
	CountUnused(ctx context.Context, examType string) (int, error)
}

// Subscriber is one enrolled reader. Enrollment, streaks, and email dispatch
// belong to the dashboard and mailer; the pipeline only reads which exam
// types have an audience.
type Subscriber struct {
	ID        string
	Email     string
	ExamType  string
	Streak    int
	CreatedAt time.Time
}

// SubscriberRepo is the read-side view of the subscriber collection.
type SubscriberRepo interface {
	// List returns all subscribers in the namespace.
	List(ctx context.Context) ([]Subscriber, error)

	// ExamTypes returns the distinct exam types with at least one
	// subscriber, in lexical order.
	ExamTypes(ctx context.Context) ([]string, error)
}

// LLMRequestEventData captures the data for a single provider call event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored provider call event.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// UsageStat aggregates provider call usage per purpose label.
type UsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates provider call usage per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to provider call events.
type EventRepo interface {
	// AppendLLMRequest records a provider API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
