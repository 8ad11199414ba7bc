package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.BatchSize = 2
	return cfg
}

// validBatchJSON builds a well-formed batch payload of n questions.
func validBatchJSON(n int) json.RawMessage {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{
			"question": "Which service provides feature %d?",
			"options": ["Service A", "Service B", "Service C", "Service D"],
			"correctIndex": %d,
			"explanation": "Only that service offers feature %d.",
			"topic": "Core Services"
		}`, i, i%4, i)
	}
	return json.RawMessage("[" + strings.Join(items, ",") + "]")
}

// stubClient is a canned Client for orchestrator tests.
type stubClient struct {
	batch Batch
	err   error
	calls int
}

func (s *stubClient) Generate(_ context.Context, _ string) (Batch, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.batch, nil
}

// stubRefiller is a canned Refiller for service tests.
type stubRefiller struct {
	batch Batch
	err   error
	calls int
}

func (s *stubRefiller) Refill(_ context.Context, _ string) (Batch, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.batch, nil
}
