package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// seedSubscriber writes directly to the table; enrollment is owned by the
// dashboard, so the repo has no insert path.
func seedSubscriber(t *testing.T, s *Store, namespace, email, examType string) {
	t.Helper()
	_, err := s.DB().Exec(
		`INSERT INTO subscribers (id, namespace, email, exam_type, streak, created_at)
		 VALUES (?, ?, ?, ?, 0, ?)`,
		email+"/"+examType, namespace, email, examType, time.Now().UTC(),
	)
	require.NoError(t, err)
}

func TestSubscribersList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedSubscriber(t, s, "test-ns", "a@example.com", "aws-saa")
	seedSubscriber(t, s, "test-ns", "b@example.com", "gcp-ace")
	seedSubscriber(t, s, "other-ns", "c@example.com", "aws-saa")

	subs, err := s.Subscribers("test-ns").List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	require.Equal(t, "a@example.com", subs[0].Email)
}

func TestSubscribersExamTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedSubscriber(t, s, "test-ns", "a@example.com", "gcp-ace")
	seedSubscriber(t, s, "test-ns", "b@example.com", "aws-saa")
	seedSubscriber(t, s, "test-ns", "c@example.com", "aws-saa")

	types, err := s.Subscribers("test-ns").ExamTypes(ctx)
	require.NoError(t, err)
	// Distinct and lexically ordered.
	require.Equal(t, []string{"aws-saa", "gcp-ace"}, types)
}

func TestSubscribersEmptyNamespace(t *testing.T) {
	s := openTestStore(t)

	types, err := s.Subscribers("empty-ns").ExamTypes(context.Background())
	require.NoError(t, err)
	require.Empty(t, types)
}
