package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// bankRepo implements BankRepo over the question_bank table.
type bankRepo struct {
	db        *sql.DB
	namespace string
}

func (r *bankRepo) Append(ctx context.Context, examType string, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, rec := range records {
		opts, err := json.Marshal(rec.Options)
		if err != nil {
			return fmt.Errorf("marshal options: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO question_bank
				(id, namespace, exam_type, question, options, correct_index,
				 explanation, topic, used, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?)`,
			uuid.NewString(), r.namespace, examType,
			rec.Question, string(opts), rec.CorrectIndex,
			rec.Explanation, rec.Topic, now,
		)
		if err != nil {
			return fmt.Errorf("insert question: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit append: %w", err)
	}
	return nil
}

func (r *bankRepo) ClaimOne(ctx context.Context, examType string) (*Record, error) {
	// Claim loop: pick an unused candidate, then flip its used flag with a
	// conditional update keyed on (id, used=0). A concurrent claimer who
	// wins the same row leaves RowsAffected at 0; we then try the next
	// candidate. Terminates once no unused row remains.
	for {
		rec, err := r.selectUnused(ctx, examType)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, ErrNotAvailable
		}

		usedAt := time.Now().UTC()
		res, err := r.db.ExecContext(ctx,
			`UPDATE question_bank SET used = 1, used_at = ?
			 WHERE id = ? AND used = 0`,
			usedAt, rec.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("claim question %s: %w", rec.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("claim rows affected: %w", err)
		}
		if n == 1 {
			rec.Used = true
			rec.UsedAt = usedAt
			return rec, nil
		}
		// Lost the race on this row; retry with another.
	}
}

func (r *bankRepo) CountUnused(ctx context.Context, examType string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM question_bank
		 WHERE namespace = ? AND exam_type = ? AND used = 0`,
		r.namespace, examType,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unused: %w", err)
	}
	return n, nil
}

// selectUnused returns one unused record for the exam type, or nil when the
// bank is empty for that type. Oldest first, so stale questions drain before
// fresh batches.
func (r *bankRepo) selectUnused(ctx context.Context, examType string) (*Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, exam_type, question, options, correct_index,
		        explanation, topic, created_at
		 FROM question_bank
		 WHERE namespace = ? AND exam_type = ? AND used = 0
		 ORDER BY created_at, id
		 LIMIT 1`,
		r.namespace, examType,
	)

	var rec Record
	var optsJSON string
	err := row.Scan(&rec.ID, &rec.ExamType, &rec.Question, &optsJSON,
		&rec.CorrectIndex, &rec.Explanation, &rec.Topic, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select unused: %w", err)
	}

	if err := json.Unmarshal([]byte(optsJSON), &rec.Options); err != nil {
		return nil, fmt.Errorf("unmarshal options for %s: %w", rec.ID, err)
	}
	return &rec, nil
}
