package store

import (
	"context"
	"database/sql"
	"fmt"
)

// subscriberRepo implements the read-side SubscriberRepo. The enrollment
// dashboard owns writes to this table.
type subscriberRepo struct {
	db        *sql.DB
	namespace string
}

func (r *subscriberRepo) List(ctx context.Context) ([]Subscriber, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, exam_type, streak, created_at
		 FROM subscribers WHERE namespace = ?
		 ORDER BY created_at, id`,
		r.namespace,
	)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	var out []Subscriber
	for rows.Next() {
		var s Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.ExamType, &s.Streak, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *subscriberRepo) ExamTypes(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT exam_type FROM subscribers
		 WHERE namespace = ? ORDER BY exam_type`,
		r.namespace,
	)
	if err != nil {
		return nil, fmt.Errorf("list exam types: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan exam type: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
