package quizgen

import "github.com/cloudprep/dailyquiz/internal/store"

// Question is one generated multiple-choice question, validated but not yet
// persisted.
type Question struct {
	// Question is the prompt shown to the subscriber. Plain text, concise.
	Question string `json:"question"`

	// Options holds exactly 4 answer choices in display order.
	Options []string `json:"options"`

	// CorrectIndex is the 0-based index of the correct option.
	CorrectIndex int `json:"correctIndex"`

	// Explanation is a brief justification of the correct answer.
	Explanation string `json:"explanation"`

	// Topic names the exam domain area the question covers.
	Topic string `json:"topic"`
}

// Batch is the ordered output of one successful provider call. A batch is
// accepted or rejected as a whole; a partially valid batch never exists.
type Batch []Question

// Records converts the batch for persistence. IDs and timestamps are
// assigned by the bank on append.
func (b Batch) Records(examType string) []store.Record {
	out := make([]store.Record, len(b))
	for i, q := range b {
		out[i] = store.Record{
			ExamType:     examType,
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
			Topic:        q.Topic,
		}
	}
	return out
}
