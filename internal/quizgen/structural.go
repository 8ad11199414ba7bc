package quizgen

import "fmt"

// Length caps keep emails scannable; the prompt asks for concise text and
// the validator enforces the hard bound.
const (
	maxQuestionLen    = 300
	maxOptionLen      = 200
	maxExplanationLen = 1000
)

// StructuralValidator checks the question-record invariants: exactly 4
// options, a correct index that points into them, and non-empty text fields.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if q.Question == "" {
		return v.fail("question is empty")
	}
	if len(q.Question) > maxQuestionLen {
		return v.fail(fmt.Sprintf("question exceeds %d characters", maxQuestionLen))
	}
	if len(q.Options) != 4 {
		return v.fail(fmt.Sprintf("expected 4 options, got %d", len(q.Options)))
	}
	for i, opt := range q.Options {
		if opt == "" {
			return v.fail(fmt.Sprintf("option %d is empty", i))
		}
		if len(opt) > maxOptionLen {
			return v.fail(fmt.Sprintf("option %d exceeds %d characters", i, maxOptionLen))
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
		return v.fail(fmt.Sprintf("correctIndex %d out of range [0,3]", q.CorrectIndex))
	}
	if q.Explanation == "" {
		return v.fail("explanation is empty")
	}
	if len(q.Explanation) > maxExplanationLen {
		return v.fail(fmt.Sprintf("explanation exceeds %d characters", maxExplanationLen))
	}
	if q.Topic == "" {
		return v.fail("topic is empty")
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}
