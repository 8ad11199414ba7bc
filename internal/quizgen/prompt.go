package quizgen

import (
	"fmt"
	"strings"

	"github.com/cloudprep/dailyquiz/internal/llm"
)

const systemPrompt = `You are an expert tutor writing daily practice questions for cloud and DevOps certification exams.

Rules:
- Generate exactly the requested number of multiple-choice questions for the given exam.
- Each question has exactly 4 options and exactly one correct answer.
- correctIndex is the 0-based position of the correct option.
- Ramp difficulty across the batch: start easy, end at expert level.
- Keep question text concise and self-contained. No markdown, no numbering.
- Distractors must be plausible mistakes for that exam, not random values.
- Set topic to the official exam domain the question belongs to.
- The explanation briefly states why the correct option is right.
- Return a JSON array only. No surrounding prose.`

// buildUserMessage constructs the per-exam prompt.
func buildUserMessage(examType string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Exam: %s\n", examType)
	fmt.Fprintf(&b, "Questions: %d\n", cfg.BatchSize)
	b.WriteString("Audience: a subscriber preparing for this certification, one email per day.\n")
	b.WriteString("Cover a spread of the exam's domains across the batch.\n")

	return b.String()
}

// buildRequest assembles the provider request for one generation call.
func buildRequest(examType string, cfg Config) llm.Request {
	return llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(examType, cfg)},
		},
		Schema:      batchSchema(cfg.BatchSize),
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
}
