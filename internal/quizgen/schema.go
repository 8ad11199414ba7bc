package quizgen

import (
	"fmt"

	"github.com/cloudprep/dailyquiz/internal/llm"
)

// batchSchema defines the JSON contract for one generation call: an array
// of exactly size question objects. Providers with native structured output
// enforce it server-side; validateResponse enforces it again client-side.
func batchSchema(size int) *llm.Schema {
	return &llm.Schema{
		Name:        fmt.Sprintf("question-batch-%d", size),
		Description: "A batch of multiple-choice certification exam questions",
		Definition: map[string]any{
			"type":     "array",
			"minItems": size,
			"maxItems": size,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{
						"type":        "string",
						"description": "The question text, concise and self-contained",
					},
					"options": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"minItems":    4,
						"maxItems":    4,
						"description": "Exactly 4 answer choices",
					},
					"correctIndex": map[string]any{
						"type":        "integer",
						"minimum":     0,
						"maximum":     3,
						"description": "0-based index of the correct option",
					},
					"explanation": map[string]any{
						"type":        "string",
						"description": "Brief justification of the correct answer",
					},
					"topic": map[string]any{
						"type":        "string",
						"description": "The exam domain area this question covers",
					},
				},
				"required":             []any{"question", "options", "correctIndex", "explanation", "topic"},
				"additionalProperties": false,
			},
		},
	}
}
