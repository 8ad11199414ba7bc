package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":     "array",
		"minItems": 10,
		"maxItems": 10,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":     map[string]any{"type": "string"},
				"correctIndex": map[string]any{"type": "integer"},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"question", "options", "correctIndex"},
		},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "ARRAY" {
		t.Fatalf("expected ARRAY type, got %s", schema.Type)
	}
	if schema.MinItems == nil || *schema.MinItems != 10 {
		t.Fatalf("minItems not pinned: %v", schema.MinItems)
	}
	if schema.MaxItems == nil || *schema.MaxItems != 10 {
		t.Fatalf("maxItems not pinned: %v", schema.MaxItems)
	}

	item := schema.Items
	if item == nil || item.Type != "OBJECT" {
		t.Fatal("expected OBJECT items schema")
	}
	if item.Properties["question"].Type != "STRING" {
		t.Fatalf("expected STRING for question, got %s", item.Properties["question"].Type)
	}
	if item.Properties["correctIndex"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for correctIndex, got %s", item.Properties["correctIndex"].Type)
	}
	if item.Properties["options"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for option items, got %s", item.Properties["options"].Items.Type)
	}
	if len(item.Required) != 3 {
		t.Fatalf("expected 3 required fields, got %d", len(item.Required))
	}
}

func TestGeminiMapError(t *testing.T) {
	p := &GeminiProvider{candidate: ModelCandidate{Model: "gemini-2.5-flash-preview-09-2025"}}

	tests := []struct {
		name string
		code int
		want any
	}{
		{"deprecated model", http.StatusNotFound, new(*ErrModelNotFound)},
		{"rate limited", http.StatusTooManyRequests, new(*ErrRateLimit)},
		{"server error", http.StatusInternalServerError, new(*ErrProviderUnavailable)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.mapError(&genai.APIError{Code: tt.code})
			switch want := tt.want.(type) {
			case **ErrModelNotFound:
				if !errors.As(err, want) {
					t.Fatalf("expected ErrModelNotFound, got %T", err)
				}
				if (*want).Model != p.candidate.Model {
					t.Errorf("model = %q, want %q", (*want).Model, p.candidate.Model)
				}
			case **ErrRateLimit:
				if !errors.As(err, want) {
					t.Fatalf("expected ErrRateLimit, got %T", err)
				}
			case **ErrProviderUnavailable:
				if !errors.As(err, want) {
					t.Fatalf("expected ErrProviderUnavailable, got %T", err)
				}
			}
		})
	}
}

func TestGeminiMapError_Transport(t *testing.T) {
	p := &GeminiProvider{candidate: ModelCandidate{Model: "gemini-2.0-flash"}}
	err := p.mapError(errors.New("connection refused"))
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestNewGeminiProvider_Validation(t *testing.T) {
	ctx := context.Background()
	if _, err := NewGeminiProvider(ctx, "", ModelCandidate{Model: "gemini-2.0-flash"}); err == nil {
		t.Fatal("expected error for missing API key")
	}
	if _, err := NewGeminiProvider(ctx, "key", ModelCandidate{}); err == nil {
		t.Fatal("expected error for missing model")
	}
}
