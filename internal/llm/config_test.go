package llm

import (
	"testing"
	"time"
)

func TestParseCandidates(t *testing.T) {
	got := parseCandidates("gemini-2.5-flash@v1beta, gemini-2.0-flash@v1 ,,")
	want := []ModelCandidate{
		{Model: "gemini-2.5-flash", APIVersion: "v1beta"},
		{Model: "gemini-2.0-flash", APIVersion: "v1"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseCandidates_NoVersion(t *testing.T) {
	got := parseCandidates("gemini-2.5-flash")
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Model != "gemini-2.5-flash" || got[0].APIVersion != "" {
		t.Errorf("candidate = %+v, want model only", got[0])
	}
}

func TestConfigValidate_MissingGeminiKey(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing gemini API key")
	}
}

func TestConfigValidate_MissingFallbackKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gemini.APIKey = "key"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing openai fallback key")
	}
}

func TestConfigValidate_MockFallbackNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gemini.APIKey = "key"
	cfg.Fallback = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfigValidate_UnknownFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gemini.APIKey = "key"
	cfg.Fallback = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown fallback provider")
	}
}

func TestConfigValidate_NoCandidates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gemini.APIKey = "key"
	cfg.Gemini.Candidates = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty candidate list")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DAILYQUIZ_GEMINI_API_KEY", "gk")
	t.Setenv("DAILYQUIZ_GEMINI_MODELS", "gemini-2.5-flash@v1beta")
	t.Setenv("DAILYQUIZ_FALLBACK", "anthropic")
	t.Setenv("DAILYQUIZ_ANTHROPIC_API_KEY", "ak")
	t.Setenv("DAILYQUIZ_BUDGET", "45s")

	cfg := ConfigFromEnv()
	if cfg.Gemini.APIKey != "gk" {
		t.Errorf("gemini key = %q, want 'gk'", cfg.Gemini.APIKey)
	}
	if len(cfg.Gemini.Candidates) != 1 || cfg.Gemini.Candidates[0].Model != "gemini-2.5-flash" {
		t.Errorf("candidates = %+v", cfg.Gemini.Candidates)
	}
	if cfg.Fallback != "anthropic" {
		t.Errorf("fallback = %q, want 'anthropic'", cfg.Fallback)
	}
	if cfg.Budget != 45*time.Second {
		t.Errorf("budget = %s, want 45s", cfg.Budget)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validate error: %v", err)
	}
}

func TestConfigFromEnv_BareKeyNames(t *testing.T) {
	t.Setenv("DAILYQUIZ_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "bare")

	cfg := ConfigFromEnv()
	if cfg.Gemini.APIKey != "bare" {
		t.Errorf("gemini key = %q, want 'bare'", cfg.Gemini.APIKey)
	}
}
