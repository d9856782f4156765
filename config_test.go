package studybuddy

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, name := range []string{"GROQ_APIKEY", "LLM_BASE_URL", "LLM_CHAT_MODEL", "LLM_MCQ_MODEL", "LLM_TIMEOUT",
		"PORT", "QUIZ_DIR", "DB_PATH", "QUIZ_RETENTION", "LOG_MODE", "VERBOSE"} {
		t.Setenv(name, "")
	}

	cfg := LoadConfig()
	if cfg.BaseURL != DefaultBaseURL || cfg.ChatModel != DefaultChatModel || cfg.MCQModel != DefaultMCQModel {
		t.Fatalf("unexpected LLM defaults: %+v", cfg)
	}
	if cfg.Port != "8180" || cfg.QuizDir != "generated_quizzes" {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
	if cfg.LLMTimeout != 60*time.Second || cfg.QuizRetention != 0 || cfg.Verbose {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("GROQ_APIKEY", "  gsk_test  ")
	t.Setenv("LLM_MCQ_MODEL", "other-model")
	t.Setenv("LLM_TIMEOUT", "15s")
	t.Setenv("QUIZ_RETENTION", "72h")
	t.Setenv("VERBOSE", "true")

	cfg := LoadConfig()
	if cfg.APIKey != "gsk_test" {
		t.Fatalf("want trimmed key, got %q", cfg.APIKey)
	}
	if cfg.QuizRetention != 72*time.Hour || cfg.LLMTimeout != 15*time.Second || !cfg.Verbose {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	gw := cfg.GatewayConfig()
	if gw.MCQModel != "other-model" || gw.Timeout != 15*time.Second || gw.APIKey != "gsk_test" {
		t.Fatalf("unexpected gateway config: %+v", gw)
	}
}

func TestLoadConfigIgnoresBadValues(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "soon")
	t.Setenv("QUIZ_RETENTION", "-1h")
	t.Setenv("VERBOSE", "maybe")

	cfg := LoadConfig()
	if cfg.LLMTimeout != 60*time.Second || cfg.QuizRetention != 0 || cfg.Verbose {
		t.Fatalf("bad values should fall back to defaults: %+v", cfg)
	}
}
