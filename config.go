package studybuddy

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL   = "https://api.groq.com/openai/v1"
	DefaultChatModel = "llama3-8b-8192"
	DefaultMCQModel  = "gemma2-9b-it"
)

// Config holds the settings shared by the binaries
type Config struct {
	APIKey        string
	BaseURL       string
	ChatModel     string
	MCQModel      string
	LLMTimeout    time.Duration
	TranscriptDir string

	Port          string
	SessionSecret string
	QuizDir       string
	DBPath        string
	QuizRetention time.Duration // 0 keeps quiz files forever

	LogMode string
	Verbose bool
}

// LoadEnv loads a .env file from the working directory if there is one.
// It reports whether a file was loaded.
func LoadEnv() bool {
	return godotenv.Load() == nil
}

// LoadConfig reads the configuration from the environment
func LoadConfig() Config {
	return Config{
		APIKey:        strings.TrimSpace(os.Getenv("GROQ_APIKEY")),
		BaseURL:       getEnv("LLM_BASE_URL", DefaultBaseURL),
		ChatModel:     getEnv("LLM_CHAT_MODEL", DefaultChatModel),
		MCQModel:      getEnv("LLM_MCQ_MODEL", DefaultMCQModel),
		LLMTimeout:    getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		TranscriptDir: getEnv("LLM_TRANSCRIPT_DIR", ""),

		Port:          getEnv("PORT", "8180"),
		SessionSecret: getEnv("SESSION_SECRET", "change-me-session-secret"),
		QuizDir:       getEnv("QUIZ_DIR", "generated_quizzes"),
		DBPath:        getEnv("DB_PATH", "./studybuddy.db"),
		QuizRetention: getEnvDuration("QUIZ_RETENTION", 0),

		LogMode: getEnv("LOG_MODE", "dev"),
		Verbose: getEnvBool("VERBOSE", false),
	}
}

// GatewayConfig returns the gateway part of the configuration
func (c Config) GatewayConfig() GatewayConfig {
	return GatewayConfig{
		APIKey:        c.APIKey,
		BaseURL:       c.BaseURL,
		ChatModel:     c.ChatModel,
		MCQModel:      c.MCQModel,
		Timeout:       c.LLMTimeout,
		TranscriptDir: c.TranscriptDir,
	}
}

func getEnv(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func getEnvDuration(name string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func getEnvBool(name string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
