package studybuddy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrMissingAPIKey   = errors.New("missing LLM API key")
	ErrEmptyCompletion = errors.New("no choices in completion")
)

// ChatCompleter is the part of the OpenAI client the gateway needs
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// GatewayConfig configures the LLM client and models
type GatewayConfig struct {
	APIKey        string
	BaseURL       string
	ChatModel     string // study plans and summaries
	MCQModel      string
	Timeout       time.Duration
	TranscriptDir string // empty disables transcripts
}

// Gateway sends one-shot prompts to an OpenAI-compatible chat completion API
type Gateway struct {
	client        ChatCompleter
	chatModel     string
	mcqModel      string
	transcriptDir string
	log           *Logger
}

// NewGateway creates a gateway backed by the go-openai client
func NewGateway(cfg GatewayConfig, log *Logger) (*Gateway, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return NewGatewayWithClient(openai.NewClientWithConfig(clientCfg), cfg, log), nil
}

// NewGatewayWithClient creates a gateway around an existing client
func NewGatewayWithClient(client ChatCompleter, cfg GatewayConfig, log *Logger) *Gateway {
	if log == nil {
		log = NewNopLogger()
	}
	return &Gateway{
		client:        client,
		chatModel:     cfg.ChatModel,
		mcqModel:      cfg.MCQModel,
		transcriptDir: cfg.TranscriptDir,
		log:           log,
	}
}

// StudyPlan asks the chat model for a day-by-day study plan
func (g *Gateway) StudyPlan(ctx context.Context, topic, days string) (string, error) {
	if topic == "" || days == "" {
		return MsgStudyPlanMissingInput, nil
	}
	text, err := g.complete(ctx, "study_plan", g.chatModel, studyPlanPrompt(topic, days),
		map[string]string{"Topic": topic, "Days": days})
	return text, err
}

// Summarize answers a question in at most SummaryMaxLines lines
func (g *Gateway) Summarize(ctx context.Context, question string) (string, error) {
	if question == "" {
		return MsgQuestionMissingInput, nil
	}
	text, err := g.complete(ctx, "summary", g.chatModel, summaryPrompt(question),
		map[string]string{"Question": question})
	if err != nil {
		return "", err
	}
	return capLines(text, SummaryMaxLines), nil
}

// GenerateMCQs asks the MCQ model for MCQCount CSV rows on a topic
func (g *Gateway) GenerateMCQs(ctx context.Context, topic string) (string, error) {
	text, transcript, err := g.generateMCQs(ctx, topic)
	if transcript != nil {
		transcript.Close()
	}
	return text, err
}

// generateMCQs leaves the transcript open so the caller can log the extraction outcome.
func (g *Gateway) generateMCQs(ctx context.Context, topic string) (string, *LLMLogger, error) {
	if topic == "" {
		return MsgTopicMissingInput, nil, nil
	}
	return g.completeWithTranscript(ctx, "mcq", g.mcqModel, mcqPrompt(topic),
		map[string]string{"Topic": topic})
}

func (g *Gateway) complete(ctx context.Context, kind, model string, prompt Prompt, inputs map[string]string) (string, error) {
	text, transcript, err := g.completeWithTranscript(ctx, kind, model, prompt, inputs)
	if transcript != nil {
		transcript.Close()
	}
	return text, err
}

func (g *Gateway) completeWithTranscript(ctx context.Context, kind, model string, prompt Prompt, inputs map[string]string) (string, *LLMLogger, error) {
	callID := uuid.New().String()
	log := g.log.With("call_id", callID, "kind", kind, "model", model)

	var transcript *LLMLogger
	if g.transcriptDir != "" {
		t, err := NewLLMLogger(g.transcriptDir, callID, kind, inputs)
		if err != nil {
			// Continue without a transcript rather than failing the request
			log.Warn("Failed to create transcript", "error", err)
		} else {
			transcript = t
			transcript.LogLLMRequest(model, prompt)
		}
	}

	log.Debug("Sending completion request")
	start := time.Now()

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: prompt.System,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt.User,
				},
			},
		},
	)
	if err != nil {
		if transcript != nil {
			transcript.LogLLMError(model, err)
		}
		log.Error("Completion request failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return "", transcript, fmt.Errorf("failed to create %s completion: %w", kind, err)
	}

	if len(resp.Choices) == 0 {
		if transcript != nil {
			transcript.LogLLMError(model, ErrEmptyCompletion)
		}
		return "", transcript, fmt.Errorf("failed to create %s completion: %w", kind, ErrEmptyCompletion)
	}

	text := resp.Choices[0].Message.Content
	if transcript != nil {
		transcript.LogLLMResponse(model, text)
	}
	log.Debug("Received completion",
		"duration_ms", time.Since(start).Milliseconds(),
		"chars", len(text),
		"total_tokens", resp.Usage.TotalTokens)

	return text, transcript, nil
}
