package studybuddy

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"
)

// LLMLogger writes the transcript of one gateway call to its own file
type LLMLogger struct {
	file   *os.File
	mu     sync.Mutex
	callID string
}

// NewLLMLogger creates <dir>/<callID>.log and writes the call header
func NewLLMLogger(dir, callID, kind string, inputs map[string]string) (*LLMLogger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create transcript directory: %w", err)
	}

	filename := filepath.Join(dir, fmt.Sprintf("%s.log", callID))
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript file: %w", err)
	}

	logger := &LLMLogger{
		file:   file,
		callID: callID,
	}

	logger.Logf("=== %s ===\n", kind)
	logger.Logf("Call ID: %s\n", callID)
	for _, key := range slices.Sorted(maps.Keys(inputs)) {
		logger.Logf("%s: %s\n", key, inputs[key])
	}
	logger.Logf("Started: %s\n", time.Now().Format(time.RFC3339))
	logger.Logf("========================\n\n")

	return logger, nil
}

// Path returns the transcript file name
func (ll *LLMLogger) Path() string {
	return ll.file.Name()
}

// Logf writes a formatted entry with timestamp
func (ll *LLMLogger) Logf(format string, args ...interface{}) {
	ll.mu.Lock()
	defer ll.mu.Unlock()
	ll.logf(format, args...)
}

func (ll *LLMLogger) logf(format string, args ...interface{}) {
	if ll.file == nil {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(ll.file, "[%s] %s", timestamp, fmt.Sprintf(format, args...))
	ll.file.Sync()
}

// LogLLMRequest logs the prompt pair sent to the model
func (ll *LLMLogger) LogLLMRequest(model string, prompt Prompt) {
	ll.Logf("=== LLM REQUEST (%s) ===\n", model)
	ll.Logf("System:\n%s\n", prompt.System)
	ll.Logf("User:\n%s\n", prompt.User)
	ll.Logf("=====================\n\n")
}

// LogLLMResponse logs the raw completion text
func (ll *LLMLogger) LogLLMResponse(model, response string) {
	ll.Logf("=== LLM RESPONSE (%s) ===\n", model)
	ll.Logf("Response:\n%s\n", response)
	ll.Logf("======================\n\n")
}

// LogLLMError logs a failed call
func (ll *LLMLogger) LogLLMError(model string, err error) {
	ll.Logf("=== LLM ERROR (%s) ===\n%v\n\n", model, err)
}

// LogExtraction logs which rows of an MCQ response were kept and which were dropped
func (ll *LLMLogger) LogExtraction(result ExtractionResult) {
	ll.Logf("Accepted rows: %d, rejected rows: %d, skipped lines: %d\n",
		len(result.Records), len(result.Rejected), result.Skipped)
	for _, rej := range result.Rejected {
		ll.Logf("Line %d: %s - %s\n", rej.Line, rej.Reason, rej.Text)
	}
}

// Close closes the transcript file
func (ll *LLMLogger) Close() error {
	ll.mu.Lock()
	defer ll.mu.Unlock()

	if ll.file == nil {
		return nil
	}
	ll.logf("=== Call Complete ===\n")
	ll.logf("Completed: %s\n", time.Now().Format(time.RFC3339))
	err := ll.file.Close()
	ll.file = nil
	return err
}
