package main

import (
	"bytes"
	"strings"
	"testing"

	"studybuddy"
)

func testResult() *studybuddy.GenerationResult {
	return &studybuddy.GenerationResult{
		FileName: "math_mcqs.csv",
		Topic:    "math",
		Questions: []studybuddy.Question{
			{Text: "2 + 2?", Options: []string{"3", "4", "5", "6"}, Correct: "B"},
			{Text: "3 * 3?", Options: []string{"6", "8", "9", "12"}, Correct: "C"},
		},
	}
}

func TestPlayQuiz(t *testing.T) {
	in := strings.NewReader("b\nx\nC\n")
	var out bytes.Buffer

	got := playQuiz(in, &out, testResult())
	if got.Score != 2 || got.Total != 2 {
		t.Fatalf("want 2/2, got %d/%d", got.Score, got.Total)
	}
	if got.Feedback != studybuddy.FeedbackExcellent {
		t.Fatalf("want=%q got=%q", studybuddy.FeedbackExcellent, got.Feedback)
	}
	if !strings.Contains(out.String(), "Please enter A, B, C, or D") {
		t.Fatalf("invalid input was not rejected:\n%s", out.String())
	}
}

func TestPlayQuizInputClosed(t *testing.T) {
	var out bytes.Buffer
	got := playQuiz(strings.NewReader("A\n"), &out, testResult())
	if got.Score != 0 || got.Total != 2 {
		t.Fatalf("want 0/2, got %d/%d", got.Score, got.Total)
	}
	if got.Feedback != studybuddy.FeedbackRetry {
		t.Fatalf("want=%q got=%q", studybuddy.FeedbackRetry, got.Feedback)
	}
}
