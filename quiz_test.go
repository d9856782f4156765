package studybuddy

import (
	"net/url"
	"testing"
)

func questionsWithAnswers(labels ...string) []Question {
	questions := make([]Question, len(labels))
	for i, label := range labels {
		questions[i] = Question{Text: "q", Options: []string{"a", "b", "c", "d"}, Correct: label}
	}
	return questions
}

func TestGradeAllCorrect(t *testing.T) {
	questions := questionsWithAnswers("A", "C", "D", "B")
	answers := AnswerSet{1: "A", 2: "C", 3: "D", 4: "B"}

	got := Grade(questions, answers)
	if got.Score != 4 || got.Total != 4 {
		t.Fatalf("want 4/4, got %d/%d", got.Score, got.Total)
	}
	if got.Feedback != FeedbackExcellent {
		t.Fatalf("want=%q got=%q", FeedbackExcellent, got.Feedback)
	}
}

func TestFeedbackBoundaries(t *testing.T) {
	tests := []struct {
		score, total int
		want         string
	}{
		{8, 10, FeedbackExcellent},
		{10, 10, FeedbackExcellent},
		{7, 10, FeedbackGood},
		{6, 10, FeedbackGood},
		{3, 5, FeedbackGood},
		{4, 5, FeedbackExcellent},
		{5, 10, FeedbackRetry},
		{0, 10, FeedbackRetry},
		{0, 0, FeedbackRetry},
	}
	for _, tt := range tests {
		if got := Feedback(tt.score, tt.total); got != tt.want {
			t.Fatalf("Feedback(%d, %d): want=%q got=%q", tt.score, tt.total, tt.want, got)
		}
	}
}

func TestScoreIsExactMatch(t *testing.T) {
	questions := questionsWithAnswers("A", "B", "C")
	answers := AnswerSet{1: "a", 2: "B ", 3: "C"}
	if got := Score(questions, answers); got != 1 {
		t.Fatalf("want score 1, got %d", got)
	}
}

func TestAnswersFromForm(t *testing.T) {
	form := url.Values{}
	form.Set("q1", "A")
	form.Set("q3", "D")
	form.Set("q9", "B")

	answers := AnswersFromForm(form, 3)
	if len(answers) != 2 {
		t.Fatalf("want 2 answers, got %v", answers)
	}
	if _, ok := answers[2]; ok {
		t.Fatalf("missing field must not produce an answer")
	}

	questions := questionsWithAnswers("A", "", "D")
	// q2 was never submitted, so it cannot match even an empty label
	if got := Score(questions, answers); got != 2 {
		t.Fatalf("want score 2, got %d", got)
	}
}
