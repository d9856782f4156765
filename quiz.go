package studybuddy

import (
	"fmt"
	"net/url"
)

// Feedback messages, from best to worst tier.
const (
	FeedbackExcellent = "Excellent work! Keep it up!"
	FeedbackGood      = "Good job! A bit more practice will help you."
	FeedbackRetry     = "Don't be discouraged! Review the material and try again."
)

// AnswerFieldName is the form field carrying the answer to question i (1-based).
func AnswerFieldName(i int) string {
	return fmt.Sprintf("q%d", i)
}

// AnswersFromForm collects answers q1..qN. Questions without a submitted field are left out,
// so they can never match.
func AnswersFromForm(form url.Values, n int) AnswerSet {
	answers := make(AnswerSet, n)
	for i := 1; i <= n; i++ {
		if values, ok := form[AnswerFieldName(i)]; ok && len(values) > 0 {
			answers[i] = values[0]
		}
	}
	return answers
}

// Score counts the questions whose submitted label equals the stored label exactly.
func Score(questions []Question, answers AnswerSet) int {
	score := 0
	for i, q := range questions {
		answer, ok := answers[i+1]
		if ok && answer == q.Correct {
			score++
		}
	}
	return score
}

// Feedback picks the message for score out of total: 80% and above is excellent,
// 60% and above is good.
func Feedback(score, total int) string {
	if total <= 0 {
		return FeedbackRetry
	}
	switch {
	case score*100 >= 80*total:
		return FeedbackExcellent
	case score*100 >= 60*total:
		return FeedbackGood
	default:
		return FeedbackRetry
	}
}

// Grade scores a submission and attaches feedback
func Grade(questions []Question, answers AnswerSet) ScoreResult {
	score := Score(questions, answers)
	return ScoreResult{
		Score:    score,
		Total:    len(questions),
		Feedback: Feedback(score, len(questions)),
	}
}
