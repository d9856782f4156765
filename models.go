package studybuddy

import "time"

// OptionLabels are the labels of the four answer options, in order.
var OptionLabels = []string{"A", "B", "C", "D"}

// Question represents a single multiple choice question read from LLM output or a quiz file
type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"` // labelled A-D in order
	Correct string   `json:"correct"` // option label, kept exactly as generated
}

// Fields returns the question as the 6 fields persisted per quiz file row.
func (q Question) Fields() []string {
	fields := make([]string, 0, 6)
	fields = append(fields, q.Text)
	fields = append(fields, q.Options...)
	return append(fields, q.Correct)
}

func questionFromFields(fields []string) Question {
	options := make([]string, 4)
	copy(options, fields[1:5])
	return Question{
		Text:    fields[0],
		Options: options,
		Correct: fields[5],
	}
}

// AnswerSet maps a 1-based question index to the submitted option label
type AnswerSet map[int]string

// ScoreResult is the outcome of grading one submission
type ScoreResult struct {
	Score    int    `json:"score"`
	Total    int    `json:"total"`
	Feedback string `json:"feedback"`
}

// RejectReason explains why an LLM output line was dropped
type RejectReason string

const (
	RejectFieldCount RejectReason = "field_count"
	RejectDuplicate  RejectReason = "duplicate"
)

// RejectedLine is an LLM output line that did not become a question
type RejectedLine struct {
	Line   int          `json:"line"` // 1-based, relative to the trimmed output
	Text   string       `json:"text"`
	Reason RejectReason `json:"reason"`
}

// ExtractionResult holds the accepted questions and discarded rows of one generation
type ExtractionResult struct {
	Records  []Question     `json:"records"`
	Rejected []RejectedLine `json:"rejected"`
	Skipped  int            `json:"skipped"` // blank, filler and code fence lines
}

// GenerationResult describes a quiz file produced by the Generator
type GenerationResult struct {
	FileName  string         `json:"file_name"`
	Topic     string         `json:"topic"`
	Questions []Question     `json:"questions"`
	Rejected  []RejectedLine `json:"rejected"`
}

// QuizFileRecord is the catalog entry for a generated quiz file
type QuizFileRecord struct {
	FileName      string    `json:"file_name"`
	Topic         string    `json:"topic"`
	QuestionCount int       `json:"question_count"`
	RejectedCount int       `json:"rejected_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
