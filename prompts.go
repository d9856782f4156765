package studybuddy

import (
	"fmt"
	"strings"
)

// Instructional messages returned instead of calling the model when input is missing.
const (
	MsgStudyPlanMissingInput = "Please enter both the topic and number of days."
	MsgQuestionMissingInput  = "Please enter a question."
	MsgTopicMissingInput     = "Please enter a topic to generate MCQs."
)

// MCQCount is the number of rows the MCQ prompt asks for.
const MCQCount = 10

// SummaryMaxLines caps the summary returned by Summarize.
const SummaryMaxLines = 5

// Prompt is the system+user message pair sent for one completion
type Prompt struct {
	System string
	User   string
}

func studyPlanPrompt(topic, days string) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Create a study plan for the topic '%s' to be completed in %s days. ", topic, days))
	sb.WriteString("Divide the content to be covered each day, with specific learning objectives and ")
	sb.WriteString(fmt.Sprintf("activities or tasks for each day to ensure thorough understanding by the end of %s days.", days))

	return Prompt{
		System: "You are an AI assistant helping users create structured study plans. " +
			"When a user provides a topic and number of days, provide a daily or weekly study plan. " +
			"Do not simplify the topic as if explaining to a child; instead, give detailed steps and objectives " +
			"for each study day or week.",
		User: sb.String(),
	}
}

func summaryPrompt(question string) Prompt {
	return Prompt{
		System: fmt.Sprintf("You are a helpful AI Assistant. Summarize any question or topic given by the user into no more than %d sentences.", SummaryMaxLines),
		User:   question,
	}
}

func mcqPrompt(topic string) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generate %d multiple choice questions (MCQs).\n", MCQCount))
	sb.WriteString("Provide the output in the following CSV format without any headers or additional comments:\n")
	sb.WriteString(`"Question", "Option_A", "Option_B", "Option_C", "Option_D", "Correct_Answer"` + "\n")
	sb.WriteString("Example:\n")
	sb.WriteString(`"What is 2 + 2?", "3", "4", "5", "6", "B"` + "\n")
	sb.WriteString("Requirements:\n")
	sb.WriteString("- One question per line, exactly 6 quoted fields\n")
	sb.WriteString("- Correct_Answer is the letter A, B, C or D\n")
	sb.WriteString("- Do not use commas inside a field\n")

	return Prompt{
		System: sb.String(),
		User:   fmt.Sprintf("Generate %d multiple choice questions (MCQs) on the topic: %s", MCQCount, topic),
	}
}

// capLines keeps the first n lines of s.
func capLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
