package studybuddy

import (
	"strings"
)

// fillerPrefixes mark conversational lines the model adds around the CSV rows.
var fillerPrefixes = []string{"Let me know", "Here are", "Here is", "Sure", "```"}

const mcqFieldCount = 6

// ExtractMCQs parses the MCQ output of the model into questions.
// Rows without exactly 6 fields and repeats of an already accepted row are rejected;
// blank, filler and code fence lines are skipped.
func ExtractMCQs(raw string) ExtractionResult {
	var result ExtractionResult
	seen := make(map[[mcqFieldCount]string]struct{})

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return result
	}

	for i, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || isFiller(line) {
			result.Skipped++
			continue
		}

		fields := splitRow(line)
		if len(fields) != mcqFieldCount {
			result.Rejected = append(result.Rejected, RejectedLine{Line: i + 1, Text: line, Reason: RejectFieldCount})
			continue
		}

		var key [mcqFieldCount]string
		copy(key[:], fields)
		if _, dup := seen[key]; dup {
			result.Rejected = append(result.Rejected, RejectedLine{Line: i + 1, Text: line, Reason: RejectDuplicate})
			continue
		}
		seen[key] = struct{}{}

		result.Records = append(result.Records, questionFromFields(fields))
	}

	return result
}

func isFiller(line string) bool {
	for _, prefix := range fillerPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// splitRow splits on every comma, then trims spaces and quotes around each field.
func splitRow(line string) []string {
	parts := strings.Split(line, ",")
	for i, part := range parts {
		parts[i] = strings.Trim(part, `" `)
	}
	return parts
}
