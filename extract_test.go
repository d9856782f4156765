package studybuddy

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractMCQsKeepsOrder(t *testing.T) {
	var lines []string
	for i := 1; i <= 10; i++ {
		lines = append(lines, fmt.Sprintf(`"Question %d?", "a%d", "b%d", "c%d", "d%d", "B"`, i, i, i, i, i))
	}

	result := ExtractMCQs(strings.Join(lines, "\n"))
	if len(result.Records) != 10 {
		t.Fatalf("want 10 records, got %d", len(result.Records))
	}
	if len(result.Rejected) != 0 {
		t.Fatalf("unexpected rejects: %+v", result.Rejected)
	}
	for i, q := range result.Records {
		if want := fmt.Sprintf("Question %d?", i+1); q.Text != want {
			t.Fatalf("record %d: want=%q got=%q", i, want, q.Text)
		}
		if q.Correct != "B" {
			t.Fatalf("record %d: want correct B, got %q", i, q.Correct)
		}
		if len(q.Options) != 4 || q.Options[0] != fmt.Sprintf("a%d", i+1) {
			t.Fatalf("record %d: unexpected options %v", i, q.Options)
		}
	}
}

func TestExtractMCQsDropsDuplicateAndMalformed(t *testing.T) {
	raw := strings.Join([]string{
		`"What is 2 + 2?", "3", "4", "5", "6", "B"`,
		`"Capital of France?", "Rome", "Paris", "Oslo", "Bern", "B"`,
		`"What is 2 + 2?", "3", "4", "5", "6", "B"`,
		`"Only five fields", "1", "2", "3", "A"`,
	}, "\n")

	result := ExtractMCQs(raw)
	if len(result.Records) != 2 {
		t.Fatalf("want 2 records, got %d", len(result.Records))
	}
	if len(result.Rejected) != 2 {
		t.Fatalf("want 2 rejected rows, got %+v", result.Rejected)
	}

	dup, bad := result.Rejected[0], result.Rejected[1]
	if dup.Line != 3 || dup.Reason != RejectDuplicate {
		t.Fatalf("unexpected duplicate reject: %+v", dup)
	}
	if bad.Line != 4 || bad.Reason != RejectFieldCount {
		t.Fatalf("unexpected malformed reject: %+v", bad)
	}
}

func TestExtractMCQsSkipsFiller(t *testing.T) {
	raw := "Here are 10 multiple choice questions:\n\n```csv\n" +
		`"Q1?", "a", "b", "c", "d", "A"` + "\r\n" +
		"```\n" +
		"Let me know if you need more!"

	result := ExtractMCQs(raw)
	if len(result.Records) != 1 {
		t.Fatalf("want 1 record, got %d", len(result.Records))
	}
	if result.Skipped != 5 {
		t.Fatalf("want 5 skipped lines, got %d", result.Skipped)
	}
	if got := result.Records[0].Correct; got != "A" {
		t.Fatalf("want=%q got=%q", "A", got)
	}
}

func TestExtractMCQsCommaInsideField(t *testing.T) {
	result := ExtractMCQs(`"Pick one, please", "a", "b", "c", "d", "A"`)
	if len(result.Records) != 0 {
		t.Fatalf("want no records, got %+v", result.Records)
	}
	if len(result.Rejected) != 1 || result.Rejected[0].Reason != RejectFieldCount {
		t.Fatalf("unexpected rejects: %+v", result.Rejected)
	}
}

func TestExtractMCQsEmpty(t *testing.T) {
	for _, raw := range []string{"", "   \n\n  "} {
		result := ExtractMCQs(raw)
		if len(result.Records) != 0 || len(result.Rejected) != 0 {
			t.Fatalf("raw=%q: want empty result, got %+v", raw, result)
		}
	}
}
