package studybuddy

import "testing"

func TestReformat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "Start with **Day 1** today", "Start with <h5>Day 1</h5> today"},
		{"bullets", "* read chapter 1\n* take notes", "read chapter 1\ntake notes"},
		{"headings", "# Plan\n## Week 1\ntext", "<h5>Plan</h5>\n<h5>Week 1</h5>\ntext"},
		{"heading without trailing newline", "## Summary", "<h5>Summary</h5>"},
		{"heading markers mid-line", "see ## this and # that", "see ## this and # that"},
		{"bold inside heading", "## **Goals**", "<h5><h5>Goals</h5></h5>"},
		{"plain", "nothing to do here", "nothing to do here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reformat(tt.in); got != tt.want {
				t.Fatalf("want=%q got=%q", tt.want, got)
			}
		})
	}
}

func TestReformatIdempotentOnFinalForm(t *testing.T) {
	inputs := []string{
		"<h5>Day 1</h5>\nRead the introduction.",
		"# Plan\n**Day 1**\n* review notes",
	}
	for _, in := range inputs {
		once := Reformat(in)
		if twice := Reformat(once); twice != once {
			t.Fatalf("second pass changed output: once=%q twice=%q", once, twice)
		}
	}
}

func TestFormatRulesOrder(t *testing.T) {
	want := []string{"bold", "bullet", "heading2", "heading1"}
	if len(FormatRules) != len(want) {
		t.Fatalf("want %d rules, got %d", len(want), len(FormatRules))
	}
	for i, rule := range FormatRules {
		if rule.Name != want[i] {
			t.Fatalf("rule %d: want=%q got=%q", i, want[i], rule.Name)
		}
	}
}

func TestRenderHTMLEscapesModelOutput(t *testing.T) {
	got := string(RenderHTML("<script>alert(1)</script> **Tip** & more"))
	want := "&lt;script&gt;alert(1)&lt;/script&gt; <h5>Tip</h5> &amp; more"
	if got != want {
		t.Fatalf("want=%q got=%q", want, got)
	}
}
