package studybuddy

import (
	"html"
	"html/template"
	"regexp"
)

// FormatRule is a single substitution of the reformatter
type FormatRule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// FormatRules converts the markdown-like markup of model output into HTML fragments.
// Order matters: heading lines are matched after bold markers have already become
// <h5> tags, so "## **X**" ends up as a nested heading.
var FormatRules = []FormatRule{
	{Name: "bold", Pattern: regexp.MustCompile(`\*\*(.*?)\*\*`), Replacement: "<h5>$1</h5>"},
	{Name: "bullet", Pattern: regexp.MustCompile(`(?m)^\*\s*`), Replacement: ""},
	{Name: "heading2", Pattern: regexp.MustCompile(`(?m)^## (.*)$`), Replacement: "<h5>$1</h5>"},
	{Name: "heading1", Pattern: regexp.MustCompile(`(?m)^# (.*)$`), Replacement: "<h5>$1</h5>"},
}

// Reformat applies FormatRules to s in order.
func Reformat(s string) string {
	for _, rule := range FormatRules {
		s = rule.Pattern.ReplaceAllString(s, rule.Replacement)
	}
	return s
}

// RenderHTML escapes s and then reformats it, so the generated heading tags are the
// only markup in the result.
func RenderHTML(s string) template.HTML {
	return template.HTML(Reformat(html.EscapeString(s)))
}
