package studybuddy

import (
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WriteQuizPDF renders a printable quiz: the questions with lettered options,
// then an answer key on its own page.
func WriteQuizPDF(w io.Writer, topic string, questions []Question) error {
	title := fmt.Sprintf("%s Quiz", cases.Title(language.English).String(topic))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle(title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// ---------- title ----------
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// ---------- questions ----------
	for i, q := range questions {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, tr(fmt.Sprintf("%d. %s", i+1, q.Text)), "", "L", false)
		pdf.SetFont("Helvetica", "", 12)
		for j, option := range q.Options {
			label := "?"
			if j < len(OptionLabels) {
				label = OptionLabels[j]
			}
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("    %s) %s", label, option)), "", "L", false)
		}
		pdf.Ln(3)
	}

	// ---------- answers ----------
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, tr(title+" Answer Key"), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 12)
	for i, q := range questions {
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", i+1, q.Correct)), "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render quiz PDF: %w", err)
	}
	return nil
}
