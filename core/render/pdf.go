// Package render — PDF renderer.
// Renders the emitted Document model as a styled PDF using gofpdf.
// Handles headings (variable font sizes), paragraphs, list items,
// code blocks, tables, and rules. PDF output has no hyperlink fields,
// so link runs keep their visible " (url)" suffix only.
package render

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/danyQe/mark2docx/core"
)

// PDFRenderer renders the Document model as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// headingSizes maps heading level to font size in points.
var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}

// indentStep is the horizontal indent per nesting level, in mm.
const indentStep = 6.0

// Render converts an emitted Document into PDF bytes.
func (r *PDFRenderer) Render(d *core.Document, styles *core.StyleSheet, meta core.DocMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, meta.Title, "", "L", false)
		pdf.Ln(4)
	}

	left, _, _, _ := pdf.GetMargins()
	for _, b := range d.Blocks {
		pdf.SetLeftMargin(left + float64(b.Indent)*indentStep)
		pdf.SetX(left + float64(b.Indent)*indentStep)
		switch b.Kind {
		case core.KindParagraph:
			renderBlock(pdf, b, styles)
		case core.KindTable:
			renderTable(pdf, b.Table)
		case core.KindRule:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, styles.RuleGlyph, "", "C", false)
			pdf.Ln(2)
		}
	}
	pdf.SetLeftMargin(left)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderBlock writes one paragraph-like block, choosing font by style.
func renderBlock(pdf *gofpdf.Fpdf, b core.Block, styles *core.StyleSheet) {
	switch {
	case strings.HasPrefix(b.Style, "Heading"):
		level := int(b.Style[len(b.Style)-1] - '0')
		size, ok := headingSizes[level]
		if !ok {
			size = 10
		}
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", size)
		pdf.MultiCell(0, size*0.6, blockText(b), "", "L", false)
		pdf.Ln(2)
	case b.Style == core.StyleCodeBlock:
		pdf.Ln(2)
		pdf.SetFont("Courier", "", 9)
		pdf.SetFillColor(245, 245, 245)
		for _, line := range strings.Split(blockText(b), "\n") {
			pdf.MultiCell(0, 4.5, line, "", "L", true)
		}
		pdf.Ln(2)
	default:
		renderRuns(pdf, b.Runs)
		pdf.Ln(5)
	}
}

// renderRuns writes a run sequence with per-run fonts using Write, so
// mixed formatting stays on one flowing line.
func renderRuns(pdf *gofpdf.Fpdf, runs []core.Run) {
	for _, r := range runs {
		style := ""
		if r.Bold {
			style += "B"
		}
		if r.Italic {
			style += "I"
		}
		if r.Underline {
			style += "U"
		}
		if r.Code {
			pdf.SetFont("Courier", style, 9)
		} else {
			pdf.SetFont("Helvetica", style, 10)
		}
		if r.Href != "" {
			pdf.SetTextColor(0, 0, 255)
		}
		text := r.Text
		if r.Href != "" {
			text += " (" + r.Href + ")"
		}
		for i, line := range strings.Split(text, "\n") {
			if i > 0 {
				pdf.Ln(5)
			}
			pdf.Write(5, line)
		}
		pdf.SetTextColor(0, 0, 0)
	}
}

// renderTable draws a bordered grid with a bold first row.
func renderTable(pdf *gofpdf.Fpdf, t *core.Table) {
	if t == nil || t.Cols == 0 {
		return
	}
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(t.Cols)

	pdf.Ln(2)
	for _, row := range t.Rows {
		for _, cell := range row {
			style := ""
			if cell.Header {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 10)
			var text strings.Builder
			for _, r := range cell.Runs {
				text.WriteString(r.Text)
			}
			pdf.CellFormat(colW, 6, text.String(), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(2)
}

// blockText concatenates a block's run texts.
func blockText(b core.Block) string {
	var s strings.Builder
	for _, r := range b.Runs {
		s.WriteString(r.Text)
	}
	return s.String()
}
