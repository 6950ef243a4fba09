// Package render provides output renderers for the mark2docx pipeline.
// This file implements the DOCX renderer, which maps the emitted
// Document model onto an OOXML package using gooxml.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"baliance.com/gooxml"
	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"

	"github.com/danyQe/mark2docx/core"
)

// DocxRenderer renders the Document model as a Word-compatible file.
type DocxRenderer struct{}

// NewDocxRenderer creates a DocxRenderer.
func NewDocxRenderer() *DocxRenderer {
	return &DocxRenderer{}
}

// Render converts an emitted Document into DOCX bytes. Backend and
// serialization failures propagate; everything structural has already
// been absorbed by the emitter.
func (r *DocxRenderer) Render(d *core.Document, styles *core.StyleSheet, meta core.DocMetadata) ([]byte, error) {
	doc := document.New()
	if meta.Title != "" {
		doc.CoreProperties.SetTitle(meta.Title)
	}
	setupStyles(doc, styles)

	for _, b := range d.Blocks {
		switch b.Kind {
		case core.KindParagraph:
			writeParagraph(doc, b, styles)
		case core.KindTable:
			writeTable(doc, b.Table, styles)
		case core.KindRule:
			writeRule(doc, b, styles)
		}
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("validating docx: %w", err)
	}
	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("serializing docx: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for DOCX output.
func (r *DocxRenderer) Extension() string {
	return ".docx"
}

// setupStyles configures the named styles the emitter refers to,
// overriding the template defaults with the style sheet values.
func setupStyles(doc *document.Document, ss *core.StyleSheet) {
	for i, h := range ss.Headings {
		st := ensureStyle(doc, fmt.Sprintf("Heading%d", i+1), wml.ST_StyleTypeParagraph)
		rp := st.RunProperties()
		rp.SetSize(measurement.Distance(h.SizePt) * measurement.Point)
		rp.SetBold(h.Bold)
		rp.SetColor(rgb(h.Color))
	}

	for _, id := range []string{core.StyleQuote, core.StyleListBullet, core.StyleListNumber} {
		ensureStyle(doc, id, wml.ST_StyleTypeParagraph)
	}

	code := ensureStyle(doc, "Code", wml.ST_StyleTypeCharacter)
	crp := code.RunProperties()
	crp.SetFontFamily(ss.Code.Font)
	crp.SetSize(measurement.Distance(ss.Code.SizePt) * measurement.Point)
	crp.SetColor(rgb(ss.Code.Color))

	block := ensureStyle(doc, core.StyleCodeBlock, wml.ST_StyleTypeParagraph)
	brp := block.RunProperties()
	brp.SetFontFamily(ss.Code.Font)
	brp.SetSize(measurement.Distance(ss.Code.SizePt) * measurement.Point)
	brp.SetColor(rgb(ss.Code.Color))
}

// ensureStyle returns the style with the given ID, creating it when
// the template does not define it.
func ensureStyle(doc *document.Document, id string, t wml.ST_StyleType) document.Style {
	for _, s := range doc.Styles.Styles() {
		if s.StyleID() == id {
			return s
		}
	}
	st := doc.Styles.AddStyle(id, t, false)
	st.SetName(id)
	return st
}

func writeParagraph(doc *document.Document, b core.Block, ss *core.StyleSheet) {
	para := doc.AddParagraph()
	if b.Style != core.StyleDefault {
		para.SetStyle(b.Style)
	}
	if b.Indent > 0 {
		step := ss.ListIndent
		if b.Style == core.StyleQuote {
			step = ss.QuoteIndent
		}
		setLeftIndent(para, int64(b.Indent*step))
	}
	writeRuns(para, b.Runs, ss)
}

// setLeftIndent applies a left indent in twips via the raw paragraph
// properties; gooxml has no high-level setter for it.
func setLeftIndent(para document.Paragraph, twips int64) {
	ppr := para.Properties().X()
	if ppr.Ind == nil {
		ppr.Ind = wml.NewCT_Ind()
	}
	ppr.Ind.LeftAttr = &wml.ST_SignedTwipsMeasure{Int64: gooxml.Int64(twips)}
}

// writeRuns appends runs to a paragraph, grouping consecutive runs
// that share a link target into one clickable hyperlink. Hyperlinks
// also carry a visible " (url)" suffix so the target survives
// printing.
func writeRuns(para document.Paragraph, runs []core.Run, ss *core.StyleSheet) {
	for i := 0; i < len(runs); {
		r := runs[i]
		if r.Href == "" {
			applyRun(para.AddRun(), r, ss)
			i++
			continue
		}
		j := i
		for j < len(runs) && runs[j].Href == r.Href {
			j++
		}
		hl := para.AddHyperLink()
		hl.SetTarget(r.Href)
		for _, lr := range runs[i:j] {
			applyRun(hl.AddRun(), lr, ss)
		}
		applyRun(hl.AddRun(), core.Run{
			Text:      " (" + r.Href + ")",
			Underline: true,
			Href:      r.Href,
		}, ss)
		i = j
	}
}

// applyRun writes one run's text and formatting. Newlines in run text
// become explicit line breaks, which is how code blocks keep their
// internal layout.
func applyRun(run document.Run, r core.Run, ss *core.StyleSheet) {
	props := run.Properties()
	if r.Bold {
		props.SetBold(true)
	}
	if r.Italic {
		props.SetItalic(true)
	}
	if r.Code {
		props.SetStyle("Code")
		props.SetFontFamily(ss.Code.Font)
		props.SetSize(measurement.Distance(ss.Code.SizePt) * measurement.Point)
		props.SetColor(rgb(ss.Code.Color))
	}
	if r.Href != "" {
		props.SetColor(rgb(ss.LinkColor))
	}
	if r.Underline {
		uc := color.Auto
		if r.Href != "" {
			uc = rgb(ss.LinkColor)
		}
		props.SetUnderline(wml.ST_UnderlineSingle, uc)
	}

	for i, line := range strings.Split(r.Text, "\n") {
		if i > 0 {
			run.AddBreak()
		}
		if line != "" {
			run.AddText(line)
		}
	}
}

func writeTable(doc *document.Document, t *core.Table, ss *core.StyleSheet) {
	table := doc.AddTable()
	table.Properties().SetWidthPercent(100)
	table.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Auto, 0.5*measurement.Point)

	for _, row := range t.Rows {
		tr := table.AddRow()
		for _, cell := range row {
			para := tr.AddCell().AddParagraph()
			runs := cell.Runs
			if cell.Header {
				runs = boldRuns(runs)
			}
			writeRuns(para, runs, ss)
		}
	}
}

func boldRuns(runs []core.Run) []core.Run {
	out := make([]core.Run, len(runs))
	for i, r := range runs {
		r.Bold = true
		out[i] = r
	}
	return out
}

// writeRule emits the horizontal rule as a centered separator glyph.
func writeRule(doc *document.Document, b core.Block, ss *core.StyleSheet) {
	para := doc.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcCenter)
	if b.Indent > 0 {
		setLeftIndent(para, int64(b.Indent*ss.ListIndent))
	}
	para.AddRun().AddText(ss.RuleGlyph)
}

func rgb(c core.RGB) color.Color {
	return color.RGB(c.R, c.G, c.B)
}
