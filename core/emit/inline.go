package emit

import (
	"strings"

	"github.com/danyQe/mark2docx/core"
)

// format is the attribute set inherited while walking inline spans.
// Nested spans compose additively: bold inside a link yields a run
// that is both bold and underlined.
type format struct {
	bold      bool
	italic    bool
	code      bool
	underline bool
	href      string
}

func (f format) run(text string) core.Run {
	return core.Run{
		Text:      text,
		Bold:      f.bold,
		Italic:    f.italic,
		Code:      f.code,
		Underline: f.underline,
		Href:      f.href,
	}
}

// inlineRuns flattens inline nodes into a run sequence, applying f
// additively down the span tree.
func inlineRuns(nodes []*core.Node, f format) []core.Run {
	var runs []core.Run
	for _, n := range nodes {
		switch n.Tag {
		case core.TagText:
			runs = append(runs, f.run(n.Text))
		case core.TagLineBreak:
			runs = append(runs, f.run("\n"))
		case core.TagStrong:
			g := f
			g.bold = true
			runs = append(runs, inlineRuns(n.Children, g)...)
		case core.TagEmphasis:
			g := f
			g.italic = true
			runs = append(runs, inlineRuns(n.Children, g)...)
		case core.TagCode:
			g := f
			g.code = true
			runs = append(runs, inlineRuns(n.Children, g)...)
		case core.TagLink:
			g := f
			g.underline = true
			g.href = n.Href
			runs = append(runs, inlineRuns(n.Children, g)...)
		case core.TagCodeBlock:
			// A code block nested in inline context degrades to a
			// code span.
			g := f
			g.code = true
			runs = append(runs, g.run(n.Text))
		default:
			runs = append(runs, inlineRuns(n.Children, f)...)
		}
	}
	return runs
}

// trimEdges trims leading whitespace from the first run and trailing
// whitespace from the last, dropping runs emptied by the trim.
// Interior whitespace is untouched.
func trimEdges(runs []core.Run) []core.Run {
	for len(runs) > 0 {
		runs[0].Text = strings.TrimLeft(runs[0].Text, " \t\n")
		if runs[0].Text != "" {
			break
		}
		runs = runs[1:]
	}
	for len(runs) > 0 {
		last := len(runs) - 1
		runs[last].Text = strings.TrimRight(runs[last].Text, " \t\n")
		if runs[last].Text != "" {
			break
		}
		runs = runs[:last]
	}
	return runs
}
