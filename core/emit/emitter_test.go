package emit_test

import (
	"reflect"
	"testing"

	"github.com/danyQe/mark2docx/core"
	"github.com/danyQe/mark2docx/core/emit"
	"github.com/danyQe/mark2docx/core/parse"
)

// convert parses markdown and emits it, failing the test on error.
func convert(t *testing.T, markdown string) *core.Document {
	t.Helper()
	tree, err := parse.New().Parse(markdown)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	doc, err := emit.New().Emit(tree, core.NewDocument())
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	return doc
}

func TestEmitParagraphRuns(t *testing.T) {
	doc := convert(t, "Hello **world**")

	if len(doc.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(doc.Blocks))
	}
	b := doc.Blocks[0]
	if b.Style != core.StyleDefault {
		t.Errorf("style = %q, want default", b.Style)
	}
	want := []core.Run{
		{Text: "Hello "},
		{Text: "world", Bold: true},
	}
	if !reflect.DeepEqual(b.Runs, want) {
		t.Errorf("runs = %+v, want %+v", b.Runs, want)
	}
	if b.Text() != "Hello world" {
		t.Errorf("block text = %q, want %q", b.Text(), "Hello world")
	}
}

func TestEmitHeadingStyles(t *testing.T) {
	doc := convert(t, "# One\n\n## Two\n\n###### Six\n")

	wantStyles := []string{"Heading1", "Heading2", "Heading6"}
	if len(doc.Blocks) != len(wantStyles) {
		t.Fatalf("got %d blocks, want %d", len(doc.Blocks), len(wantStyles))
	}
	for i, want := range wantStyles {
		if doc.Blocks[i].Style != want {
			t.Errorf("block %d style = %q, want %q", i, doc.Blocks[i].Style, want)
		}
	}
}

func TestEmitHeadingLevelClamped(t *testing.T) {
	tree := &core.Node{Tag: core.TagDocument}
	tree.AppendChild(&core.Node{
		Tag:      core.TagHeading,
		Level:    9,
		Children: []*core.Node{{Tag: core.TagText, Text: "deep"}},
	})
	tree.AppendChild(&core.Node{
		Tag:      core.TagHeading,
		Level:    0,
		Children: []*core.Node{{Tag: core.TagText, Text: "shallow"}},
	})

	doc, err := emit.New().Emit(tree, core.NewDocument())
	if err != nil {
		t.Fatal(err)
	}
	if doc.Blocks[0].Style != "Heading6" {
		t.Errorf("level 9 style = %q, want Heading6", doc.Blocks[0].Style)
	}
	if doc.Blocks[1].Style != "Heading1" {
		t.Errorf("level 0 style = %q, want Heading1", doc.Blocks[1].Style)
	}
}

func TestEmitNestedListIndent(t *testing.T) {
	doc := convert(t, "- a\n  - b\n")

	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2: %+v", len(doc.Blocks), doc.Blocks)
	}
	first, second := doc.Blocks[0], doc.Blocks[1]
	if first.Style != core.StyleListBullet || second.Style != core.StyleListBullet {
		t.Errorf("styles = %q, %q, want ListBullet both", first.Style, second.Style)
	}
	if first.Indent != 0 {
		t.Errorf("outer indent = %d, want 0", first.Indent)
	}
	if second.Indent != 1 {
		t.Errorf("nested indent = %d, want 1", second.Indent)
	}
	if first.Text() != "• a" {
		t.Errorf("first item text = %q", first.Text())
	}
	if second.Text() != "• b" {
		t.Errorf("second item text = %q", second.Text())
	}
}

func TestEmitOrderedListNumbering(t *testing.T) {
	doc := convert(t, "1. first\n2. second\n\ntext\n\n1. restart\n")

	var numbered []string
	for _, b := range doc.Blocks {
		if b.Style == core.StyleListNumber {
			numbered = append(numbered, b.Text())
		}
	}
	want := []string{"1. first", "2. second", "1. restart"}
	if !reflect.DeepEqual(numbered, want) {
		t.Errorf("numbered items = %v, want %v", numbered, want)
	}
}

func TestEmitBlockquote(t *testing.T) {
	doc := convert(t, "> quoted text\n")

	if len(doc.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(doc.Blocks))
	}
	b := doc.Blocks[0]
	if b.Style != core.StyleQuote {
		t.Errorf("style = %q, want Quote", b.Style)
	}
	if b.Indent != 1 {
		t.Errorf("indent = %d, want 1", b.Indent)
	}
	if b.Text() != "quoted text" {
		t.Errorf("text = %q", b.Text())
	}
}

func TestEmitNestedBlockquoteDeepens(t *testing.T) {
	doc := convert(t, "> outer\n>\n> > inner\n")

	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2: %+v", len(doc.Blocks), doc.Blocks)
	}
	if doc.Blocks[0].Indent != 1 || doc.Blocks[1].Indent != 2 {
		t.Errorf("indents = %d, %d, want 1, 2", doc.Blocks[0].Indent, doc.Blocks[1].Indent)
	}
}

func TestEmitCodeBlockVerbatim(t *testing.T) {
	doc := convert(t, "```\nline **not bold**\n  indented\n```\n")

	b := doc.Blocks[0]
	if b.Style != core.StyleCodeBlock {
		t.Fatalf("style = %q, want CodeBlock", b.Style)
	}
	if len(b.Runs) != 1 || !b.Runs[0].Code {
		t.Fatalf("runs = %+v, want one code run", b.Runs)
	}
	want := "line **not bold**\n  indented"
	if b.Runs[0].Text != want {
		t.Errorf("code text = %q, want %q", b.Runs[0].Text, want)
	}
}

func TestEmitTable(t *testing.T) {
	doc := convert(t, "| a | b |\n|---|---|\n| 1 | 2 |\n")

	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != core.KindTable {
		t.Fatalf("blocks = %+v, want one table", doc.Blocks)
	}
	tbl := doc.Blocks[0].Table
	if tbl.Cols != 2 {
		t.Errorf("cols = %d, want 2", tbl.Cols)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tbl.Rows))
	}
	for i, cell := range tbl.Rows[0] {
		if !cell.Header {
			t.Errorf("first-row cell %d not marked header", i)
		}
	}
	for i, cell := range tbl.Rows[1] {
		if cell.Header {
			t.Errorf("second-row cell %d wrongly marked header", i)
		}
	}
	if got := tbl.Rows[1][0].Runs[0].Text; got != "1" {
		t.Errorf("cell text = %q, want 1", got)
	}
}

func TestEmitRaggedTableRows(t *testing.T) {
	tree, err := parse.ParseHTML(
		"<table><tr><th>a</th><th>b</th></tr><tr><td>1</td></tr><tr><td>1</td><td>2</td><td>3</td></tr></table>")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := emit.New().Emit(tree, core.NewDocument())
	if err != nil {
		t.Fatal(err)
	}
	tbl := doc.Blocks[0].Table
	if tbl.Cols != 2 {
		t.Fatalf("cols = %d, want 2 (fixed by first row)", tbl.Cols)
	}
	for i, row := range tbl.Rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d cells, want 2", i, len(row))
		}
	}
	if tbl.Rows[1][1].Runs != nil {
		t.Error("short row should be padded with an empty cell")
	}
}

func TestEmitLinkRuns(t *testing.T) {
	doc := convert(t, "see [the **docs**](http://example.com) now")

	runs := doc.Blocks[0].Runs
	if len(runs) != 4 {
		t.Fatalf("got %d runs (%+v), want 4", len(runs), runs)
	}
	if runs[1].Href != "http://example.com" || !runs[1].Underline {
		t.Errorf("link run = %+v, want underlined with href", runs[1])
	}
	// Bold inside a link composes additively.
	if !runs[2].Bold || runs[2].Href != "http://example.com" || !runs[2].Underline {
		t.Errorf("bold link run = %+v, want bold+underline+href", runs[2])
	}
}

func TestEmitInlineCode(t *testing.T) {
	doc := convert(t, "run `go build` now")

	runs := doc.Blocks[0].Runs
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	if !runs[1].Code || runs[1].Text != "go build" {
		t.Errorf("code run = %+v", runs[1])
	}
}

func TestEmitRule(t *testing.T) {
	doc := convert(t, "above\n\n---\n\nbelow\n")

	if len(doc.Blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(doc.Blocks))
	}
	if doc.Blocks[1].Kind != core.KindRule {
		t.Errorf("middle block kind = %v, want rule", doc.Blocks[1].Kind)
	}
}

func TestEmitUnknownTagKeepsSiblings(t *testing.T) {
	tree, err := parse.ParseHTML("<p>before</p><widget>odd <b>content</b></widget><p>after</p>")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := emit.New().Emit(tree, core.NewDocument())
	if err != nil {
		t.Fatalf("unknown tag must not fail emission: %v", err)
	}

	if len(doc.Blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(doc.Blocks))
	}
	if doc.Blocks[1].Text() != "odd content" {
		t.Errorf("fallback block text = %q", doc.Blocks[1].Text())
	}
	if doc.Blocks[1].Style != core.StyleDefault {
		t.Errorf("fallback style = %q, want default", doc.Blocks[1].Style)
	}
	if doc.Blocks[2].Text() != "after" {
		t.Errorf("sibling after unknown tag dropped: %+v", doc.Blocks[2])
	}
}

func TestEmitEmptyInput(t *testing.T) {
	doc := convert(t, "")
	if len(doc.Blocks) != 0 {
		t.Errorf("empty input produced %d blocks, want 0", len(doc.Blocks))
	}
}

func TestEmitIdempotent(t *testing.T) {
	const input = "# T\n\npara **b** *i* `c` [l](http://x)\n\n- a\n  - b\n\n| h |\n|---|\n| v |\n"
	first := convert(t, input)
	second := convert(t, input)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated conversions of the same input differ")
	}
}

func TestEmitLooseListItem(t *testing.T) {
	doc := convert(t, "- first para\n\n  second para\n")

	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2: %+v", len(doc.Blocks), doc.Blocks)
	}
	if doc.Blocks[0].Text() != "• first para" {
		t.Errorf("first block = %q", doc.Blocks[0].Text())
	}
	// Continuation paragraph stays at the item's indent, no marker.
	if doc.Blocks[1].Text() != "second para" {
		t.Errorf("continuation block = %q", doc.Blocks[1].Text())
	}
	if doc.Blocks[1].Indent != doc.Blocks[0].Indent {
		t.Errorf("continuation indent = %d, want %d", doc.Blocks[1].Indent, doc.Blocks[0].Indent)
	}
}
