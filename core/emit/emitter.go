// Package emit implements the Block Emitter.
// It walks a normalized Node tree depth-first in source order and
// appends styled blocks to a core.Document. Unknown tags fall back to
// a default paragraph; a single unsupported element never aborts the
// rest of the document.
package emit

import (
	"fmt"

	"github.com/danyQe/mark2docx/core"
)

// BlockEmitter translates Node trees into Document blocks.
type BlockEmitter struct{}

// New creates a BlockEmitter.
func New() *BlockEmitter {
	return &BlockEmitter{}
}

// Emit appends one block sequence per top-level node to doc and
// returns doc. The document is mutated monotonically: blocks are
// appended in source order and never revisited.
func (e *BlockEmitter) Emit(tree *core.Node, doc *core.Document) (*core.Document, error) {
	if tree == nil {
		return doc, nil
	}
	w := &walker{doc: doc}
	w.emitMixed(tree.Children, 0, false)
	return doc, nil
}

// walker carries the emission state for one conversion pass.
type walker struct {
	doc *core.Document
}

// isInline reports whether a tag belongs inside a paragraph rather
// than forming its own block.
func isInline(t core.NodeTag) bool {
	switch t {
	case core.TagText, core.TagStrong, core.TagEmphasis, core.TagCode,
		core.TagLink, core.TagLineBreak:
		return true
	}
	return false
}

// emitMixed emits a sequence of sibling nodes, grouping consecutive
// inline nodes into paragraphs and dispatching block nodes. Used for
// the document root, blockquote bodies, list item bodies, and the
// children of unknown elements.
func (w *walker) emitMixed(nodes []*core.Node, indent int, quote bool) {
	var pending []*core.Node
	flush := func() {
		if len(pending) == 0 {
			return
		}
		w.emitParagraph(pending, indent, quote)
		pending = nil
	}
	for _, n := range nodes {
		if isInline(n.Tag) {
			pending = append(pending, n)
			continue
		}
		flush()
		w.emitBlock(n, indent, quote)
	}
	flush()
}

// emitBlock dispatches one block-level node by tag.
func (w *walker) emitBlock(n *core.Node, indent int, quote bool) {
	if isInline(n.Tag) {
		// Stray inline node at block level (malformed container):
		// wrap it in its own paragraph instead of dropping it.
		w.emitParagraph([]*core.Node{n}, indent, quote)
		return
	}
	switch n.Tag {
	case core.TagHeading:
		w.append(core.Block{
			Kind:   core.KindParagraph,
			Style:  core.HeadingStyle(n.Level),
			Indent: indent,
			Runs:   trimEdges(inlineRuns(n.Children, format{})),
		})
	case core.TagParagraph:
		w.emitParagraph(n.Children, indent, quote)
	case core.TagCodeBlock:
		w.append(core.Block{
			Kind:   core.KindParagraph,
			Style:  core.StyleCodeBlock,
			Indent: indent,
			Runs:   []core.Run{{Text: n.Text, Code: true}},
		})
	case core.TagBlockquote:
		w.emitMixed(n.Children, indent+1, true)
	case core.TagList:
		w.emitList(n, indent, quote)
	case core.TagTable:
		w.emitTable(n, indent)
	case core.TagRule:
		w.append(core.Block{Kind: core.KindRule, Indent: indent})
	case core.TagListItem, core.TagTableRow, core.TagTableCell:
		// Stray structural nodes outside their container: emit their
		// content as a plain paragraph rather than dropping it.
		w.emitMixed(n.Children, indent, quote)
	default:
		// Unknown tag: default paragraph action for its inline
		// content, block children emitted in place.
		w.emitMixed(n.Children, indent, quote)
	}
}

// emitParagraph appends one paragraph block from inline content.
// Whitespace-only paragraphs are dropped.
func (w *walker) emitParagraph(nodes []*core.Node, indent int, quote bool) {
	runs := trimEdges(inlineRuns(nodes, format{}))
	if len(runs) == 0 {
		return
	}
	style := core.StyleDefault
	if quote {
		style = core.StyleQuote
	}
	w.append(core.Block{
		Kind:   core.KindParagraph,
		Style:  style,
		Indent: indent,
		Runs:   runs,
	})
}

// emitList emits one paragraph per item. Numbering restarts with each
// list node; nested lists recurse with indent+1.
func (w *walker) emitList(list *core.Node, indent int, quote bool) {
	style := core.StyleListBullet
	if list.Ordered {
		style = core.StyleListNumber
	}
	counter := 0
	for _, item := range list.Children {
		if item.Tag != core.TagListItem {
			// Tolerate malformed lists: emit whatever is there.
			w.emitBlock(item, indent, quote)
			continue
		}
		counter++
		marker := "• "
		if list.Ordered {
			marker = fmt.Sprintf("%d. ", counter)
		}
		w.emitListItem(item, style, marker, indent, quote)
	}
}

// emitListItem joins the item's leading inline content (or first
// paragraph) onto the marker line, then emits remaining content as
// continuation blocks. Nested lists deepen the indent by one.
func (w *walker) emitListItem(item *core.Node, style, marker string, indent int, quote bool) {
	markerUsed := false
	var pending []*core.Node

	flush := func() {
		runs := trimEdges(inlineRuns(pending, format{}))
		pending = nil
		if len(runs) == 0 && markerUsed {
			return
		}
		block := core.Block{Kind: core.KindParagraph, Style: style, Indent: indent}
		if !markerUsed {
			block.Runs = append([]core.Run{{Text: marker}}, runs...)
			markerUsed = true
		} else {
			block.Runs = runs
		}
		w.append(block)
	}

	for _, c := range item.Children {
		switch {
		case isInline(c.Tag):
			pending = append(pending, c)
		case c.Tag == core.TagParagraph:
			pending = append(pending, c.Children...)
			flush()
		case c.Tag == core.TagList:
			flush()
			w.emitList(c, indent+1, quote)
		default:
			flush()
			w.emitBlock(c, indent+1, quote)
		}
	}
	flush()
}

// emitTable builds a table block. The column count is fixed by the
// first row; ragged later rows are padded with empty cells or
// truncated. The first row is always treated as a header. Empty
// tables emit nothing.
func (w *walker) emitTable(n *core.Node, indent int) {
	var rowNodes []*core.Node
	for _, c := range n.Children {
		if c.Tag == core.TagTableRow {
			rowNodes = append(rowNodes, c)
		}
	}
	if len(rowNodes) == 0 {
		return
	}

	cols := 0
	for _, c := range rowNodes[0].Children {
		if c.Tag == core.TagTableCell {
			cols++
		}
	}
	if cols == 0 {
		return
	}

	table := &core.Table{Cols: cols}
	for i, rn := range rowNodes {
		row := make([]core.Cell, 0, cols)
		for _, cn := range rn.Children {
			if cn.Tag != core.TagTableCell || len(row) == cols {
				continue
			}
			row = append(row, core.Cell{
				Runs:   trimEdges(inlineRuns(cn.Children, format{})),
				Header: cn.Header || i == 0,
			})
		}
		for len(row) < cols {
			row = append(row, core.Cell{Header: i == 0})
		}
		table.Rows = append(table.Rows, row)
	}

	w.append(core.Block{Kind: core.KindTable, Indent: indent, Table: table})
}

func (w *walker) append(b core.Block) {
	w.doc.Append(b)
}
