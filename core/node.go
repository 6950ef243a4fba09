package core

// NodeTag enumerates the semantic kinds a parsed node can have.
// The tag fully determines which emitter handler processes the node.
type NodeTag int

const (
	// TagUnknown is the fallback for elements outside the supported set.
	// Unknown nodes are emitted as default paragraphs, never rejected.
	TagUnknown NodeTag = iota
	TagDocument
	TagParagraph
	TagHeading
	TagText
	TagStrong
	TagEmphasis
	TagCode      // inline code span
	TagCodeBlock // fenced or indented block
	TagLink
	TagList
	TagListItem
	TagBlockquote
	TagTable
	TagTableRow
	TagTableCell
	TagRule
	TagLineBreak
)

// String returns the tag name, mainly for diagnostics and tests.
func (t NodeTag) String() string {
	switch t {
	case TagDocument:
		return "document"
	case TagParagraph:
		return "paragraph"
	case TagHeading:
		return "heading"
	case TagText:
		return "text"
	case TagStrong:
		return "strong"
	case TagEmphasis:
		return "emphasis"
	case TagCode:
		return "code"
	case TagCodeBlock:
		return "code-block"
	case TagLink:
		return "link"
	case TagList:
		return "list"
	case TagListItem:
		return "list-item"
	case TagBlockquote:
		return "blockquote"
	case TagTable:
		return "table"
	case TagTableRow:
		return "table-row"
	case TagTableCell:
		return "table-cell"
	case TagRule:
		return "rule"
	case TagLineBreak:
		return "line-break"
	default:
		return "unknown"
	}
}

// Node is one structural unit of the parsed input.
// Text nodes carry Text and no children; container nodes carry children.
type Node struct {
	Tag      NodeTag
	Text     string  // literal content for TagText and TagCodeBlock
	Level    int     // heading level, 1–6
	Ordered  bool    // list kind for TagList
	Header   bool    // true for header cells (th)
	Href     string  // link target for TagLink
	Children []*Node // ordered, source order
}

// AppendChild adds c as the last child of n.
func (n *Node) AppendChild(c *Node) {
	n.Children = append(n.Children, c)
}
