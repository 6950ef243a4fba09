package core

// BlockKind distinguishes the top-level units a Document can hold.
type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindTable
	KindRule
)

// Style names used by the emitter. Renderers map them onto backend
// styles; names the backend does not know fall back to the default
// paragraph style.
const (
	StyleDefault    = ""
	StyleQuote      = "Quote"
	StyleListBullet = "ListBullet"
	StyleListNumber = "ListNumber"
	StyleCodeBlock  = "CodeBlock"
)

// HeadingStyle returns the style name for a heading of the given
// level, clamping out-of-range levels to the nearest valid one.
func HeadingStyle(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return [...]string{"Heading1", "Heading2", "Heading3", "Heading4", "Heading5", "Heading6"}[level-1]
}

// Run is a contiguous span of text sharing one formatting attribute
// set. Attributes compose additively when spans nest.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Code      bool   // monospace span
	Underline bool
	Href      string // non-empty for link runs
}

// Cell is one table cell: a run sequence plus a header marker.
type Cell struct {
	Runs   []Run
	Header bool
}

// Table holds rows of cells. The column count is fixed by the first
// row; ragged later rows are padded or truncated by the emitter.
type Table struct {
	Cols int
	Rows [][]Cell
}

// Block is one emitted unit: a styled paragraph (possibly a list item
// or quote, carrying an indent level), a table, or a horizontal rule.
type Block struct {
	Kind   BlockKind
	Style  string // one of the Style* constants or HeadingStyle(n)
	Indent int    // nesting depth for lists and blockquotes
	Runs   []Run
	Table  *Table
}

// Text concatenates the block's run texts.
func (b *Block) Text() string {
	var s string
	for _, r := range b.Runs {
		s += r.Text
	}
	return s
}

// Document is the in-memory output: an ordered, append-only sequence
// of blocks. It is built by a single emitter pass and never reused
// across conversions. Not safe for concurrent writers.
type Document struct {
	Blocks []Block
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// Append adds a block at the end. Emission order equals source order.
func (d *Document) Append(b Block) {
	d.Blocks = append(d.Blocks, b)
}

// RGB is a 24-bit color used by the style sheet.
type RGB struct {
	R, G, B uint8
}

// TextStyle describes run-level formatting for one style slot.
type TextStyle struct {
	Font   string
	SizePt float64
	Bold   bool
	Color  RGB
}

// StyleSheet is the fixed mapping from semantic styles to output
// formatting. It is passed explicitly into renderers; renderers never
// consult ambient document state. Callers may adjust it between
// conversion and rendering (e.g. recolor headings).
type StyleSheet struct {
	Headings    [6]TextStyle
	Code        TextStyle // inline code and code blocks
	LinkColor   RGB
	QuoteIndent int    // twips of left indent per quote level
	ListIndent  int    // twips of left indent per list nesting level
	RuleGlyph   string // rendered for horizontal rules
}

// DefaultStyles returns the stock style sheet: headings at 26−2N pt
// bold black, code in Courier New 10 pt dark blue, blue underlined
// links, half-inch indents, and a 50-underscore rule glyph.
func DefaultStyles() *StyleSheet {
	ss := &StyleSheet{
		Code:        TextStyle{Font: "Courier New", SizePt: 10, Color: RGB{0, 0, 139}},
		LinkColor:   RGB{0, 0, 255},
		QuoteIndent: 720,
		ListIndent:  720,
		RuleGlyph:   "__________________________________________________",
	}
	for i := range ss.Headings {
		ss.Headings[i] = TextStyle{
			SizePt: float64(26 - 2*(i+1)),
			Bold:   true,
			Color:  RGB{0, 0, 0},
		}
	}
	return ss
}
