// Package parse implements the Parser interface.
// It renders Markdown to HTML with goldmark (GFM: tables, fenced code,
// strikethrough, autolinks), then parses that HTML into a normalized
// core.Node tree. Malformed HTML recovery is delegated to the HTML
// parser's best-effort nesting; it is not reimplemented here.
package parse

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"

	"github.com/danyQe/mark2docx/core"
)

// maxNestingDepth bounds element nesting so pathological inputs fail
// with a clear error instead of exhausting the stack.
const maxNestingDepth = 64

// MarkdownParser converts Markdown text into a core.Node tree.
type MarkdownParser struct {
	md goldmark.Markdown
}

// New creates a MarkdownParser with GFM extensions enabled.
func New() *MarkdownParser {
	return &MarkdownParser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Parse renders markdown to HTML and normalizes it into a Node tree.
// The root node has one child per top-level block, in source order.
// Empty input yields a root with no children.
func (p *MarkdownParser) Parse(markdown string) (*core.Node, error) {
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return ParseHTML(buf.String())
}

// ParseHTML parses an HTML fragment or document into a Node tree.
func ParseHTML(htmlText string) (*core.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	root := &core.Node{Tag: core.TagDocument}
	body := doc.Find("body")
	if body.Length() == 0 {
		return root, nil
	}

	for n := body.Nodes[0].FirstChild; n != nil; n = n.NextSibling {
		child, err := convert(n, "body", 0)
		if err != nil {
			return nil, err
		}
		if child != nil {
			root.AppendChild(child)
		}
	}
	return root, nil
}

// whitespaceRun collapses interior whitespace; HTML source line breaks
// inside a paragraph are not significant.
var whitespaceRun = regexp.MustCompile(`\s+`)

// blockContainers are contexts where whitespace-only text nodes are
// formatting artifacts, not content. Inside inline contexts they
// separate spans and must be kept.
var blockContainers = map[string]bool{
	"body": true, "div": true, "ul": true, "ol": true,
	"table": true, "thead": true, "tbody": true, "tfoot": true,
	"tr": true, "blockquote": true,
}

// convert maps one html.Node to a core.Node, recursing into children.
// Returns nil for nodes that carry nothing (comments, blank text
// between block tags).
func convert(n *html.Node, parent string, depth int) (*core.Node, error) {
	if depth > maxNestingDepth {
		return nil, fmt.Errorf("input nesting exceeds %d levels", maxNestingDepth)
	}

	switch n.Type {
	case html.TextNode:
		text := whitespaceRun.ReplaceAllString(n.Data, " ")
		if strings.TrimSpace(text) == "" && blockContainers[parent] {
			return nil, nil
		}
		if text == "" {
			return nil, nil
		}
		return &core.Node{Tag: core.TagText, Text: text}, nil
	case html.ElementNode:
		// handled below
	default:
		return nil, nil
	}

	node := &core.Node{}
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		node.Tag = core.TagHeading
		node.Level = int(n.Data[1] - '0')
	case "p":
		node.Tag = core.TagParagraph
	case "ul":
		node.Tag = core.TagList
	case "ol":
		node.Tag = core.TagList
		node.Ordered = true
	case "li":
		node.Tag = core.TagListItem
	case "pre":
		// Code block: literal text, no inline re-parsing inside.
		return &core.Node{
			Tag:  core.TagCodeBlock,
			Text: strings.TrimSuffix(rawText(n), "\n"),
		}, nil
	case "code":
		node.Tag = core.TagCode
	case "blockquote":
		node.Tag = core.TagBlockquote
	case "table":
		return convertTable(n, depth)
	case "tr":
		node.Tag = core.TagTableRow
	case "th":
		node.Tag = core.TagTableCell
		node.Header = true
	case "td":
		node.Tag = core.TagTableCell
	case "a":
		node.Tag = core.TagLink
		node.Href = attr(n, "href")
	case "strong", "b":
		node.Tag = core.TagStrong
	case "em", "i":
		node.Tag = core.TagEmphasis
	case "hr":
		return &core.Node{Tag: core.TagRule}, nil
	case "br":
		return &core.Node{Tag: core.TagLineBreak}, nil
	default:
		node.Tag = core.TagUnknown
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		child, err := convert(c, n.Data, depth+1)
		if err != nil {
			return nil, err
		}
		if child != nil {
			node.AppendChild(child)
		}
	}
	return node, nil
}

// convertTable flattens thead/tbody wrappers so a table node contains
// only row children, and rows contain only cell children.
func convertTable(n *html.Node, depth int) (*core.Node, error) {
	table := &core.Node{Tag: core.TagTable}
	var walk func(*html.Node, int) error
	walk = func(m *html.Node, d int) error {
		if d > maxNestingDepth {
			return fmt.Errorf("input nesting exceeds %d levels", maxNestingDepth)
		}
		for c := m.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead", "tbody", "tfoot":
				if err := walk(c, d+1); err != nil {
					return err
				}
			case "tr":
				row, err := convert(c, m.Data, d+1)
				if err != nil {
					return err
				}
				if row != nil {
					table.AppendChild(row)
				}
			}
		}
		return nil
	}
	if err := walk(n, depth); err != nil {
		return nil, err
	}
	return table, nil
}

// rawText concatenates all descendant text verbatim, preserving
// internal whitespace and line breaks.
func rawText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(m *html.Node) {
		if m.Type == html.TextNode {
			b.WriteString(m.Data)
			return
		}
		for c := m.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
