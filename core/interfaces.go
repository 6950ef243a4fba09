// Package core defines the data model and pipeline interfaces for
// mark2docx. Each stage of the pipeline is a small, testable interface.
package core

// SourceKind classifies loaded input.
type SourceKind int

const (
	SourceMarkdown SourceKind = iota
	SourceHTML
)

// SourceResult holds the loaded input text and its classification.
type SourceResult struct {
	Path string
	Kind SourceKind
	Text string
}

// DocMetadata carries document-level metadata into renderers.
type DocMetadata struct {
	Title      string // first level-1 heading, if any
	SourcePath string
}

// Source loads input text from a path.
type Source interface {
	Load(path string) (*SourceResult, error)
}

// Normalizer converts HTML input into Markdown, the canonical
// pipeline format.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Parser turns Markdown text into a normalized Node tree whose root
// has one child per top-level block, in source order.
type Parser interface {
	Parse(markdown string) (*Node, error)
}

// Emitter walks a Node tree and appends styled blocks to doc,
// returning doc for chaining.
type Emitter interface {
	Emit(tree *Node, doc *Document) (*Document, error)
}

// Renderer converts an emitted Document into a final output format.
type Renderer interface {
	Render(doc *Document, styles *StyleSheet, meta DocMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".docx").
	Extension() string
}
