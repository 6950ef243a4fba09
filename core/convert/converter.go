// Package convert exposes the library surface of mark2docx: a
// Converter that runs the source → normalize → parse → emit pipeline
// and holds the in-progress Document so callers can adjust styles or
// blocks before rendering.
package convert

import (
	"fmt"
	"strings"

	"github.com/danyQe/mark2docx/core"
	"github.com/danyQe/mark2docx/core/emit"
	"github.com/danyQe/mark2docx/core/normalize"
	"github.com/danyQe/mark2docx/core/output"
	"github.com/danyQe/mark2docx/core/parse"
	"github.com/danyQe/mark2docx/core/render"
	"github.com/danyQe/mark2docx/core/source"
)

// Converter converts Markdown or HTML input into Word documents.
// Not safe for concurrent use; run parallel conversions with separate
// Converter instances.
type Converter struct {
	source     core.Source
	normalizer core.Normalizer
	parser     core.Parser
	emitter    core.Emitter
	renderer   core.Renderer
	writer     *output.Writer

	styles *core.StyleSheet
	doc    *core.Document
	meta   core.DocMetadata
}

// Option customizes a Converter.
type Option func(*Converter)

// WithStyles replaces the default style sheet.
func WithStyles(ss *core.StyleSheet) Option {
	return func(c *Converter) {
		c.styles = ss
	}
}

// WithRenderer replaces the default DOCX renderer.
func WithRenderer(r core.Renderer) Option {
	return func(c *Converter) {
		c.renderer = r
	}
}

// New creates a Converter with the default pipeline.
func New(opts ...Option) *Converter {
	c := &Converter{
		source:     source.New(),
		normalizer: normalize.New(),
		parser:     parse.New(),
		emitter:    emit.New(),
		renderer:   render.NewDocxRenderer(),
		writer:     output.New(),
		styles:     core.DefaultStyles(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConvertString parses and emits markdown text, replacing the
// in-progress document. The returned Document is a pure function of
// the input and the style sheet.
func (c *Converter) ConvertString(markdown string) (*core.Document, error) {
	tree, err := c.parser.Parse(markdown)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	doc, err := c.emitter.Emit(tree, core.NewDocument())
	if err != nil {
		return nil, fmt.Errorf("emit: %w", err)
	}
	c.doc = doc
	c.meta = core.DocMetadata{Title: firstHeadingText(doc)}
	return doc, nil
}

// ConvertFile runs the full pipeline: load the input (normalizing
// HTML sources to Markdown), convert, render, and write. An empty
// outputPath defaults to the input path with the renderer's extension.
func (c *Converter) ConvertFile(inputPath, outputPath string) error {
	src, err := c.source.Load(inputPath)
	if err != nil {
		return err
	}

	text := src.Text
	if src.Kind == core.SourceHTML {
		text, err = c.normalizer.Normalize(text)
		if err != nil {
			return fmt.Errorf("normalize: %w", err)
		}
	}

	if _, err := c.ConvertString(text); err != nil {
		return err
	}
	c.meta.SourcePath = inputPath

	if outputPath == "" {
		outputPath = output.DefaultPath(inputPath, c.renderer.Extension())
	}
	return c.Write(outputPath)
}

// Write renders the in-progress document and persists it.
func (c *Converter) Write(path string) error {
	if c.doc == nil {
		c.doc = core.NewDocument()
	}
	data, err := c.renderer.Render(c.doc, c.styles, c.meta)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := c.writer.Write(path, data); err != nil {
		return err
	}
	return nil
}

// Document returns the in-progress document for inspection or
// adjustment before Write. Nil until a Convert call has run.
func (c *Converter) Document() *core.Document {
	return c.doc
}

// Styles returns the style sheet used at render time. Callers may
// mutate it between conversion and Write (e.g. recolor headings).
func (c *Converter) Styles() *core.StyleSheet {
	return c.styles
}

// Extension returns the active renderer's file extension.
func (c *Converter) Extension() string {
	return c.renderer.Extension()
}

// firstHeadingText returns the text of the first level-1 heading.
func firstHeadingText(doc *core.Document) string {
	for _, b := range doc.Blocks {
		if b.Style == core.HeadingStyle(1) {
			return strings.TrimSpace(b.Text())
		}
	}
	return ""
}
