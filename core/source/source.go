// Package source implements the Source interface.
// It loads conversion input from local files and classifies it as
// Markdown or HTML by extension, so the pipeline knows whether a
// normalization step is needed.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danyQe/mark2docx/core"
)

// htmlExtensions are the input extensions routed through the HTML
// normalizer before parsing.
var htmlExtensions = map[string]bool{
	".html": true,
	".htm":  true,
}

// FileSource loads input documents from the local filesystem.
type FileSource struct{}

// New creates a FileSource.
func New() *FileSource {
	return &FileSource{}
}

// Load reads the file at path as UTF-8 text. Missing or unreadable
// files are input errors; empty files are valid input.
func (s *FileSource) Load(path string) (*core.SourceResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading input %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("input %s is a directory, not a file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input %s: %w", path, err)
	}

	return &core.SourceResult{
		Path: path,
		Kind: Classify(path),
		Text: string(data),
	}, nil
}

// Classify returns the source kind for a path. Anything that is not
// HTML is treated as Markdown.
func Classify(path string) core.SourceKind {
	if htmlExtensions[strings.ToLower(filepath.Ext(path))] {
		return core.SourceHTML
	}
	return core.SourceMarkdown
}
