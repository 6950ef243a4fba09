// Package output handles output path resolution and file writing.
// Single conversions default to the input path with the renderer's
// extension; batch conversions mirror the input directory structure
// under the output directory.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct{}

// New creates a Writer.
func New() *Writer {
	return &Writer{}
}

// Write writes data to path, creating parent directories as needed.
// It returns the path written.
func (w *Writer) Write(path string, data []byte) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// DefaultPath derives the output path from an input path by swapping
// its extension. Example: notes/readme.md → notes/readme.docx
func DefaultPath(inputPath, ext string) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + ext
}

// MirrorPath maps an input file under inputRoot to the corresponding
// output path under outputDir, swapping the extension.
// Example: (docs, docs/guide/intro.md, out, .docx) → out/guide/intro.docx
func MirrorPath(inputRoot, inputPath, outputDir, ext string) (string, error) {
	rel, err := filepath.Rel(inputRoot, inputPath)
	if err != nil {
		return "", fmt.Errorf("resolving %s against %s: %w", inputPath, inputRoot, err)
	}
	return filepath.Join(outputDir, DefaultPath(rel, ext)), nil
}
