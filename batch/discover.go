// Package batch provides input discovery for directory conversions.
// When the CLI is given a directory, every convertible document under
// it is found in deterministic (lexical walk) order and converted,
// keeping discovery logic separate from the conversion pipeline.
package batch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// convertibleExtensions are the input extensions batch mode picks up.
var convertibleExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".html":     true,
	".htm":      true,
}

// IsConvertible reports whether a path looks like a document this
// tool can convert.
func IsConvertible(path string) bool {
	return convertibleExtensions[strings.ToLower(filepath.Ext(path))]
}

// isHidden reports whether a path segment is a dot-directory or
// dot-file (".git", ".cache", ...).
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// Discover walks root and returns every convertible file under it,
// skipping hidden directories. The order is the lexical order of
// filepath.WalkDir, so repeated runs process files identically.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && isHidden(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if isHidden(d.Name()) {
			return nil
		}
		if IsConvertible(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return files, nil
}
