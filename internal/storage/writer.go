// Package storage persists ranked repository lists as JSON files.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/YANHAN-BLCU/reporank/internal/domain"
)

// Writer serializes repository lists to a fixed file path, creating parent
// directories as needed.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the target file path.
func (w *Writer) Path() string {
	return w.path
}

// Save writes the repositories as a pretty-printed JSON array with 2-space
// indentation. Non-ASCII characters and HTML-sensitive runes are written
// unescaped. An empty or nil slice produces the literal "[]". The file is
// only touched once encoding has succeeded, so a failure never leaves a
// partial file behind.
func (w *Writer) Save(repos []domain.Repository) error {
	if repos == nil {
		repos = []domain.Repository{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(repos); err != nil {
		return fmt.Errorf("failed to encode repositories: %w", err)
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(w.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, err)
	}

	return nil
}
