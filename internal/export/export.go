// Package export writes user-requested files.
package export

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Writer saves files into one directory of a filesystem.
type Writer struct {
	fs  afero.Fs
	dir string
}

// NewWriter returns a Writer rooted at dir on fs.
func NewWriter(fs afero.Fs, dir string) *Writer {
	return &Writer{fs: fs, dir: dir}
}

// Dir returns the target directory.
func (w *Writer) Dir() string { return w.dir }

// Write stores content as name, replacing any existing file, and returns the
// path written.
func (w *Writer) Write(name string, content []byte) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("export: invalid file name %q", name)
	}
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create %s: %w", w.dir, err)
	}
	path := filepath.Join(w.dir, name)
	if err := afero.WriteFile(w.fs, path, content, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}
