package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirPublisher writes objects to a local directory.
type DirPublisher struct {
	dir string
}

var _ Publisher = &DirPublisher{}

// NewDirPublisher creates DirPublisher. Directory is created on first publish.
func NewDirPublisher(dir string) *DirPublisher {
	return &DirPublisher{dir: dir}
}

// Publish writes object to file named after it. Existing file is replaced.
func (p *DirPublisher) Publish(_ context.Context, obj Object) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	path := filepath.Join(p.dir, filepath.Base(obj.Name))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, obj.Body, 0o644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renaming file: %w", err)
	}

	return nil
}
