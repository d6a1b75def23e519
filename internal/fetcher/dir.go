package fetcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Dir reads documents from a local directory, typically the producer's
// output folder.
type Dir struct {
	root string
}

// NewDir creates a fetcher rooted at dir.
func NewDir(dir string) *Dir {
	return &Dir{root: dir}
}

// Fetch reads one document by name. Names never escape the root.
func (d *Dir) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(d.root, filepath.Base(name)))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return data, nil
}
