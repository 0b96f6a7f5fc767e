// Package archive keeps a copy of every rendered CS Form No. 6 on disk for
// the records office.
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Dir struct {
	root string
}

func New(root string) *Dir {
	return &Dir{root: root}
}

// Store writes blob under the archive root and returns the full path. The
// filename is flattened to its base name so a crafted record cannot escape
// the archive directory.
func (d *Dir) Store(ctx context.Context, filename string, blob []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid archive filename %q", filename)
	}
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}
	path := filepath.Join(d.root, name)
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
