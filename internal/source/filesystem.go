package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Filesystem reads keys as paths, relative to Root when Root is set.
type Filesystem struct {
	Root string
}

func NewFilesystem(root string) *Filesystem {
	return &Filesystem{Root: root}
}

func (f *Filesystem) Driver() Driver { return DriverFilesystem }

func (f *Filesystem) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := key
	if f.Root != "" && !filepath.IsAbs(key) {
		path = filepath.Join(f.Root, key)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}
