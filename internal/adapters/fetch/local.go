package fetch

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// Local copies a directory tree that already exists on disk.
type Local struct{}

var _ ports.Fetcher = (*Local)(nil)

// NewLocal creates a Local fetcher.
func NewLocal() *Local {
	return &Local{}
}

// Fetch copies spec.Location, optionally written as a file:// URL, into destDir.
func (l *Local) Fetch(ctx context.Context, spec domain.FetchSpec, destDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	src := strings.TrimPrefix(spec.Location, "file://")
	info, err := os.Stat(src)
	if err != nil {
		return fetchError(err, spec, "source directory not found")
	}
	if !info.IsDir() {
		return fetchError(nil, spec, "source is not a directory")
	}
	if err := os.MkdirAll(filepath.Dir(destDir), 0o750); err != nil {
		return fetchError(err, spec, "failed to create destination")
	}
	if err := os.CopyFS(destDir, os.DirFS(src)); err != nil {
		return fetchError(err, spec, "failed to copy source tree")
	}
	return nil
}
