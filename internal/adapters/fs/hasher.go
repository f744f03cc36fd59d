package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes content hashes of source trees.
type Hasher struct {
	walker  *Walker
	ignores []string
}

// NewHasher creates a new Hasher that skips DefaultIgnores.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker, ignores: DefaultIgnores}
}

// HashTree hashes the relative path and content of every file below root.
// The result does not depend on where root lives on disk.
func (h *Hasher) HashTree(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat source tree"), "path", root)
	}
	if !info.IsDir() {
		return "", zerr.With(zerr.New("source tree is not a directory"), "path", root)
	}

	digest := xxhash.New()
	for path := range h.walker.WalkFiles(root, h.ignores) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}
		if err := h.hashFile(path, filepath.ToSlash(rel), digest); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

func (h *Hasher) hashFile(path, rel string, digest io.Writer) error {
	_, _ = io.WriteString(digest, rel)
	_, _ = digest.Write([]byte{0})

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(digest, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
