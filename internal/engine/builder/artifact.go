package builder

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

const wheelExt = ".whl"

// FindArtifact returns the single wheel in dir built for name.
// A wheel belongs to name when its distribution segment canonicalizes to name
// or to one of aliases.
func FindArtifact(dir string, name domain.PackageName, aliases ...domain.PackageName) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to list build output"), "dir", dir)
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), wheelExt) {
			continue
		}
		dist, _ := splitWheelName(e.Name())
		if c := domain.Canonicalize(dist); c == name || slices.Contains(aliases, c) {
			matches = append(matches, filepath.Join(dir, e.Name()))
		}
	}

	switch len(matches) {
	case 0:
		err := zerr.With(zerr.Wrap(domain.ErrNoBuildArtifact, "build produced no wheel"), "package", name.String())
		return "", zerr.With(err, "dir", dir)
	case 1:
		return matches[0], nil
	default:
		err := zerr.With(zerr.Wrap(domain.ErrAmbiguousBuildArtifact, "cannot choose a wheel"), "package", name.String())
		return "", zerr.With(err, "artifacts", matches)
	}
}

// splitWheelName returns the distribution and version segments of a wheel file name.
func splitWheelName(file string) (dist, version string) {
	parts := strings.SplitN(strings.TrimSuffix(file, wheelExt), "-", 3)
	dist = parts[0]
	if len(parts) > 1 {
		version = parts[1]
	}
	return dist, version
}
