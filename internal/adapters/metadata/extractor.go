// Package metadata reads package metadata from unbuilt source trees.
package metadata

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBuildRequires is assumed when a project declares no build system.
var DefaultBuildRequires = []string{"setuptools>=40.8.0", "wheel"}

// Extractor implements ports.MetadataExtractor over pyproject.toml and setup.cfg.
// pyproject.toml takes precedence field by field; the directory name is the
// last resort for the package name.
type Extractor struct{}

var _ ports.MetadataExtractor = (*Extractor)(nil)

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

type pyproject struct {
	BuildSystem *struct {
		Requires []string `toml:"requires"`
	} `toml:"build-system"`
	Project struct {
		Name         string   `toml:"name"`
		Version      string   `toml:"version"`
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name         string         `toml:"name"`
			Version      string         `toml:"version"`
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// raw holds metadata strings before they are parsed into domain types.
type raw struct {
	name      string
	version   string
	deps      []string
	buildDeps []string
	hasBuild  bool
}

// Extract reads the metadata of the source tree at sourceDir.
func (e *Extractor) Extract(ctx context.Context, sourceDir string) (*domain.PackageMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var r raw
	found := false

	cfg, ok, err := readSetupCfg(filepath.Join(sourceDir, "setup.cfg"))
	if err != nil {
		return nil, extractError(err, sourceDir, "failed to read setup.cfg")
	}
	if ok {
		found = true
		r.name = cfg.get("metadata", "name")
		r.version = cfg.get("metadata", "version")
		r.deps = cfg.list("options", "install_requires")
		r.buildDeps = cfg.list("options", "setup_requires")
	}

	pp, ok, err := readPyproject(filepath.Join(sourceDir, "pyproject.toml"))
	if err != nil {
		return nil, extractError(err, sourceDir, "failed to parse pyproject.toml")
	}
	if ok {
		found = true
		pp.mergeInto(&r)
	}

	if !found {
		if _, err := os.Stat(filepath.Join(sourceDir, "setup.py")); err != nil {
			return nil, extractError(nil, sourceDir, "no pyproject.toml, setup.cfg or setup.py")
		}
	}

	if r.name == "" {
		r.name = filepath.Base(sourceDir)
	}
	if !r.hasBuild {
		r.buildDeps = append(append([]string(nil), DefaultBuildRequires...), r.buildDeps...)
	}

	deps, err := domain.ParseRequirements(r.deps)
	if err != nil {
		return nil, extractError(err, sourceDir, "invalid dependency")
	}
	buildDeps, err := domain.ParseRequirements(r.buildDeps)
	if err != nil {
		return nil, extractError(err, sourceDir, "invalid build dependency")
	}

	return &domain.PackageMetadata{
		Name:      domain.Canonicalize(r.name),
		Version:   r.version,
		Deps:      deps,
		BuildDeps: buildDeps,
	}, nil
}

func readPyproject(path string) (*pyproject, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is inside a fetched source tree
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var pp pyproject
	if err := toml.Unmarshal(data, &pp); err != nil {
		return nil, false, err
	}
	return &pp, true, nil
}

func (pp *pyproject) mergeInto(r *raw) {
	if pp.BuildSystem != nil {
		r.hasBuild = true
		r.buildDeps = append(append([]string(nil), pp.BuildSystem.Requires...), r.buildDeps...)
	}

	poetry := pp.Tool.Poetry
	switch {
	case pp.Project.Name != "":
		r.name = pp.Project.Name
	case poetry.Name != "":
		r.name = poetry.Name
	}
	switch {
	case pp.Project.Version != "":
		r.version = pp.Project.Version
	case poetry.Version != "":
		r.version = poetry.Version
	}

	switch {
	case len(pp.Project.Dependencies) > 0:
		r.deps = pp.Project.Dependencies
	case len(poetry.Dependencies) > 0:
		r.deps = poetryDeps(poetry.Dependencies)
	}
}

// poetryDeps keeps dependency names and markers. Poetry's caret and tilde
// constraints are not PEP 440. Optional dependencies only exist for extras
// and are dropped.
func poetryDeps(table map[string]any) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		if strings.EqualFold(name, "python") {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	deps := make([]string, 0, len(names))
	for _, name := range names {
		marker, keep := poetryMarker(table[name])
		switch {
		case !keep:
		case marker != "":
			deps = append(deps, name+"; "+marker)
		default:
			deps = append(deps, name)
		}
	}
	return deps
}

// poetryMarker reads a dependency value, which is a constraint string, a
// table or a list of tables. A list is unconditional when any of its
// entries is.
func poetryMarker(v any) (marker string, keep bool) {
	switch v := v.(type) {
	case map[string]any:
		if optional, _ := v["optional"].(bool); optional {
			return "", false
		}
		m, _ := v["markers"].(string)
		return strings.TrimSpace(m), true
	case []any:
		var markers []string
		for _, item := range v {
			m, ok := poetryMarker(item)
			if !ok {
				continue
			}
			if m == "" {
				return "", true
			}
			markers = append(markers, "("+m+")")
		}
		if len(markers) == 0 {
			return "", false
		}
		return strings.Join(markers, " or "), true
	default:
		return "", true
	}
}

func extractError(err error, sourceDir, msg string) error {
	wrapped := zerr.With(zerr.Wrap(domain.ErrMetadataExtractionFailed, msg), "source_dir", sourceDir)
	if err != nil {
		wrapped = zerr.With(wrapped, "cause", err.Error())
	}
	return wrapped
}
