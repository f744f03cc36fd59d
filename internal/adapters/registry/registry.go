// Package registry maps package names to fetch specifications.
package registry

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// namePlaceholder is replaced by the package name in fallback templates.
const namePlaceholder = "{name}"

// Document represents the structure of a registry.yaml file.
type Document struct {
	Packages map[string]EntryDTO `yaml:"packages"`
	// Fallback, when set, serves names that have no explicit entry.
	Fallback *EntryDTO `yaml:"fallback"`
}

// EntryDTO represents a single package entry.
type EntryDTO struct {
	Source SourceDTO `yaml:"source"`
}

// SourceDTO describes where a package's source lives.
type SourceDTO struct {
	Type   string `yaml:"type"`
	URL    string `yaml:"url"`
	Depth  int    `yaml:"depth"`
	Ref    string `yaml:"ref"`
	SubDir string `yaml:"subdir"`
}

// File implements ports.Registry over a parsed registry document.
type File struct {
	entries  map[domain.PackageName]domain.FetchSpec
	fallback *domain.FetchSpec
}

var _ ports.Registry = (*File)(nil)

// Load reads a registry file. A missing file is an empty registry.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{entries: map[domain.PackageName]domain.FetchSpec{}}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read registry"), "path", path)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse registry"), "path", path)
	}
	f, err := New(doc)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return f, nil
}

// New validates doc and indexes it by canonical name.
func New(doc Document) (*File, error) {
	f := &File{entries: make(map[domain.PackageName]domain.FetchSpec, len(doc.Packages))}
	for raw, dto := range doc.Packages {
		name := domain.Canonicalize(raw)
		if _, dup := f.entries[name]; dup {
			return nil, zerr.With(zerr.New("duplicate registry entry"), "package", name)
		}
		spec, err := dto.Source.toDomain()
		if err != nil {
			return nil, zerr.With(err, "package", raw)
		}
		f.entries[name] = spec
	}
	if doc.Fallback != nil {
		spec, err := doc.Fallback.Source.toDomain()
		if err != nil {
			return nil, zerr.With(err, "package", "fallback")
		}
		if spec.Kind == domain.SourceSystem {
			return nil, zerr.New("fallback source cannot be a system package")
		}
		f.fallback = &spec
	}
	return f, nil
}

// Lookup returns the entry for name, or the expanded fallback template.
func (f *File) Lookup(_ context.Context, name domain.PackageName) (domain.RegistryEntry, error) {
	if spec, ok := f.entries[name]; ok {
		return domain.RegistryEntry{Name: name, Fetch: spec}, nil
	}
	if f.fallback != nil {
		spec := *f.fallback
		spec.Location = strings.ReplaceAll(spec.Location, namePlaceholder, string(name))
		spec.RefSpec = strings.ReplaceAll(spec.RefSpec, namePlaceholder, string(name))
		spec.SubDir = strings.ReplaceAll(spec.SubDir, namePlaceholder, string(name))
		return domain.RegistryEntry{Name: name, Fetch: spec}, nil
	}
	return domain.RegistryEntry{}, zerr.With(zerr.Wrap(domain.ErrPackageNotInRegistry, "lookup failed"), "package", name)
}

func (s SourceDTO) toDomain() (domain.FetchSpec, error) {
	spec := domain.FetchSpec{
		Kind:     domain.SourceKind(strings.ToLower(strings.TrimSpace(s.Type))),
		Location: s.URL,
		Depth:    s.Depth,
		RefSpec:  s.Ref,
		SubDir:   s.SubDir,
	}
	if spec.Kind == "" {
		spec.Kind = domain.SourceGit
	}
	if s.Depth < 0 {
		return domain.FetchSpec{}, zerr.With(zerr.New("negative clone depth"), "depth", s.Depth)
	}
	if spec.Kind != domain.SourceSystem && spec.Location == "" {
		return domain.FetchSpec{}, zerr.With(zerr.New("source url is required"), "type", spec.Kind)
	}
	return spec, nil
}
