package resolver_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/engine/resolver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// world is an in-memory package universe: registry, sources and installed set.
type world struct {
	mu        sync.Mutex
	entries   map[domain.PackageName]domain.RegistryEntry
	meta      map[domain.PackageName]*domain.PackageMetadata
	installed map[domain.PackageName]string
	fetches   map[domain.PackageName]int
	extracts  map[domain.PackageName]int
	// generate, when set, produces metadata for packages missing from meta.
	generate func(domain.PackageName) *domain.PackageMetadata
}

func newWorld() *world {
	return &world{
		entries:   make(map[domain.PackageName]domain.RegistryEntry),
		meta:      make(map[domain.PackageName]*domain.PackageMetadata),
		installed: make(map[domain.PackageName]string),
		fetches:   make(map[domain.PackageName]int),
		extracts:  make(map[domain.PackageName]int),
	}
}

// add registers a local package with the given runtime and build requirements.
func (w *world) add(name string, deps, buildDeps []string) {
	n := domain.Canonicalize(name)
	w.entries[n] = domain.RegistryEntry{Name: n, Fetch: domain.FetchSpec{Kind: domain.SourceLocal, Location: "/src/" + name}}
	w.meta[n] = &domain.PackageMetadata{
		Name:      n,
		Version:   "1.0",
		Deps:      reqs(deps),
		BuildDeps: reqs(buildDeps),
	}
}

func (w *world) addSystem(name string) {
	n := domain.Canonicalize(name)
	w.entries[n] = domain.RegistryEntry{Name: n, Fetch: domain.FetchSpec{Kind: domain.SourceSystem}}
}

func reqs(raw []string) []domain.Requirement {
	res := make([]domain.Requirement, 0, len(raw))
	for _, r := range raw {
		res = append(res, domain.MustParseRequirement(r))
	}
	return res
}

func (w *world) Lookup(_ context.Context, name domain.PackageName) (domain.RegistryEntry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if e, ok := w.entries[name]; ok {
		return e, nil
	}
	if w.generate != nil {
		return domain.RegistryEntry{Name: name, Fetch: domain.FetchSpec{Kind: domain.SourceLocal}}, nil
	}
	return domain.RegistryEntry{}, zerr.With(zerr.Wrap(domain.ErrPackageNotInRegistry, "lookup"), "package", name.String())
}

func (w *world) For(kind domain.SourceKind) (ports.Fetcher, bool) {
	switch kind {
	case domain.SourceLocal, domain.SourceGit:
		return w, true
	default:
		return nil, false
	}
}

func (w *world) Fetch(_ context.Context, _ domain.FetchSpec, destDir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.fetches[domain.PackageName(filepath.Base(destDir))]++
	return nil
}

func (w *world) Extract(_ context.Context, dir string) (*domain.PackageMetadata, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := domain.PackageName(filepath.Base(dir))
	w.extracts[n]++
	if md, ok := w.meta[n]; ok {
		return md, nil
	}
	if w.generate != nil {
		return w.generate(n), nil
	}
	return nil, fmt.Errorf("no metadata for %s", n)
}

func (w *world) InstalledVersion(_ context.Context, name domain.PackageName) (string, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	v, ok := w.installed[name]
	return v, ok, nil
}

func (w *world) Sanitize(req domain.Requirement) domain.Requirement {
	return req
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func (w *world) env(t *testing.T) *resolver.Env {
	t.Helper()
	return &resolver.Env{
		Registry:  w,
		Fetchers:  w,
		Extractor: w,
		Installed: w,
		Sanitizer: w,
		Logger:    quietLogger(gomock.NewController(t)),
	}
}

func names(d *resolver.Dirs) []domain.PackageName {
	return d.Keys()
}
