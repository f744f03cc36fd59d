package registry_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/registry"
	"go.trai.ch/forge/internal/core/domain"
)

const sample = `
packages:
  Foo_Bar:
    source:
      type: git
      url: https://example.com/foo-bar.git
      depth: 1
      ref: v1.2.0
  mono-part:
    source:
      type: archive
      url: https://example.com/mono.tar.gz
      subdir: packages/part
  numpy:
    source:
      type: system
  plain:
    source:
      url: https://example.com/plain.git
`

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Lookup(t *testing.T) {
	reg, err := registry.Load(writeRegistry(t, sample))
	require.NoError(t, err)
	ctx := context.Background()

	entry, err := reg.Lookup(ctx, "foo-bar")
	require.NoError(t, err)
	assert.Equal(t, domain.RegistryEntry{
		Name: "foo-bar",
		Fetch: domain.FetchSpec{
			Kind:     domain.SourceGit,
			Location: "https://example.com/foo-bar.git",
			Depth:    1,
			RefSpec:  "v1.2.0",
		},
	}, entry)

	entry, err = reg.Lookup(ctx, "mono-part")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceArchive, entry.Fetch.Kind)
	assert.Equal(t, "packages/part", entry.Fetch.SubDir)

	entry, err = reg.Lookup(ctx, "numpy")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceSystem, entry.Fetch.Kind)

	entry, err = reg.Lookup(ctx, "plain")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceGit, entry.Fetch.Kind, "git is the default source type")
}

func TestLookup_NotFound(t *testing.T) {
	reg, err := registry.Load(writeRegistry(t, sample))
	require.NoError(t, err)

	_, err = reg.Lookup(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrPackageNotInRegistry)
}

func TestLookup_Fallback(t *testing.T) {
	reg, err := registry.Load(writeRegistry(t, `
fallback:
  source:
    type: git
    url: https://git.example.com/{name}.git
    depth: 1
`))
	require.NoError(t, err)

	entry, err := reg.Lookup(context.Background(), "some-lib")
	require.NoError(t, err)
	assert.Equal(t, "https://git.example.com/some-lib.git", entry.Fetch.Location)
	assert.Equal(t, 1, entry.Fetch.Depth)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	reg, err := registry.Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)

	_, err = reg.Lookup(context.Background(), "anything")
	require.ErrorIs(t, err, domain.ErrPackageNotInRegistry)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed", content: "packages: [\n"},
		{name: "missing url", content: "packages:\n  a:\n    source:\n      type: git\n"},
		{name: "negative depth", content: "packages:\n  a:\n    source:\n      url: x\n      depth: -1\n"},
		{name: "duplicate canonical name", content: "packages:\n  a_b:\n    source: {url: x}\n  A-B:\n    source: {url: y}\n"},
		{name: "system fallback", content: "fallback:\n  source:\n    type: system\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.Load(writeRegistry(t, tt.content))
			require.Error(t, err)
		})
	}
}
