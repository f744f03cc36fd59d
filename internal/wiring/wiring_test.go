package wiring_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	_ "go.trai.ch/forge/internal/wiring"
)

const forgeYAML = `
registry:
  path: registry.yaml
site_dirs:
  - site
ledger: state/installed.json
work_dir: state/work
build:
  backend: setuppy
`

const registryYAML = `
packages:
  demo:
    source:
      type: git
      url: https://example.com/demo.git
      ref: v1.0
`

func TestComponentsWiring(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte(forgeYAML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "registry.yaml"), []byte(registryYAML), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "site"), 0o750))

	for _, env := range []string{
		config.EnvConfig, config.EnvPython, config.EnvRegistry, config.EnvWorkDir,
		config.EnvSiteDirs, config.EnvUnpinMode, config.EnvParallelism,
	} {
		t.Setenv(env, "")
	}
	t.Chdir(dir)

	components, results, err := graft.ExecuteFor[*app.Components](context.Background(), graft.DisableCache())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Telemetry)
	t.Cleanup(func() { _ = components.Telemetry.Close() })

	cfg := components.Config
	assert.Equal(t, filepath.Join(dir, "registry.yaml"), cfg.Registry.Path)
	assert.Equal(t, []string{filepath.Join(dir, "site")}, cfg.SiteDirs)
	assert.Equal(t, domain.BuildBackendSetupPy, cfg.Build.Backend)

	reg, err := graft.Result[ports.Registry](results)
	require.NoError(t, err)
	entry, err := reg.Lookup(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceGit, entry.Fetch.Kind)
	assert.Equal(t, "https://example.com/demo.git", entry.Fetch.Location)

	installed, err := graft.Result[ports.InstalledVersions](results)
	require.NoError(t, err)
	_, ok, err := installed.InstalledVersion(context.Background(), "demo")
	require.NoError(t, err)
	assert.False(t, ok)

	history, err := components.App.History()
	require.NoError(t, err)
	assert.Empty(t, history)
}
