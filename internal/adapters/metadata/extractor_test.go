package metadata_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/metadata"
	"go.trai.ch/forge/internal/core/domain"
)

func tree(t *testing.T, name string, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	for file, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0o600))
	}
	return dir
}

func names(reqs []domain.Requirement) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.String()
	}
	return out
}

func TestExtract_Pyproject(t *testing.T) {
	dir := tree(t, "checkout", map[string]string{"pyproject.toml": `
[build-system]
requires = ["flit_core >=3.2,<4"]
build-backend = "flit_core.buildapi"

[project]
name = "Demo_Pkg"
version = "1.2.3"
dependencies = [
  "requests>=2.0",
  "tomli; python_version < '3.11'",
]
`})

	md, err := metadata.NewExtractor().Extract(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, domain.PackageName("demo-pkg"), md.Name)
	assert.Equal(t, "1.2.3", md.Version)
	assert.Equal(t, []string{"requests>=2.0", "tomli; python_version < '3.11'"}, names(md.Deps))
	assert.Equal(t, []string{"flit-core>=3.2,<4"}, names(md.BuildDeps))
}

func TestExtract_PyprojectWithoutBuildSystem(t *testing.T) {
	dir := tree(t, "x", map[string]string{"pyproject.toml": "[project]\nname = \"x\"\n"})

	md, err := metadata.NewExtractor().Extract(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"setuptools>=40.8.0", "wheel"}, names(md.BuildDeps))
	assert.Empty(t, md.Deps)
}

func TestExtract_Poetry(t *testing.T) {
	dir := tree(t, "x", map[string]string{"pyproject.toml": `
[build-system]
requires = ["poetry-core"]

[tool.poetry]
name = "poet"
version = "0.1.0"

[tool.poetry.dependencies]
python = "^3.9"
click = "^8.0"
attrs = { version = ">=22" }
`})

	md, err := metadata.NewExtractor().Extract(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, domain.PackageName("poet"), md.Name)
	assert.Equal(t, "0.1.0", md.Version)
	assert.Equal(t, []string{"attrs", "click"}, names(md.Deps))
	assert.Equal(t, []string{"poetry-core"}, names(md.BuildDeps))
}

func TestExtract_PoetryOptionalAndMarkers(t *testing.T) {
	dir := tree(t, "x", map[string]string{"pyproject.toml": `
[tool.poetry]
name = "poet"

[tool.poetry.dependencies]
python = "^3.9"
click = "^8.0"
pywin32 = { version = "*", markers = "sys_platform == 'win32'" }
sphinx = { version = "^7", optional = true }
numpy = [
  { version = "<2", markers = "python_version < '3.9'" },
  { version = ">=2", markers = "python_version >= '3.9'" },
]
tomli = [
  { version = "^2", python = "<3.11" },
  { version = "^2", optional = true },
]

[tool.poetry.extras]
docs = ["sphinx"]
`})

	md, err := metadata.NewExtractor().Extract(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"click",
		"numpy; (python_version < '3.9') or (python_version >= '3.9')",
		"pywin32; sys_platform == 'win32'",
		"tomli",
	}, names(md.Deps))
	for _, r := range md.Deps {
		assert.NotEqual(t, domain.PackageName("sphinx"), r.Name)
	}
}

func TestExtract_SetupCfg(t *testing.T) {
	dir := tree(t, "legacy", map[string]string{
		"setup.py": "from setuptools import setup\nsetup()\n",
		"setup.cfg": `
[metadata]
name = legacy.pkg
version = 4.0

[options]
install_requires =
    six
    # comment
    enum34; python_version < "3.4"
setup_requires =
    setuptools_scm>=3
`,
	})

	md, err := metadata.NewExtractor().Extract(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, domain.PackageName("legacy-pkg"), md.Name)
	assert.Equal(t, "4.0", md.Version)
	assert.Equal(t, []string{"six", `enum34; python_version < "3.4"`}, names(md.Deps))
	assert.Equal(t, []string{"setuptools>=40.8.0", "wheel", "setuptools-scm>=3"}, names(md.BuildDeps))
}

func TestExtract_SetupCfgSyntax(t *testing.T) {
	dir := tree(t, "mixed", map[string]string{"setup.cfg": `
[Metadata]
Name: Mixed_Case
version = 2.0 ; not a comment

[options]
install_requires = tomli; python_version < "3.11"
a stray line without delimiter
`})

	md, err := metadata.NewExtractor().Extract(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, domain.PackageName("mixed-case"), md.Name)
	assert.Equal(t, "2.0 ; not a comment", md.Version)
	assert.Equal(t, []string{`tomli; python_version < "3.11"`}, names(md.Deps))
}

func TestExtract_PyprojectOverridesSetupCfg(t *testing.T) {
	dir := tree(t, "both", map[string]string{
		"setup.cfg":      "[metadata]\nname = old\nversion = 1\n[options]\ninstall_requires = six\n",
		"pyproject.toml": "[build-system]\nrequires = [\"setuptools\"]\n[project]\nname = \"new\"\n",
	})

	md, err := metadata.NewExtractor().Extract(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, domain.PackageName("new"), md.Name)
	assert.Equal(t, "1", md.Version, "fields missing from pyproject.toml come from setup.cfg")
	assert.Equal(t, []string{"six"}, names(md.Deps))
	assert.Equal(t, []string{"setuptools"}, names(md.BuildDeps))
}

func TestExtract_SetupPyOnlyUsesDirName(t *testing.T) {
	dir := tree(t, "Old_Style", map[string]string{"setup.py": "setup()"})

	md, err := metadata.NewExtractor().Extract(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, domain.PackageName("old-style"), md.Name)
	assert.Equal(t, []string{"setuptools>=40.8.0", "wheel"}, names(md.BuildDeps))
}

func TestExtract_Errors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{name: "empty tree", files: map[string]string{}},
		{name: "malformed toml", files: map[string]string{"pyproject.toml": "[project\n"}},
		{name: "invalid requirement", files: map[string]string{"pyproject.toml": "[project]\ndependencies = [\"!!\"]\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := metadata.NewExtractor().Extract(context.Background(), tree(t, "x", tt.files))
			require.ErrorIs(t, err, domain.ErrMetadataExtractionFailed)
		})
	}
}
