package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/fs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func sourceTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pyproject.toml"), "[project]\nname = \"demo\"\n")
	writeFile(t, filepath.Join(root, "src", "demo", "__init__.py"), "VERSION = 1\n")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ref: refs/heads/main\n")
	writeFile(t, filepath.Join(root, "src", "demo", "__pycache__", "x.pyc"), "bytecode")
	return root
}

func TestWalker_WalkFiles(t *testing.T) {
	root := sourceTree(t)

	var got []string
	for path := range fs.NewWalker().WalkFiles(root, fs.DefaultIgnores) {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}

	assert.Equal(t, []string{"pyproject.toml", "src/demo/__init__.py"}, got)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	root := sourceTree(t)

	var got []string
	for path := range fs.NewWalker().WalkFiles(root, nil) {
		got = append(got, path)
		break
	}

	assert.Len(t, got, 1)
}

func TestWalker_WalkFiles_RootMatchingIgnoreIsWalked(t *testing.T) {
	root := filepath.Join(t.TempDir(), "build")
	writeFile(t, filepath.Join(root, "setup.py"), "")

	got := slices.Collect(fs.NewWalker().WalkFiles(root, fs.DefaultIgnores))
	assert.Equal(t, []string{filepath.Join(root, "setup.py")}, got)
}

func TestHasher_HashTree_LocationIndependent(t *testing.T) {
	h := fs.NewHasher(fs.NewWalker())

	a, err := h.HashTree(sourceTree(t))
	require.NoError(t, err)
	b, err := h.HashTree(sourceTree(t))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 16)
}

func TestHasher_HashTree_ContentChanges(t *testing.T) {
	h := fs.NewHasher(fs.NewWalker())
	root := sourceTree(t)

	before, err := h.HashTree(root)
	require.NoError(t, err)

	writeFile(t, filepath.Join(root, "src", "demo", "__init__.py"), "VERSION = 2\n")
	after, err := h.HashTree(root)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestHasher_HashTree_IgnoresByproducts(t *testing.T) {
	h := fs.NewHasher(fs.NewWalker())
	root := sourceTree(t)

	before, err := h.HashTree(root)
	require.NoError(t, err)

	writeFile(t, filepath.Join(root, "dist", "demo-1.0-py3-none-any.whl"), "zip")
	writeFile(t, filepath.Join(root, ".git", "index"), "changed")
	after, err := h.HashTree(root)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestHasher_HashTree_RenameChangesHash(t *testing.T) {
	h := fs.NewHasher(fs.NewWalker())
	root := sourceTree(t)

	before, err := h.HashTree(root)
	require.NoError(t, err)

	require.NoError(t, os.Rename(filepath.Join(root, "pyproject.toml"), filepath.Join(root, "setup.cfg")))
	after, err := h.HashTree(root)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestHasher_HashTree_Errors(t *testing.T) {
	h := fs.NewHasher(fs.NewWalker())

	_, err := h.HashTree(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	writeFile(t, file, "x")
	_, err = h.HashTree(file)
	require.Error(t, err)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	h := fs.NewHasher(fs.NewWalker())
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a"), filepath.Join(dir, "b")
	writeFile(t, a, "same")
	writeFile(t, b, "same")

	ha, err := h.ComputeFileHash(a)
	require.NoError(t, err)
	hb, err := h.ComputeFileHash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
}
