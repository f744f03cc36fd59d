package fetch_test

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/fetch"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSet_For(t *testing.T) {
	local := fetch.NewLocal()
	set := fetch.NewSet(map[domain.SourceKind]ports.Fetcher{
		domain.SourceLocal: local,
		domain.SourceGit:   nil,
	})

	f, ok := set.For(domain.SourceLocal)
	require.True(t, ok)
	assert.Same(t, local, f)

	_, ok = set.For(domain.SourceGit)
	assert.False(t, ok, "nil fetchers are not registered")

	_, ok = set.For(domain.SourceSystem)
	assert.False(t, ok)
}

func TestGit_Fetch_Branch(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), &domain.Command{
		Name: "git",
		Args: []string{"clone", "--quiet", "--depth", "1", "--branch", "v2.0", "--", "https://example.com/a.git", "/src/a"},
	}).Return(nil)

	spec := domain.FetchSpec{Kind: domain.SourceGit, Location: "https://example.com/a.git", Depth: 1, RefSpec: "v2.0"}
	require.NoError(t, fetch.NewGit(executor, "").Fetch(context.Background(), spec, "/src/a"))
}

func TestGit_Fetch_Commit(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	gomock.InOrder(
		executor.EXPECT().Execute(gomock.Any(), &domain.Command{
			Name: "/usr/bin/git",
			Args: []string{"clone", "--quiet", "--", "https://example.com/a.git", "/src/a"},
		}).Return(nil),
		executor.EXPECT().Execute(gomock.Any(), &domain.Command{
			Name: "/usr/bin/git",
			Args: []string{"-c", "advice.detachedHead=false", "checkout", "--quiet", "0123abcd"},
			Dir:  "/src/a",
		}).Return(nil),
	)

	spec := domain.FetchSpec{Kind: domain.SourceGit, Location: "https://example.com/a.git", Depth: 1, RefSpec: "0123abcd"}
	require.NoError(t, fetch.NewGit(executor, "/usr/bin/git").Fetch(context.Background(), spec, "/src/a"))
}

func TestGit_Fetch_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(assert.AnError)

	err := fetch.NewGit(executor, "git").Fetch(context.Background(), domain.FetchSpec{Location: "u"}, "/d")
	require.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestLocal_Fetch(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "pkg"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(src, "pkg", "__init__.py"), []byte("x = 1\n"), 0o600))
	dest := filepath.Join(t.TempDir(), "sources", "pkg")

	spec := domain.FetchSpec{Kind: domain.SourceLocal, Location: "file://" + src}
	require.NoError(t, fetch.NewLocal().Fetch(context.Background(), spec, dest))

	assert.Equal(t, "x = 1\n", readFile(t, filepath.Join(dest, "pkg", "__init__.py")))
}

func TestLocal_Fetch_Missing(t *testing.T) {
	spec := domain.FetchSpec{Kind: domain.SourceLocal, Location: filepath.Join(t.TempDir(), "missing")}
	err := fetch.NewLocal().Fetch(context.Background(), spec, t.TempDir())
	require.ErrorIs(t, err, domain.ErrFetchFailed)
}

func tarGz(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Mode: 0o644, Size: int64(len(content)), Typeflag: tar.TypeReg}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func zipArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func serve(t *testing.T, files map[string][]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestArchive_Fetch_TarGzStripsTopDir(t *testing.T) {
	srv := serve(t, map[string][]byte{
		"/demo-1.0.tar.gz": tarGz(t, map[string]string{
			"demo-1.0/pyproject.toml":   "[project]\n",
			"demo-1.0/demo/__init__.py": "",
		}),
	})
	dest := filepath.Join(t.TempDir(), "demo")

	spec := domain.FetchSpec{Kind: domain.SourceArchive, Location: srv.URL + "/demo-1.0.tar.gz"}
	require.NoError(t, fetch.NewArchive(srv.Client()).Fetch(context.Background(), spec, dest))

	assert.Equal(t, "[project]\n", readFile(t, filepath.Join(dest, "pyproject.toml")))
	assert.FileExists(t, filepath.Join(dest, "demo", "__init__.py"))
}

func TestArchive_Fetch_ZipWithoutCommonRoot(t *testing.T) {
	srv := serve(t, map[string][]byte{
		"/flat.zip": zipArchive(t, map[string]string{
			"setup.py":     "from setuptools import setup\n",
			"flat/core.py": "",
		}),
	})
	dest := filepath.Join(t.TempDir(), "flat")

	spec := domain.FetchSpec{Kind: domain.SourceArchive, Location: srv.URL + "/flat.zip"}
	require.NoError(t, fetch.NewArchive(srv.Client()).Fetch(context.Background(), spec, dest))

	assert.FileExists(t, filepath.Join(dest, "setup.py"))
	assert.FileExists(t, filepath.Join(dest, "flat", "core.py"))
}

func TestArchive_Fetch_LocalFile(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "pkg.tgz")
	require.NoError(t, os.WriteFile(archive, tarGz(t, map[string]string{"pkg/setup.cfg": "[metadata]\n"}), 0o600))
	dest := filepath.Join(t.TempDir(), "pkg")

	spec := domain.FetchSpec{Kind: domain.SourceArchive, Location: archive}
	require.NoError(t, fetch.NewArchive(nil).Fetch(context.Background(), spec, dest))

	assert.FileExists(t, filepath.Join(dest, "setup.cfg"))
}

func TestArchive_Fetch_Errors(t *testing.T) {
	srv := serve(t, map[string][]byte{
		"/evil.zip": zipArchive(t, map[string]string{"../escape.py": ""}),
		"/blob.rar": []byte("not supported"),
	})

	tests := []struct {
		name     string
		location string
	}{
		{name: "not found", location: srv.URL + "/missing.tar.gz"},
		{name: "unsupported format", location: srv.URL + "/blob.rar"},
		{name: "path traversal", location: srv.URL + "/evil.zip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := domain.FetchSpec{Kind: domain.SourceArchive, Location: tt.location}
			err := fetch.NewArchive(srv.Client()).Fetch(context.Background(), spec, t.TempDir())
			require.ErrorIs(t, err, domain.ErrFetchFailed)
		})
	}
}
