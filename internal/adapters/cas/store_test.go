package cas_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/cas"
	"go.trai.ch/forge/internal/core/domain"
)

func TestStore_RecordAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".forge", "installed.json")

	store, err := cas.NewStore(path)
	require.NoError(t, err)

	empty, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, empty)

	rec := domain.InstallRecord{
		Name:        "setuptools",
		Version:     "69.0.0",
		Lane:        domain.LaneBuildTool.String(),
		SourceHash:  "0123456789abcdef",
		Artifact:    "setuptools-69.0.0-py3-none-any.whl",
		InstalledAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, store.Record(rec))
	require.NoError(t, store.Record(domain.InstallRecord{Name: "wheel"}))

	got, err := store.List()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, rec, got[0])
	assert.Equal(t, "wheel", got[1].Name)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "installed.json")

	store1, err := cas.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store1.Record(domain.InstallRecord{Name: "a", Version: "1.0"}))

	store2, err := cas.NewStore(path)
	require.NoError(t, err)
	got, err := store2.List()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1.0", got[0].Version)
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "installed.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store, err := cas.NewStore(path)
	require.NoError(t, err)
	got, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "installed.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := cas.NewStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal install ledger")
}

func TestStore_ListReturnsCopy(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "installed.json"))
	require.NoError(t, err)
	require.NoError(t, store.Record(domain.InstallRecord{Name: "a"}))

	got, err := store.List()
	require.NoError(t, err)
	got[0].Name = "mutated"

	again, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].Name)
}

func TestStore_ConcurrentRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "installed.json")
	store, err := cas.NewStore(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() {
			assert.NoError(t, store.Record(domain.InstallRecord{Name: "pkg"}))
		})
	}
	wg.Wait()

	reloaded, err := cas.NewStore(path)
	require.NoError(t, err)
	got, err := reloaded.List()
	require.NoError(t, err)
	assert.Len(t, got, 10)
}
