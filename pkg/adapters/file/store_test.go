package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/fibgen/pkg/adapters/file"
	"github.com/aretw0/fibgen/pkg/domain"
	"github.com/aretw0/fibgen/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Store implements RecordStore
var _ ports.RecordStore = (*file.Store)(nil)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunRecordStoreContract(t, store)
}

func TestFileStore_ListMissingDirectory(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "does-not-exist"))

	records, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFileStore_Overwrite(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewRecord("same", 1, domain.SourceHTTP)))
	require.NoError(t, store.Save(ctx, domain.NewRecord("same", 2, domain.SourceHTTP)))

	loaded, err := store.Load(ctx, "same")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Terms)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should not be left behind")
}

func TestFileStore_RejectsPathIDs(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"../escape", "a/b", ".hidden"} {
		err := store.Save(ctx, domain.NewRecord(id, 1, domain.SourceHTTP))
		assert.ErrorIs(t, err, domain.ErrInvalidRecord, "id %q", id)

		_, err = store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrInvalidRecord, "id %q", id)
	}
}
