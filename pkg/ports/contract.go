package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/fibgen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRecordStoreContract runs a suite of tests to verify that a RecordStore implementation
// adheres to the defined interface contract.
func RunRecordStoreContract(t *testing.T, store RecordStore) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		record := domain.NewRecord(prefix+"-a", 7, domain.SourceHTTP)

		err := store.Save(ctx, record)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, record.ID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, record.ID, loaded.ID)
		assert.Equal(t, 7, loaded.Terms)
		assert.Equal(t, domain.SourceHTTP, loaded.Source)
		assert.True(t, record.CreatedAt.Equal(loaded.CreatedAt), "CreatedAt should survive a round trip")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+prefix)
		assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	})

	t.Run("Save Nil", func(t *testing.T) {
		assert.Error(t, store.Save(ctx, nil))
		assert.Error(t, store.Save(ctx, &domain.Record{}))
	})

	t.Run("Delete", func(t *testing.T) {
		id := prefix + "-b"
		require.NoError(t, store.Save(ctx, domain.NewRecord(id, 3, domain.SourceMCP)))

		err := store.Delete(ctx, id)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrRecordNotFound, "Load after Delete should return ErrRecordNotFound")

		assert.NoError(t, store.Delete(ctx, id), "Deleting twice should not fail")
	})

	t.Run("List", func(t *testing.T) {
		older := domain.NewRecord(prefix+"-old", 1, domain.SourceHTTP)
		older.CreatedAt = time.Now().UTC().Add(-time.Hour)
		newer := domain.NewRecord(prefix+"-new", 2, domain.SourceMCP)

		require.NoError(t, store.Save(ctx, older))
		require.NoError(t, store.Save(ctx, newer))
		defer func() {
			_ = store.Delete(ctx, older.ID)
			_ = store.Delete(ctx, newer.ID)
		}()

		records, err := store.List(ctx)
		require.NoError(t, err)

		pos := map[string]int{}
		for i, r := range records {
			pos[r.ID] = i
		}
		require.Contains(t, pos, older.ID)
		require.Contains(t, pos, newer.ID)
		assert.Less(t, pos[newer.ID], pos[older.ID], "List should return newest first")
	})
}
