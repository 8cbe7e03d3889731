package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/fibgen/pkg/adapters/redis"
	"github.com/aretw0/fibgen/pkg/domain"
	"github.com/aretw0/fibgen/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)

	store := redis.NewFromClient(client)
	ports.RunRecordStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)
	ctx := context.Background()

	store := redis.NewFromClient(client, redis.WithPrefix("test:"))
	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.Save(ctx, domain.NewRecord("abc", 7, domain.SourceHTTP)))

	assert.True(t, mr.Exists("test:abc"))
	assert.True(t, mr.Exists("test:index"))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)
	ctx := context.Background()

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	record := domain.NewRecord("record-ttl", 15, domain.SourceMCP)

	// 1. Save
	require.NoError(t, store.Save(ctx, record))

	// 2. Listed immediately
	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)

	// 3. Expire the key in miniredis
	mr.FastForward(2 * time.Second)

	// 4. Load fails
	_, err = store.Load(ctx, record.ID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	// 5. List skips the expired value even before the index is pruned
	records, err = store.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestRedisStore_Delete_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	client := backend.NewClient(&backend.Options{Addr: addr, MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	store := redis.NewFromClient(client)
	err = store.Delete(context.Background(), "gone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete record")
}
