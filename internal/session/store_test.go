package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
	"backoffice/internal/view"
	"backoffice/pkg/logger"
	"backoffice/pkg/redis"
)

func setupRedisStore(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient("redis://"+mr.Addr(), "development", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisStore(client, time.Hour, logger.NewNop())
}

func sampleModel() view.Model {
	m := view.Initial()
	m = view.Update(m, view.Navigate{Page: view.PageProvidersList})
	m = view.Update(m, view.SetProviderSearch{Query: "jim"})
	m = view.Update(m, view.ApplyProviderFilters{Filters: domain.ProviderFilters{Company: "Acme"}})
	return m
}

func TestRedisStore_SaveAndLoad(t *testing.T) {
	mr, store := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", sampleModel()))

	key := "staging:backoffice:session:abc"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Hour, mr.TTL(key))

	got, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, sampleModel(), got)
}

func TestRedisStore_LoadSlidesExpiry(t *testing.T) {
	mr, store := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", sampleModel()))
	mr.FastForward(40 * time.Minute)

	_, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, mr.TTL("staging:backoffice:session:abc"))
}

func TestRedisStore_UnknownSession(t *testing.T) {
	_, store := setupRedisStore(t)

	got, err := store.Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, view.Initial(), got)
}

func TestRedisStore_CorruptedData(t *testing.T) {
	mr, store := setupRedisStore(t)
	require.NoError(t, mr.Set("staging:backoffice:session:bad", "{not json"))

	got, err := store.Load(context.Background(), "bad")
	require.NoError(t, err)
	assert.Equal(t, view.Initial(), got)
}

func TestRedisStore_ConnectionError(t *testing.T) {
	mr, store := setupRedisStore(t)
	mr.Close()

	_, err := store.Load(context.Background(), "abc")
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", sampleModel()))
	got, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, sampleModel(), got)

	now = now.Add(2 * time.Minute)
	got, err = store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, view.Initial(), got)
	assert.Zero(t, store.Len())
}
