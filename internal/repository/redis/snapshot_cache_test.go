package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, domain.SnapshotCache) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return s, NewSnapshotCache(rdb, "", ttl)
}

func TestSnapshotCache_StoreAndLoad(t *testing.T) {
	ctx := context.Background()
	_, cache := newTestCache(t, time.Minute)

	_, found, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	events := []domain.Event{
		{ID: "ev-1", Title: "Jazz Night", Category: "Music", StartDate: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), Price: 499},
		{ID: "ev-2", Title: "Untitled"},
	}
	require.NoError(t, cache.Store(ctx, events))

	got, found, err := cache.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, events, got)
}

func TestSnapshotCache_Expires(t *testing.T) {
	ctx := context.Background()
	s, cache := newTestCache(t, time.Minute)

	require.NoError(t, cache.Store(ctx, []domain.Event{{ID: "ev-1"}}))
	assert.Equal(t, time.Minute, s.TTL(DefaultSnapshotKey))

	s.FastForward(2 * time.Minute)
	_, found, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSnapshotCache_CorruptValue(t *testing.T) {
	s, cache := newTestCache(t, 0)
	require.NoError(t, s.Set(DefaultSnapshotKey, "not json"))

	_, found, err := cache.Load(context.Background())
	require.Error(t, err)
	assert.False(t, found)
}

func TestNewClient(t *testing.T) {
	s := miniredis.RunT(t)
	rdb, err := NewClient(context.Background(), "redis://"+s.Addr())
	require.NoError(t, err)
	require.NoError(t, rdb.Close())

	_, err = NewClient(context.Background(), "not-a-url")
	require.Error(t, err)
}
