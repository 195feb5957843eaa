package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"eventhub/internal/domain"
)

// DefaultSnapshotKey is where the raw event collection is stored.
const DefaultSnapshotKey = "eventhub:snapshot:events"

type snapshotCache struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

// NewClient parses a redis:// URL and pings the server.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// NewSnapshotCache stores the raw event collection as one JSON value under key.
// A zero ttl keeps the value until it is overwritten.
func NewSnapshotCache(rdb *redis.Client, key string, ttl time.Duration) domain.SnapshotCache {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &snapshotCache{rdb: rdb, key: key, ttl: ttl}
}

func (c *snapshotCache) Load(ctx context.Context) ([]domain.Event, bool, error) {
	val, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var events []domain.Event
	if err := json.Unmarshal(val, &events); err != nil {
		return nil, false, err
	}
	return events, true, nil
}

func (c *snapshotCache) Store(ctx context.Context, events []domain.Event) error {
	b, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key, b, c.ttl).Err()
}
