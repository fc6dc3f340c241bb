package dedup

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"kunooz-ads/internal/core/port"
)

// RedisStore marks keys with SET NX EX so every replica shares the window.
type RedisStore struct {
	client redis.Cmdable
	prefix string
}

var _ port.DedupStore = (*RedisStore)(nil)

// NewRedisStore returns a store writing keys under prefix.
func NewRedisStore(client redis.Cmdable, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) MarkIfAbsent(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, s.prefix+key, 1, ttl).Result()
}
