package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"kunooz-ads/internal/core/port"
)

// RedisBackend shares cache entries and generations between replicas.
type RedisBackend struct {
	client redis.Cmdable
	prefix string
}

var _ port.CacheBackend = (*RedisBackend)(nil)

// NewRedisBackend returns a backend writing keys under prefix.
func NewRedisBackend(client redis.Cmdable, prefix string) *RedisBackend {
	return &RedisBackend{client: client, prefix: prefix}
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (r *RedisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, r.prefix+key, value, ttl).Err()
}

func (r *RedisBackend) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}

func (r *RedisBackend) Generation(ctx context.Context, name string) (uint64, error) {
	v, err := r.client.Get(ctx, r.genKey(name)).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (r *RedisBackend) BumpGeneration(ctx context.Context, name string) (uint64, error) {
	v, err := r.client.Incr(ctx, r.genKey(name)).Result()
	return uint64(v), err
}

func (r *RedisBackend) genKey(name string) string {
	return r.prefix + "gen:" + name
}
