package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists records in Redis/Valkey so they survive process
// restarts. Chart keys carry no TTL; expiry would silently drop the last
// computed chart.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Save(ctx context.Context, key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, raw, 0).Err()
}

func (r *RedisStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return decodeRecord(raw, dest)
}

func (r *RedisStore) Clear(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
