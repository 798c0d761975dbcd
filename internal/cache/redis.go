package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const declarationKeyPrefix = "gdt:declaration-view:"

// setIfNewer stores the view only when no view with the same or a higher
// version is cached. KEYS[1] key, ARGV[1] version, ARGV[2] body, ARGV[3] ttl ms.
var setIfNewer = redis.NewScript(`
local cur = redis.call('HGET', KEYS[1], 'v')
if cur and tonumber(cur) >= tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'v', ARGV[1], 'body', ARGV[2])
if tonumber(ARGV[3]) > 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[3])
end
return 1
`)

// RedisViewCache stores rendered declaration views by id with a TTL. Each
// entry is a hash carrying the view and the declaration version it renders.
type RedisViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisViewCache(client *redis.Client, ttl time.Duration) *RedisViewCache {
	return &RedisViewCache{client: client, ttl: ttl}
}

// NewClient parses a redis:// URL and checks the server answers.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Get returns the cached view. A miss is (nil, false, nil).
func (c *RedisViewCache) Get(ctx context.Context, id uuid.UUID) ([]byte, bool, error) {
	data, err := c.client.HGet(ctx, key(id), "body").Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set caches view as the rendering of version. It is a no-op when the cache
// already holds the same or a newer version.
func (c *RedisViewCache) Set(ctx context.Context, id uuid.UUID, version int64, view []byte) error {
	_, err := setIfNewer.Run(ctx, c.client, []string{key(id)}, version, view, c.ttl.Milliseconds()).Result()
	return err
}

func (c *RedisViewCache) Delete(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, key(id)).Err()
}

func key(id uuid.UUID) string {
	return declarationKeyPrefix + id.String()
}
