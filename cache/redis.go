package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache shares memoized Pareto/t-ordering results across worker
// processes evaluating the same model repeatedly, e.g. several CLI
// invocations or HTTP handler goroutines against one config file. This is
// the only file in the package importing go-redis, matching the teacher's
// convention of isolating a single third-party concern to one narrow file
// (math/rand confined to builder/config.go).
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis returns a Cache backed by an existing *redis.Client. ttl <= 0
// means entries never expire.
func NewRedis(client *redis.Client, ttl time.Duration) Cache {
	return &redisCache{client: client, ttl: ttl}
}

// Get implements Cache.
func (c *redisCache) Get(key string) ([]string, bool, error) {
	raw, err := c.client.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var survivors []string
	if err := json.Unmarshal(raw, &survivors); err != nil {
		return nil, false, err
	}
	return survivors, true, nil
}

// Set implements Cache.
func (c *redisCache) Set(key string, survivors []string) error {
	raw, err := json.Marshal(survivors)
	if err != nil {
		return err
	}
	return c.client.Set(context.Background(), key, raw, c.ttl).Err()
}
