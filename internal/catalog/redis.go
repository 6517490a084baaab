package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// RedisCatalog implements Catalog with a single redis hash, so several
// registry processes can share one inventory.
type RedisCatalog struct {
	client *redis.Client
	hash   string
}

type RedisConfig struct {
	Prefix string
}

// NewRedisCatalog creates a redis-backed catalog.
func NewRedisCatalog(client *redis.Client, config RedisConfig) *RedisCatalog {
	hash := "flyweights"
	if config.Prefix != "" {
		hash = config.Prefix + ":" + hash
	}
	return &RedisCatalog{
		client: client,
		hash:   hash,
	}
}

// Record stores item with HSETNX so the first writer wins across processes.
func (c *RedisCatalog) Record(ctx context.Context, item Item) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode catalog item: %w", err)
	}

	if err := c.client.HSetNX(ctx, c.hash, item.Key, body).Err(); err != nil {
		return fmt.Errorf("redis hsetnx failed: %w", err)
	}
	return nil
}

// List returns all items ordered by key.
func (c *RedisCatalog) List(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	raw, err := c.client.HGetAll(ctx, c.hash).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall failed: %w", err)
	}

	out := make([]Item, 0, len(raw))
	for field, body := range raw {
		var it Item
		if err := json.Unmarshal([]byte(body), &it); err != nil {
			return nil, fmt.Errorf("decode catalog item %q: %w", field, err)
		}
		out = append(out, it)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (c *RedisCatalog) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	n, err := c.client.HLen(ctx, c.hash).Result()
	if err != nil {
		return 0, fmt.Errorf("redis hlen failed: %w", err)
	}
	return int(n), nil
}

// Ping checks if the redis connection is healthy.
func (c *RedisCatalog) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	return c.client.Ping(ctx).Err()
}
