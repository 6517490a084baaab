package catalog

import "github.com/redis/go-redis/v9"

// Backend names accepted by Config.Backend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Backend string
	Prefix  string
}

// NewCatalog picks a backend. Anything other than "redis" gets the memory
// catalog.
func NewCatalog(cfg Config, redisClient *redis.Client) (Catalog, error) {
	switch cfg.Backend {
	case BackendRedis:
		if redisClient == nil {
			return nil, ErrNilClient
		}
		return NewRedisCatalog(redisClient, RedisConfig{
			Prefix: cfg.Prefix,
		}), nil
	default:
		return NewMemoryCatalog(), nil
	}
}
