package fulltext

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chronicle/config"
	"chronicle/types"

	"github.com/redis/go-redis/v9"
)

// CacheConfig configures the Redis-backed extraction cache.
type CacheConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
	// TTL for cached article text; defaults to config.CacheTTL
	TTL time.Duration
	// KeyPrefix namespaces cache keys; defaults to "fulltext:"
	KeyPrefix string
}

// Cache stores extracted article text keyed by URL hash so repeated
// queries within the TTL window skip the network round trip. It is
// strictly optional: a nil *Cache disables caching.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewCache creates a cache and verifies connectivity. Callers should treat
// an error as "run without a cache", not as fatal.
func NewCache(cfg CacheConfig) (*Cache, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address not configured")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Ping to verify
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = config.CacheTTL
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "fulltext:"
	}

	return &Cache{client: client, ttl: ttl, prefix: prefix}, nil
}

// Get returns cached text for url and whether it was present.
func (c *Cache) Get(ctx context.Context, url string) (string, bool) {
	text, err := c.client.Get(ctx, c.key(url)).Result()
	if err != nil {
		return "", false
	}
	return text, true
}

// Set stores text for url with the configured TTL. Failures are ignored;
// the cache is best-effort.
func (c *Cache) Set(ctx context.Context, url, text string) {
	_ = c.client.Set(ctx, c.key(url), text, c.ttl).Err()
}

// Close closes the underlying Redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) key(url string) string {
	return c.prefix + types.GenerateID(url)
}
