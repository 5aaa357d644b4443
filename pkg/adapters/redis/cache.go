package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/surveyshell/pkg/domain"
	"github.com/aretw0/surveyshell/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a cached document lives unless WithTTL overrides it.
const DefaultTTL = 5 * time.Minute

// Cache implements ports.SourceLoader as a read-through cache in Redis
// in front of another loader. Misses are never cached.
type Cache struct {
	client *backend.Client
	next   ports.SourceLoader
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

type Option func(*Cache)

// WithTTL sets the expiration for cached documents. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached documents.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// WithLogger sets the logger used to report degraded cache operations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a new Redis cache in front of next.
func New(address, password string, db int, next ports.SourceLoader, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, next, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, next ports.SourceLoader, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		next:   next,
		prefix: "surveyshell:source:",
		ttl:    DefaultTTL,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cache) key(name string) string {
	return c.prefix + name
}

// Load returns the cached document, filling the cache from the next loader on a miss.
// Redis failures degrade to reading through without caching.
func (c *Cache) Load(ctx context.Context, name string) ([]byte, error) {
	clean, err := domain.CleanSourceName(name)
	if err != nil {
		return nil, err
	}

	val, err := c.client.Get(ctx, c.key(clean)).Bytes()
	switch {
	case err == nil:
		c.logger.Debug("source cache hit", "source", clean)
		return val, nil
	case errors.Is(err, backend.Nil):
		c.logger.Debug("source cache miss", "source", clean)
	default:
		c.logger.Warn("source cache unavailable, reading through", "source", clean, "err", err)
	}

	data, err := c.next.Load(ctx, clean)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, c.key(clean), data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to fill source cache", "source", clean, "err", err)
	}
	return data, nil
}

// Invalidate drops the cached copy of name, if any.
func (c *Cache) Invalidate(ctx context.Context, name string) error {
	clean, err := domain.CleanSourceName(name)
	if err != nil {
		return err
	}
	if err := c.client.Del(ctx, c.key(clean)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate %s: %w", clean, err)
	}
	return nil
}

// Ping checks connectivity to Redis.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
