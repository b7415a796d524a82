// Package cache provides the optional Redis-backed read cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"inkwell/internal/observability"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis connects to Redis at the given address. The cache is best-effort:
// when the server is unreachable the application keeps serving straight from
// the database.
func InitRedis(addr string) {
	c := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		observability.Logger.Warn("Redis connection warning (continuing without cache)",
			slog.String("addr", addr), slog.String("error", err.Error()))
		client = nil
		return
	}

	client = c
	observability.Logger.Info("Redis connected", slog.String("addr", addr))
}

// GetClient returns the shared Redis client, or nil when the cache is disabled.
func GetClient() *redis.Client {
	return client
}

// Close releases the Redis connection if one was established.
func Close() {
	if client != nil {
		if err := client.Close(); err != nil {
			observability.Logger.Error("Error closing Redis", slog.String("error", err.Error()))
		}
		client = nil
	}
}
