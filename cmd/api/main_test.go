package main

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"

	"debtpilot/internal/cache"
	"debtpilot/internal/config"
	"debtpilot/internal/logger"
)

func TestNewCache(t *testing.T) {
	ctx := context.Background()

	t.Run("no redis address uses memory", func(t *testing.T) {
		c := newCache(ctx, &config.Config{}, logger.Get())
		if _, ok := c.(*cache.MemoryCache); !ok {
			t.Errorf("expected *cache.MemoryCache, got %T", c)
		}
	})

	t.Run("unreachable redis falls back to memory", func(t *testing.T) {
		c := newCache(ctx, &config.Config{RedisAddr: "127.0.0.1:1"}, logger.Get())
		if _, ok := c.(*cache.MemoryCache); !ok {
			t.Errorf("expected *cache.MemoryCache, got %T", c)
		}
	})
}

func TestCloseCache(t *testing.T) {
	t.Run("closes redis client", func(t *testing.T) {
		c := cache.NewRedisCache("127.0.0.1:1")
		closeCache(c, logger.Get())

		if err := c.Ping(context.Background()); !errors.Is(err, redis.ErrClosed) {
			t.Errorf("expected closed client, got %v", err)
		}
	})

	t.Run("memory cache is a no-op", func(t *testing.T) {
		closeCache(cache.NewMemoryCache(), logger.Get())
	})
}
