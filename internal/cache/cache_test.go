package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		c := NewMemoryCache()
		if _, ok := c.Get(ctx, "missing"); ok {
			t.Error("expected miss")
		}
	})

	t.Run("hit", func(t *testing.T) {
		c := NewMemoryCache()
		if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, ok := c.Get(ctx, "k")
		if !ok || got != "v" {
			t.Errorf("expected v, got %q (ok=%v)", got, ok)
		}
	})

	t.Run("expiry", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		c := NewMemoryCache()
		c.now = func() time.Time { return now }

		_ = c.Set(ctx, "k", "v", time.Minute)
		now = now.Add(59 * time.Second)
		if _, ok := c.Get(ctx, "k"); !ok {
			t.Fatal("expected entry before expiry")
		}
		now = now.Add(time.Second)
		if _, ok := c.Get(ctx, "k"); ok {
			t.Error("expected entry to expire")
		}
	})

	t.Run("no ttl", func(t *testing.T) {
		c := NewMemoryCache()
		_ = c.Set(ctx, "k", "v", 0)
		c.now = func() time.Time { return time.Now().AddDate(10, 0, 0) }
		if _, ok := c.Get(ctx, "k"); !ok {
			t.Error("expected entry without ttl to persist")
		}
	})

	t.Run("full cache drops expired entries first", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		c := NewMemoryCache()
		c.maxEntries = 3
		c.now = func() time.Time { return now }

		_ = c.Set(ctx, "stale-1", "v", time.Second)
		_ = c.Set(ctx, "stale-2", "v", time.Second)
		_ = c.Set(ctx, "fresh", "v", time.Hour)
		now = now.Add(time.Minute)
		_ = c.Set(ctx, "new", "v", time.Hour)

		if len(c.entries) != 2 {
			t.Errorf("expected 2 entries after sweep, got %d", len(c.entries))
		}
		for _, k := range []string{"fresh", "new"} {
			if _, ok := c.Get(ctx, k); !ok {
				t.Errorf("expected %s to survive", k)
			}
		}
	})

	t.Run("full cache evicts the entry closest to expiry", func(t *testing.T) {
		c := NewMemoryCache()
		c.maxEntries = 2

		_ = c.Set(ctx, "forever", "v", 0)
		_ = c.Set(ctx, "short", "v", time.Minute)
		_ = c.Set(ctx, "long", "v", time.Hour)

		if len(c.entries) != 2 {
			t.Fatalf("expected cache capped at 2, got %d", len(c.entries))
		}
		if _, ok := c.Get(ctx, "short"); ok {
			t.Error("expected the soonest-expiring entry to be evicted")
		}
		if _, ok := c.Get(ctx, "forever"); !ok {
			t.Error("expected entry without ttl to survive")
		}

		_ = c.Set(ctx, "long", "v2", time.Hour)
		if got, _ := c.Get(ctx, "long"); got != "v2" || len(c.entries) != 2 {
			t.Errorf("overwriting a key should not evict, got %q with %d entries", got, len(c.entries))
		}
	})

	t.Run("concurrent access", func(t *testing.T) {
		c := NewMemoryCache()
		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				key := fmt.Sprintf("k%d", i%5)
				_ = c.Set(ctx, key, "v", time.Minute)
				c.Get(ctx, key)
			}()
		}
		wg.Wait()
	})
}

func TestRedisCacheUnreachable(t *testing.T) {
	c := NewRedisCache("127.0.0.1:1")
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("expected miss when redis is unreachable")
	}
	if err := c.Set(ctx, "k", "v", time.Minute); err == nil {
		t.Error("expected error when redis is unreachable")
	}
	if err := c.Ping(ctx); err == nil {
		t.Error("expected ping to fail")
	}
}

var (
	_ Cache = (*MemoryCache)(nil)
	_ Cache = (*RedisCache)(nil)
)
