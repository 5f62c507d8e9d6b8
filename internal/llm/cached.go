package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"

	"debtpilot/internal/cache"
	"debtpilot/internal/payoff"
)

const cacheKeyPrefix = "debtpilot:ai:"

// CachedGenerator memoizes replies that carry a JSON object, keyed by prompt. Identical
// portfolios produce identical prompts, so repeat requests skip the API.
type CachedGenerator struct {
	next  payoff.TextGenerator
	cache cache.Cache
	ttl   time.Duration
	log   *zap.SugaredLogger
}

func NewCachedGenerator(next payoff.TextGenerator, c cache.Cache, ttl time.Duration, log *zap.SugaredLogger) *CachedGenerator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &CachedGenerator{next: next, cache: c, ttl: ttl, log: log}
}

func (g *CachedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	key := CacheKey(prompt)
	if reply, ok := g.cache.Get(ctx, key); ok {
		g.log.Debugw("strategy reply served from cache", "key", key)
		return reply, nil
	}

	reply, err := g.next.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if extracted := payoff.ExtractJSONObject(reply); !extracted.Found {
		g.log.Debugw("not caching unparseable strategy reply", "key", key, "reason", extracted.Reason)
		return reply, nil
	}
	if err := g.cache.Set(ctx, key, reply, g.ttl); err != nil {
		g.log.Warnw("failed to cache strategy reply", "key", key, "error", err)
	}
	return reply, nil
}

// CacheKey is the cache key of a prompt.
func CacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
