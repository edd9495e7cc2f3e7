package ratelimit

import (
	"fmt"
	"time"

	"github.com/telecloudhq/telecloud/app/repository"
	"github.com/telecloudhq/telecloud/internal/pkg/cache"
)

// Bot-token rate limiting. The bot_tokens.rate_limited_until column is the
// source of truth; Redis mirrors it so the hot path (every bot call) does not
// hit MySQL. Cache entries expire together with the window, so a cache miss
// falls through to the database.

func cacheKey(tokenID string) string {
	return "ratelimit:bottoken:" + tokenID
}

// IsLimited reports whether the bot token is inside a rate-limit window.
func IsLimited(repo repository.BotTokenRepository, tokenID string, now time.Time) (bool, error) {
	if v := cache.Get(cacheKey(tokenID)); v != "" {
		until, err := time.Parse(time.RFC3339, v)
		if err == nil && now.Before(until) {
			return true, nil
		}
	}

	token, err := repo.GetByID(tokenID)
	if err != nil {
		return false, err
	}
	if token.IsRateLimited(now) {
		// Re-prime the cache for the remainder of the window.
		_ = cache.Set(cacheKey(tokenID), token.RateLimitedUntil.Format(time.RFC3339), token.RateLimitedUntil.Sub(now))
		return true, nil
	}
	return false, nil
}

// Limit stamps a rate-limit window on the token in both stores.
func Limit(repo repository.BotTokenRepository, tokenID string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("rate limit duration must be positive, got %s", d)
	}
	until := time.Now().Add(d)
	if err := repo.SetRateLimitedUntil(tokenID, &until); err != nil {
		return err
	}
	_ = cache.Set(cacheKey(tokenID), until.Format(time.RFC3339), d)
	return nil
}

// Clear lifts the window early. The cache entry is removed best-effort; the
// database column is what IsLimited falls back to.
func Clear(repo repository.BotTokenRepository, tokenID string) error {
	if err := repo.SetRateLimitedUntil(tokenID, nil); err != nil {
		return err
	}
	_ = cache.Delete(cacheKey(tokenID))
	return nil
}
