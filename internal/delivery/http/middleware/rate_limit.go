package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"go-prodigy-backend/config"
	"go-prodigy-backend/internal/delivery/http/response"
	"go-prodigy-backend/pkg/logger"
)

// rateLimitEntry tracks request count for one client within the current window
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

type rateLimiter struct {
	entries     sync.Map
	limit       int
	window      time.Duration
	cleanupOnce sync.Once
}

// ContactRateLimit applies a fixed-window, per-IP limit to the public contact
// endpoint. The store is in-memory; counters reset on process restart, which
// is acceptable for spam protection on a single-instance deployment.
func ContactRateLimit(cfg *config.Config) gin.HandlerFunc {
	rl := &rateLimiter{
		limit:  cfg.RateLimitContactRequests,
		window: time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
	}
	rl.startCleanup()

	return func(c *gin.Context) {
		count, resetAt := rl.increment(c.ClientIP(), time.Now())
		if count > rl.limit {
			logger.Log.Warn("Contact rate limit triggered",
				"ip", c.ClientIP(),
				"count", count,
				"reset_at", resetAt,
			)
			response.Error(c, http.StatusTooManyRequests,
				"Too many requests. Please try again later.", nil, "")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *rateLimiter) increment(key string, now time.Time) (int, time.Time) {
	entryI, _ := rl.entries.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(rl.window)})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	// Reset if window expired
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(rl.window)
	}

	entry.count++
	return entry.count, entry.resetAt
}

// startCleanup evicts stale entries so the map does not grow unbounded under
// a rotating-IP flood.
func (rl *rateLimiter) startCleanup() {
	rl.cleanupOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(10 * time.Minute)
			defer ticker.Stop()
			for range ticker.C {
				now := time.Now()
				rl.entries.Range(func(key, value any) bool {
					entry := value.(*rateLimitEntry)
					entry.mu.Lock()
					stale := now.After(entry.resetAt)
					entry.mu.Unlock()
					if stale {
						rl.entries.Delete(key)
					}
					return true
				})
			}
		}()
	})
}
