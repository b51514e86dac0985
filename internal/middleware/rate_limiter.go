package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"personas/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RateStore counts hits per key inside a fixed window.
// Hit returns the count after this hit and when the current window ends.
type RateStore interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
}

// ── In-memory store ───────────────────────────────────────────────────────────

type rateEntry struct {
	count     int64
	windowEnd time.Time
}

// MemoryStore keeps counters in process. Expired entries are swept lazily
// on Hit, at most once per window, so no background goroutine is needed.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]*rateEntry
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*rateEntry), now: time.Now}
}

func (s *MemoryStore) Hit(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= window {
		s.sweep(now)
		s.lastSweep = now
	}

	entry, ok := s.entries[key]
	if !ok || !now.Before(entry.windowEnd) {
		entry = &rateEntry{windowEnd: now.Add(window)}
		s.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.windowEnd, nil
}

func (s *MemoryStore) sweep(now time.Time) {
	purged := 0
	for k, e := range s.entries {
		if !now.Before(e.windowEnd) {
			delete(s.entries, k)
			purged++
		}
	}
	if purged > 0 {
		log.Debug().Int("purged", purged).Int("remaining", len(s.entries)).Msg("rate limiter entries purged")
	}
}

// ── Redis store ───────────────────────────────────────────────────────────────

// RedisStore shares counters between instances. The window starts with the
// first INCR of a key, which also sets its expiry.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: "ratelimit:"}
}

func (s *RedisStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	k := s.prefix + key
	count, err := s.rdb.Incr(ctx, k).Result()
	if err != nil {
		return 0, time.Time{}, err
	}
	if count == 1 {
		if err := s.rdb.PExpire(ctx, k, window).Err(); err != nil {
			return count, time.Now().Add(window), err
		}
		return count, time.Now().Add(window), nil
	}
	ttl, err := s.rdb.PTTL(ctx, k).Result()
	if err != nil || ttl < 0 {
		// key without expiry (lost PEXPIRE): repair it
		_ = s.rdb.PExpire(ctx, k, window).Err()
		ttl = window
	}
	return count, time.Now().Add(ttl), nil
}

// ── Middleware ────────────────────────────────────────────────────────────────

// RateLimiter allows limit requests per client IP per window. Standard
// RateLimit-* headers are set on every response; rejected requests also get
// Retry-After. Store failures let the request through.
func RateLimiter(store RateStore, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		count, resetAt, err := store.Hit(c.Request.Context(), ip, window)
		if err != nil {
			log.Warn().Err(err).Str("ip", ip).Msg("rate limit store unavailable")
			c.Next()
			return
		}

		resetSecs := int64(math.Ceil(time.Until(resetAt).Seconds()))
		if resetSecs < 0 {
			resetSecs = 0
		}
		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("RateLimit-Limit", strconv.Itoa(limit))
		c.Header("RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("RateLimit-Reset", strconv.FormatInt(resetSecs, 10))

		if count > int64(limit) {
			c.Header("Retry-After", strconv.FormatInt(resetSecs, 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Envelope{
				Message: "Demasiadas peticiones desde esta IP, inténtalo de nuevo más tarde",
				Error:   "Rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
