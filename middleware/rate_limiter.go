package middleware

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter counts one request against key and reports the caller's budget.
type Limiter interface {
	Take(ctx context.Context, key string) (info models.RateLimitInfo, allowed bool, err error)
}

func RateLimiter(limiter Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		info, allowed, err := limiter.Take(c.Request.Context(), key)
		if err != nil {
			logger.Error("[rate-limit] backend error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Rate limiter unavailable"))
			c.Abort()
			return
		}

		c.Set(models.RateLimitKey, &info)

		if !allowed {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    &info,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ════════════════════════════════════════════════════════════
// Redis fixed window
// ════════════════════════════════════════════════════════════

type RedisLimiter struct {
	client      *redis.Client
	maxRequests int
	window      time.Duration
}

func NewRedisLimiter(client *redis.Client, maxRequests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, maxRequests: maxRequests, window: window}
}

func (l *RedisLimiter) Take(ctx context.Context, key string) (models.RateLimitInfo, bool, error) {
	resetKey := key + ":resetAt"

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return models.RateLimitInfo{}, false, err
	}

	// First request → set expiry and stable resetAt
	if count == 1 {
		resetAt := time.Now().Add(l.window)
		pipe := l.client.TxPipeline()
		pipe.Expire(ctx, key, l.window)
		pipe.Set(ctx, resetKey, resetAt.Unix(), l.window)
		if _, err := pipe.Exec(ctx); err != nil {
			return models.RateLimitInfo{}, false, err
		}
	}

	resetAtUnix, err := l.client.Get(ctx, resetKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return models.RateLimitInfo{}, false, err
	}
	resetAt := time.Unix(resetAtUnix, 0)

	return rateInfo(l.maxRequests, l.maxRequests-int(count), resetAt, time.Now()), int(count) <= l.maxRequests, nil
}

// ════════════════════════════════════════════════════════════
// In-process token buckets
// ════════════════════════════════════════════════════════════

// LocalLimiter gives each key a token bucket holding maxRequests tokens
// that refills over window.
type LocalLimiter struct {
	mu          sync.Mutex
	buckets     map[string]*bucket
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const maxIdleBuckets = 10000

func NewLocalLimiter(maxRequests int, window time.Duration) *LocalLimiter {
	return &LocalLimiter{
		buckets:     make(map[string]*bucket),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

func (l *LocalLimiter) Take(_ context.Context, key string) (models.RateLimitInfo, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.buckets) > maxIdleBuckets {
		l.prune(now)
	}

	b, ok := l.buckets[key]
	if !ok {
		every := l.window / time.Duration(l.maxRequests)
		b = &bucket{limiter: rate.NewLimiter(rate.Every(every), l.maxRequests)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	allowed := b.limiter.AllowN(now, 1)
	tokens := b.limiter.TokensAt(now)

	missing := float64(l.maxRequests) - tokens
	resetAt := now.Add(time.Duration(missing * float64(l.window) / float64(l.maxRequests)))
	return rateInfo(l.maxRequests, int(tokens), resetAt, now), allowed, nil
}

// prune drops buckets idle long enough to have refilled completely.
func (l *LocalLimiter) prune(now time.Time) {
	for k, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.window {
			delete(l.buckets, k)
		}
	}
}

func rateInfo(limit, remaining int, resetAt, now time.Time) models.RateLimitInfo {
	if remaining < 0 {
		remaining = 0
	}
	resetIn := int(resetAt.Sub(now).Seconds())
	if resetIn < 0 {
		resetIn = 0
	}
	return models.RateLimitInfo{
		Limit:          limit,
		Remaining:      remaining,
		ResetAt:        resetAt,
		ResetInSeconds: resetIn,
	}
}
