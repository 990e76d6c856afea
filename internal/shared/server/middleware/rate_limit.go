package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"workwise-backend/internal/shared/server/respond"
)

const (
	defaultRateLimitGroup = "DEFAULT"
	// Limiters untouched for limiterIdleTTL are dropped, checked at most
	// once per limiterSweepEvery.
	limiterIdleTTL    = 10 * time.Minute
	limiterSweepEvery = time.Minute
)

// RateLimitRule is a token bucket: Rate tokens per second, up to Burst.
type RateLimitRule struct {
	Rate  float64
	Burst int
}

type RateLimitConfig struct {
	Rules        map[string]RateLimitRule
	DefaultGroup string
	GroupFor     func(*gin.Context) string
	Limiter      *RateLimiter
}

// RateLimiter keeps one limiter per principal and group.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	lastSweep time.Time
	now       func() time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		now:      now,
	}
}

func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limiter == nil {
		cfg.Limiter = NewRateLimiter(nil)
	}
	if cfg.DefaultGroup == "" {
		cfg.DefaultGroup = defaultRateLimitGroup
	}
	return func(c *gin.Context) {
		group := cfg.DefaultGroup
		if cfg.GroupFor != nil {
			if g := strings.TrimSpace(cfg.GroupFor(c)); g != "" {
				group = g
			}
		}
		rule, ok := cfg.Rules[group]
		if !ok {
			c.Next()
			return
		}
		principal := strings.TrimSpace(UserIDFromContext(c))
		if principal == "" {
			principal = strings.TrimSpace(c.ClientIP())
		}
		allowed, retryAfter := cfg.Limiter.Allow(principal+"|"+group, rule)
		if allowed {
			c.Next()
			return
		}
		retryAfterMs := int(retryAfter / time.Millisecond)
		if retryAfterMs <= 0 {
			retryAfterMs = 1000
		}
		retryAfterSeconds := int(math.Ceil(float64(retryAfterMs) / 1000.0))
		if retryAfterSeconds <= 0 {
			retryAfterSeconds = 1
		}
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		respond.Error(c, http.StatusTooManyRequests, "rate_limited", "too many requests", gin.H{
			"retryAfterMs": retryAfterMs,
		})
	}
}

// Allow consumes one token for key and reports how long to wait otherwise.
func (l *RateLimiter) Allow(key string, rule RateLimitRule) (bool, time.Duration) {
	if l == nil || rule.Rate <= 0 || rule.Burst <= 0 {
		return true, 0
	}
	now := l.now()

	l.mu.Lock()
	l.sweepLocked(now)
	entry, ok := l.limiters[key]
	if !ok {
		entry = &limiterEntry{lim: rate.NewLimiter(rate.Limit(rule.Rate), rule.Burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now
	lim := entry.lim
	l.mu.Unlock()

	res := lim.ReserveN(now, 1)
	if !res.OK() {
		return false, time.Second
	}
	delay := res.DelayFrom(now)
	if delay == 0 {
		return true, 0
	}
	res.CancelAt(now)
	return false, delay
}

func (l *RateLimiter) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < limiterSweepEvery {
		return
	}
	l.lastSweep = now
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) >= limiterIdleTTL {
			delete(l.limiters, key)
		}
	}
}

// Len reports how many limiters are held.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}
