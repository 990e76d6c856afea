package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitScreeningPollingHigherThanDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })

	groupFor := func(c *gin.Context) string {
		if c.Request.Method == http.MethodGet && c.FullPath() == "/api/v1/screening" {
			return "POLLING"
		}
		return "DEFAULT"
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(userIDKey, "guest:test-guest")
		c.Next()
	})
	r.Use(RateLimit(RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor:     groupFor,
		Limiter:      limiter,
		Rules: map[string]RateLimitRule{
			"DEFAULT": {Rate: 1, Burst: 2},
			"POLLING": {Rate: 5, Burst: 10},
		},
	}))
	r.GET("/api/v1/screening", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.POST("/api/v1/applications", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/screening", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("polling request %d expected 200, got %d", i+1, resp.Code)
		}
	}

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("default request %d expected 200, got %d", i+1, resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("default request 3 expected 429, got %d", resp.Code)
	}
}

func TestRateLimit429IncludesRetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(userIDKey, "guest:test-guest")
		c.Next()
	})
	r.Use(RateLimit(RateLimitConfig{
		Limiter: limiter,
		Rules: map[string]RateLimitRule{
			"DEFAULT": {Rate: 1, Burst: 1},
		},
	}))
	r.GET("/api/v1/limited", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	resp1 := httptest.NewRecorder()
	r.ServeHTTP(resp1, httptest.NewRequest(http.MethodGet, "/api/v1/limited", nil))
	if resp1.Code != http.StatusOK {
		t.Fatalf("expected first request 200, got %d", resp1.Code)
	}

	resp2 := httptest.NewRecorder()
	r.ServeHTTP(resp2, httptest.NewRequest(http.MethodGet, "/api/v1/limited", nil))
	if resp2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp2.Code)
	}
	if resp2.Header().Get("Retry-After") != "1" {
		t.Fatalf("expected Retry-After 1, got %q", resp2.Header().Get("Retry-After"))
	}

	var payload struct {
		Error struct {
			Code    string         `json:"code"`
			Message string         `json:"message"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "rate_limited" || payload.Error.Message == "" {
		t.Fatalf("expected rate_limited error body, got %+v", payload.Error)
	}
	if _, ok := payload.Error.Details["retryAfterMs"]; !ok {
		t.Fatalf("expected retryAfterMs in details")
	}
}

func TestRateLimiterRefillsOverTime(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if ok, _ := limiter.Allow("k", rule); !ok {
		t.Fatalf("expected first allow")
	}
	if ok, wait := limiter.Allow("k", rule); ok || wait <= 0 {
		t.Fatalf("expected denial with wait, got ok=%v wait=%s", ok, wait)
	}
	now = now.Add(time.Second)
	if ok, _ := limiter.Allow("k", rule); !ok {
		t.Fatalf("expected allow after refill")
	}
}

func TestRateLimiterEvictsIdleLimiters(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	limiter.Allow("guest:a|DEFAULT", rule)
	limiter.Allow("guest:b|DEFAULT", rule)
	if got := limiter.Len(); got != 2 {
		t.Fatalf("expected 2 limiters, got %d", got)
	}

	now = now.Add(limiterIdleTTL + time.Second)
	limiter.Allow("guest:c|DEFAULT", rule)
	if got := limiter.Len(); got != 1 {
		t.Fatalf("expected idle limiters evicted, got %d", got)
	}
}
