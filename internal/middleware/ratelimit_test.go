package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joyal-jij0/shl/internal/config"
)

func limiterConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       60,
		RefillTokens:   1,
		RefillInterval: time.Second,
		TTL:            10 * time.Minute,
		Prefix:         "rl",
	}
}

func TestNewTokenBucketNilClientPassThrough(t *testing.T) {
	rec := invoke(t, NewTokenBucket(limiterConfig(), nil), "/api/v1/products")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("X-RateLimit-Limit"); got != "" {
		t.Errorf("X-RateLimit-Limit = %q, want unset without redis", got)
	}
}

func TestNewTokenBucketDisabledPassThrough(t *testing.T) {
	cfg := limiterConfig()
	cfg.Enabled = false
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})

	rec := invoke(t, NewTokenBucket(cfg, rdb), "/api/v1/products")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("X-RateLimit-Limit"); got != "" {
		t.Errorf("X-RateLimit-Limit = %q, want unset when disabled", got)
	}
}

func TestNewTokenBucketFailsOpenOnRedisError(t *testing.T) {
	// Port 1 refuses connections immediately, so the script errors and
	// the limiter must let the request through unlimited.
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:1", DialTimeout: 100 * time.Millisecond})

	rec := invoke(t, NewTokenBucket(limiterConfig(), rdb), "/api/v1/products")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 when redis is unreachable", rec.Code)
	}
	if got := rec.Header().Get("X-RateLimit-Limit"); got != "" {
		t.Errorf("X-RateLimit-Limit = %q, want unset on redis error", got)
	}
}

func TestAsInt64(t *testing.T) {
	for _, tc := range []struct {
		in   interface{}
		want int64
	}{
		{int64(7), 7},
		{3, 3},
		{"42", 42},
		{"not a number", 0},
		{nil, 0},
		{1.5, 0},
	} {
		if got := asInt64(tc.in); got != tc.want {
			t.Errorf("asInt64(%#v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
