package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowAndRefill(t *testing.T) {
	now := time.Unix(1000, 0)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 2}

	for i := 0; i < 2; i++ {
		ok, _ := limiter.Allow("u|parse", rule)
		if !ok {
			t.Fatalf("request %d should pass within burst", i)
		}
	}

	ok, retry := limiter.Allow("u|parse", rule)
	if ok {
		t.Fatal("expected limit after burst exhausted")
	}
	if retry <= 0 {
		t.Fatalf("expected positive retry hint, got %v", retry)
	}

	now = now.Add(1500 * time.Millisecond)
	if ok, _ := limiter.Allow("u|parse", rule); !ok {
		t.Fatal("expected token after refill window")
	}
}

func TestRateLimiterIsolatesKeys(t *testing.T) {
	now := time.Unix(1000, 0)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if ok, _ := limiter.Allow("a|parse", rule); !ok {
		t.Fatal("first key should pass")
	}
	if ok, _ := limiter.Allow("b|parse", rule); !ok {
		t.Fatal("second key should have its own bucket")
	}
}
