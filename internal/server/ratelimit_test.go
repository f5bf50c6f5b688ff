package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterBurst(t *testing.T) {
	// 60 req/min = 1 req/sec with a burst of 3
	limiter := NewRateLimiter(60, time.Minute, 3, nil)
	defer limiter.Close()

	key := "ip:198.51.100.7"
	for i := range 3 {
		if !limiter.Allow(key) {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	if limiter.Allow(key) {
		t.Error("request beyond burst capacity should be denied")
	}
}

func TestRateLimiterIndependentKeys(t *testing.T) {
	limiter := NewRateLimiter(60, time.Minute, 1, nil)
	defer limiter.Close()

	if !limiter.Allow("ip:10.0.0.1") {
		t.Error("first request for first key should be allowed")
	}
	if !limiter.Allow("ip:10.0.0.2") {
		t.Error("first request for second key should be allowed")
	}
	if limiter.Allow("ip:10.0.0.1") {
		t.Error("second request for exhausted key should be denied")
	}
}

func TestRateLimiterStats(t *testing.T) {
	limiter := NewRateLimiter(120, time.Minute, 5, nil)
	defer limiter.Close()

	limiter.Allow("ip:10.0.0.1")
	limiter.Allow("ip:10.0.0.2")

	stats := limiter.GetStats()
	if stats["active_limiters"] != 2 {
		t.Errorf("active_limiters = %v, want 2", stats["active_limiters"])
	}
	if stats["rate_per_minute"] != 120.0 {
		t.Errorf("rate_per_minute = %v, want 120", stats["rate_per_minute"])
	}
	if stats["burst_capacity"] != 5 {
		t.Errorf("burst_capacity = %v, want 5", stats["burst_capacity"])
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	limiter := NewRateLimiter(60, time.Minute, 3, nil)
	defer limiter.Close()

	limiter.Allow("ip:10.0.0.1")
	limiter.mu.Lock()
	limiter.lastSeen["ip:10.0.0.1"] = time.Now().Add(-time.Hour)
	limiter.mu.Unlock()

	limiter.cleanup(30 * time.Minute)

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	if len(limiter.limiters) != 0 {
		t.Errorf("stale limiter should be evicted, %d remaining", len(limiter.limiters))
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "203.0.113.4:51234",
			want:       "203.0.113.4",
		},
		{
			name:       "x-forwarded-for single",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.9"},
			want:       "198.51.100.9",
		},
		{
			name:       "x-forwarded-for list",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.9, 10.0.0.1"},
			want:       "198.51.100.9",
		},
		{
			name:       "x-forwarded-for invalid falls through to real ip",
			remoteAddr: "10.0.0.1:1234",
			headers: map[string]string{
				"X-Forwarded-For": "not-an-ip",
				"X-Real-IP":       "192.0.2.33",
			},
			want: "192.0.2.33",
		},
		{
			name:       "malformed remote addr returned as is",
			remoteAddr: "bad-addr",
			want:       "bad-addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/score", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := getClientIP(r); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
