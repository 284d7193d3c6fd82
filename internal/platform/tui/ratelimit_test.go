package tui

import (
	"testing"
	"time"
)

func newTestLimiter(perMinute float64, burst int) (*SessionLimiter, *time.Time) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewSessionLimiter(RateLimitConfig{
		SessionsPerMinute: perMinute,
		Burst:             burst,
		CleanupInterval:   time.Minute,
	})
	l.now = func() time.Time { return now }
	return l, &now
}

func TestSessionLimiterBurst(t *testing.T) {
	l, _ := newTestLimiter(6, 2)
	defer l.Stop()

	if !l.Allow("10.0.0.1:5000") || !l.Allow("10.0.0.1:5001") {
		t.Fatal("burst sessions should be allowed")
	}
	if l.Allow("10.0.0.1:5002") {
		t.Error("third session should be refused, the port must not matter")
	}
	if !l.Allow("10.0.0.2:5000") {
		t.Error("other addresses have their own budget")
	}
}

func TestSessionLimiterRefills(t *testing.T) {
	l, now := newTestLimiter(6, 1)
	defer l.Stop()

	if !l.Allow("10.0.0.1:1") {
		t.Fatal("first session should be allowed")
	}
	if l.Allow("10.0.0.1:1") {
		t.Fatal("second session should be refused")
	}

	*now = now.Add(11 * time.Second) // 6 per minute = one every 10s
	if !l.Allow("10.0.0.1:1") {
		t.Error("token should refill after 10s")
	}
}

func TestSessionLimiterCleanup(t *testing.T) {
	l, now := newTestLimiter(6, 1)
	defer l.Stop()

	l.Allow("10.0.0.1:1")
	*now = now.Add(3 * time.Minute)
	l.cleanup()

	if _, ok := l.limiters.Load("10.0.0.1"); ok {
		t.Error("idle limiter should be dropped")
	}
	if !l.Allow("10.0.0.1:1") {
		t.Error("a dropped limiter starts with a full bucket")
	}
}

func TestHostOf(t *testing.T) {
	tests := []struct{ in, want string }{
		{"10.0.0.1:22", "10.0.0.1"},
		{"[::1]:22", "::1"},
		{"pipe", "pipe"},
	}
	for _, tc := range tests {
		if got := hostOf(tc.in); got != tc.want {
			t.Errorf("hostOf(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
