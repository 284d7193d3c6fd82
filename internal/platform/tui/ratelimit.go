package tui

import (
	"net"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig configures per-address admission of new sessions.
type RateLimitConfig struct {
	SessionsPerMinute float64       // Sustained new sessions per remote address
	Burst             int           // Sessions allowed back to back
	CleanupInterval   time.Duration // How often idle limiters are dropped
}

// DefaultRateLimitConfig allows a handful of reconnects per minute.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		SessionsPerMinute: 6,
		Burst:             3,
		CleanupInterval:   5 * time.Minute,
	}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// SessionLimiter throttles new sessions per remote IP.
type SessionLimiter struct {
	limiters sync.Map // map[string]*limiterEntry
	config   RateLimitConfig
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewSessionLimiter creates a limiter and starts its cleanup loop.
// Call Stop to end the loop.
func NewSessionLimiter(cfg RateLimitConfig) *SessionLimiter {
	l := &SessionLimiter{
		config: cfg,
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	if cfg.CleanupInterval > 0 {
		go l.cleanupLoop()
	}
	return l
}

// Stop ends the cleanup loop.
func (l *SessionLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Allow reports whether a new session from addr may start.
// addr may carry a port; only the host part is used.
func (l *SessionLimiter) Allow(addr string) bool {
	return l.entry(hostOf(addr)).limiter.AllowN(l.now(), 1)
}

func (l *SessionLimiter) entry(host string) *limiterEntry {
	now := l.now()
	if v, ok := l.limiters.Load(host); ok {
		e := v.(*limiterEntry)
		e.lastSeen.Store(now.UnixNano())
		return e
	}

	e := &limiterEntry{
		limiter: rate.NewLimiter(rate.Limit(l.config.SessionsPerMinute/60), l.config.Burst),
	}
	e.lastSeen.Store(now.UnixNano())
	actual, _ := l.limiters.LoadOrStore(host, e)
	return actual.(*limiterEntry)
}

func (l *SessionLimiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}

// cleanup drops limiters idle for two cleanup intervals.
func (l *SessionLimiter) cleanup() {
	cutoff := l.now().Add(-2 * l.config.CleanupInterval).UnixNano()
	l.limiters.Range(func(key, value any) bool {
		if value.(*limiterEntry).lastSeen.Load() < cutoff {
			l.limiters.Delete(key)
		}
		return true
	})
}

func hostOf(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
