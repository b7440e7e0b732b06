package middleware

import (
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"gym-booking/internal/handler/httperr"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

const (
	defaultBurst   = 5
	defaultIdleTTL = 10 * time.Minute
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than the idle TTL are swept on a later request.
type RateLimiter struct {
	buckets   sync.Map // client IP -> *clientBucket
	cfg       config.RateLimitConfig
	clock     clock.Clock
	idleTTL   time.Duration
	lastSweep atomic.Int64
}

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *RateLimiter {
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}
	ttl := cfg.IdleTTL
	if ttl <= 0 {
		ttl = defaultIdleTTL
	}
	// a dropped bucket comes back full, so never drop one that could still be refilling
	if cfg.RPS > 0 {
		if refill := time.Duration(float64(cfg.Burst) / cfg.RPS * float64(time.Second)); refill > ttl {
			ttl = refill
		}
	}

	l := &RateLimiter{cfg: cfg, clock: clk, idleTTL: ttl}
	l.lastSweep.Store(clk.Now().UnixNano())
	return l
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.cfg.Enabled {
			c.Next()
			return
		}
		if !l.getLimiter(c.ClientIP()).Allow() {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}

// Clients reports how many client buckets are currently tracked.
func (l *RateLimiter) Clients() int {
	n := 0
	l.buckets.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := l.clock.Now().UnixNano()
	l.sweep(now)

	if v, ok := l.buckets.Load(key); ok {
		b := v.(*clientBucket)
		b.lastSeen.Store(now)
		return b.limiter
	}

	fresh := &clientBucket{limiter: rate.NewLimiter(rate.Limit(l.cfg.RPS), l.cfg.Burst)}
	actual, _ := l.buckets.LoadOrStore(key, fresh)
	b := actual.(*clientBucket)
	b.lastSeen.Store(now)
	return b.limiter
}

// sweep runs at most once per idle TTL; the CAS elects a single sweeper.
func (l *RateLimiter) sweep(now int64) {
	last := l.lastSweep.Load()
	if now-last < int64(l.idleTTL) || !l.lastSweep.CompareAndSwap(last, now) {
		return
	}

	cutoff := now - int64(l.idleTTL)
	l.buckets.Range(func(key, v any) bool {
		if v.(*clientBucket).lastSeen.Load() < cutoff {
			l.buckets.Delete(key)
		}
		return true
	})
}
