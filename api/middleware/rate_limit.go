package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const rateLimitMessage = "Muitas requisições. Tente novamente em instantes."

// RateLimiter keeps one token bucket per client IP. Buckets idle for
// longer than ttl are dropped on the next lookup.
type RateLimiter struct {
	mutex   sync.Mutex
	buckets map[string]*ipBucket
	rate    rate.Limit
	burst   int
	ttl     time.Duration
}

type ipBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(r rate.Limit, burst int, ttl time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*ipBucket),
		rate:    r,
		burst:   burst,
		ttl:     ttl,
	}
}

// NewSignupRateLimiter throttles account creation. Sign-ups are
// infrequent per client, so the bucket is generous but short-lived.
func NewSignupRateLimiter() *RateLimiter {
	return NewRateLimiter(rate.Limit(5), 10, 5*time.Minute)
}

// NewLoginRateLimiter throttles login and two-steps code confirmation.
// Tighter than sign-up since these routes guard credentials and the
// six-character code could otherwise be brute-forced.
func NewLoginRateLimiter() *RateLimiter {
	return NewRateLimiter(rate.Limit(2), 4, 10*time.Minute)
}

func (l *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, rateLimitMessage)
			}
			return next(c)
		}
	}
}

func (l *RateLimiter) allow(ip string) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := time.Now()
	bucket, ok := l.buckets[ip]
	if !ok {
		l.cleanup(now)
		bucket = &ipBucket{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.buckets[ip] = bucket
	}
	bucket.lastSeen = now
	return bucket.limiter.Allow()
}

func (l *RateLimiter) cleanup(now time.Time) {
	if l.ttl == 0 {
		return
	}
	cutoff := now.Add(-l.ttl)
	for ip, bucket := range l.buckets {
		if bucket.lastSeen.Before(cutoff) {
			delete(l.buckets, ip)
		}
	}
}
