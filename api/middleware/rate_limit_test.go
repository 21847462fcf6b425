package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func hitLimiter(t *testing.T, limiter *RateLimiter, ip string) int {
	t.Helper()

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/login", nil)
	request.Header.Set(echo.HeaderXRealIP, ip)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return recorder.Code
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(rate.Limit(1), 2, time.Minute)
	require.Equal(t, http.StatusOK, hitLimiter(t, limiter, "10.0.0.1"))
	require.Equal(t, http.StatusOK, hitLimiter(t, limiter, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hitLimiter(t, limiter, "10.0.0.1"))
}

func TestRateLimiter_BucketPerIP(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(rate.Limit(1), 1, time.Minute)
	require.Equal(t, http.StatusOK, hitLimiter(t, limiter, "10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, hitLimiter(t, limiter, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hitLimiter(t, limiter, "10.0.0.2"))
}

func TestRateLimiter_DropsIdleBuckets(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(rate.Limit(1), 1, time.Minute)
	require.Equal(t, http.StatusOK, hitLimiter(t, limiter, "10.0.0.1"))

	limiter.mutex.Lock()
	limiter.buckets["10.0.0.1"].lastSeen = time.Now().Add(-2 * time.Minute)
	limiter.mutex.Unlock()

	// A lookup for a new IP sweeps the stale bucket, so the first IP
	// starts over with a full bucket.
	require.Equal(t, http.StatusOK, hitLimiter(t, limiter, "10.0.0.2"))
	assert.Equal(t, http.StatusOK, hitLimiter(t, limiter, "10.0.0.1"))
}

func TestLoginLimiterTighterThanSignup(t *testing.T) {
	t.Parallel()

	signup := NewSignupRateLimiter()
	login := NewLoginRateLimiter()
	assert.Less(t, login.rate, signup.rate)
	assert.Less(t, login.burst, signup.burst)
}
