package httpmiddleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serve(h http.Handler, prepare func(r *http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if prepare != nil {
		prepare(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func fromAddr(addr string) func(*http.Request) {
	return func(r *http.Request) { r.RemoteAddr = addr }
}

func TestRateLimit_UnderLimit(t *testing.T) {
	h := RateLimit(RateLimitConfig{Max: 3, Window: time.Minute})(okHandler())

	for i, want := range []string{"2", "1", "0"} {
		rec := serve(h, fromAddr("192.168.1.1:12345"))
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, want, rec.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimit_OverLimit(t *testing.T) {
	h := RateLimit(RateLimitConfig{Max: 2, Window: time.Minute})(okHandler())
	for range 2 {
		require.Equal(t, http.StatusOK, serve(h, fromAddr("10.0.0.1:9999")).Code)
	}

	rec := serve(h, fromAddr("10.0.0.1:9999"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, http.StatusTooManyRequests, body.Code)
	assert.Equal(t, "rate limit exceeded", body.Message)
}

func TestRateLimit_Keys(t *testing.T) {
	t.Run("RemoteAddr", func(t *testing.T) {
		h := RateLimit(RateLimitConfig{Max: 1, Window: time.Minute})(okHandler())
		assert.Equal(t, http.StatusOK, serve(h, fromAddr("10.0.0.1:1234")).Code)
		assert.Equal(t, http.StatusOK, serve(h, fromAddr("10.0.0.2:1234")).Code)
		// Port does not matter.
		assert.Equal(t, http.StatusTooManyRequests, serve(h, fromAddr("10.0.0.1:5678")).Code)
	})
	t.Run("XForwardedFor", func(t *testing.T) {
		h := RateLimit(RateLimitConfig{Max: 1, Window: time.Minute})(okHandler())
		forwarded := func(addr string) func(*http.Request) {
			return func(r *http.Request) {
				r.RemoteAddr = addr
				r.Header.Set("X-Forwarded-For", "203.0.113.50, 70.41.3.18")
			}
		}
		assert.Equal(t, http.StatusOK, serve(h, forwarded("192.168.1.1:4444")).Code)
		assert.Equal(t, http.StatusTooManyRequests, serve(h, forwarded("192.168.1.2:5555")).Code)
	})
	t.Run("Custom", func(t *testing.T) {
		h := RateLimit(RateLimitConfig{
			Max:    1,
			Window: time.Minute,
			KeyFunc: func(r *http.Request) string {
				return r.Header.Get("X-User")
			},
		})(okHandler())
		user := func(id string) func(*http.Request) {
			return func(r *http.Request) { r.Header.Set("X-User", id) }
		}
		assert.Equal(t, http.StatusOK, serve(h, user("a")).Code)
		assert.Equal(t, http.StatusTooManyRequests, serve(h, user("a")).Code)
		assert.Equal(t, http.StatusOK, serve(h, user("b")).Code)
	})
}

func TestLimiter_SlidingWindow(t *testing.T) {
	l := newLimiter(RateLimitConfig{Max: 4, Window: time.Minute})
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for range 4 {
		_, _, ok := l.take("k", start)
		require.True(t, ok)
	}
	_, _, ok := l.take("k", start.Add(30*time.Second))
	require.False(t, ok)

	// Halfway into the next window half of the previous count still applies.
	now := start.Add(90 * time.Second)
	remaining, reset, ok := l.take("k", now)
	require.True(t, ok)
	assert.Equal(t, 1, remaining)
	assert.Equal(t, start.Add(2*time.Minute), reset)
	_, _, ok = l.take("k", now)
	require.True(t, ok)
	_, _, ok = l.take("k", now)
	require.False(t, ok)

	// Two idle windows reset the key.
	remaining, _, ok = l.take("k", start.Add(5*time.Minute))
	require.True(t, ok)
	assert.Equal(t, 3, remaining)
}

func TestLimiter_Evict(t *testing.T) {
	l := newLimiter(RateLimitConfig{Max: 1, Window: time.Minute})
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.take("old", start)
	l.take("new", start.Add(2*time.Minute))

	l.evict(start.Add(2*time.Minute + time.Second))

	assert.NotContains(t, l.windows, "old")
	assert.Contains(t, l.windows, "new")
}
