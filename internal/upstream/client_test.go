package upstream

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelcaster/internal/types"
)

func testRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, MinWait: time.Millisecond, MaxWait: 10 * time.Millisecond}
}

func noSleep(time.Duration) {}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewBaseClient(srv.Client(), "test", testRetryPolicy(), "ReelCaster/test", WithSleepFunc(noSleep))
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDoRetriesOn5xxThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewBaseClient(srv.Client(), "test", testRetryPolicy(), "ReelCaster/test", WithSleepFunc(noSleep))
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, int32(3), calls.Load())
}

func TestDoDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewBaseClient(srv.Client(), "test", testRetryPolicy(), "ReelCaster/test", WithSleepFunc(noSleep))
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)

	resp, err := c.Do(req)
	require.NoError(t, err, "4xx responses return to the caller as-is")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDoMapsExhaustedRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewBaseClient(srv.Client(), "test", testRetryPolicy(), "ReelCaster/test", WithSleepFunc(noSleep))
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)

	_, err := c.Do(req)
	require.Error(t, err)

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeUpstreamUnavailable, appErr.Code)
}

func TestDoMapsRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewBaseClient(srv.Client(), "test", testRetryPolicy(), "ReelCaster/test", WithSleepFunc(noSleep))
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)

	_, err := c.Do(req)
	require.Error(t, err)

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeUpstreamRateLimited, appErr.Code)
	assert.Equal(t, http.StatusTooManyRequests, appErr.HTTPStatus())
}

func TestDoHonorsRetryAfterSeconds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var slept []time.Duration
	c := NewBaseClient(srv.Client(), "test", testRetryPolicy(), "ReelCaster/test",
		WithSleepFunc(func(d time.Duration) { slept = append(slept, d) }))
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Len(t, slept, 1)
	assert.Equal(t, 2*time.Second, slept[0])
}

func TestDoReplaysRequestBodyOnRetry(t *testing.T) {
	var calls atomic.Int32
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(buf))
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewBaseClient(srv.Client(), "test", testRetryPolicy(), "ReelCaster/test", WithSleepFunc(noSleep))
	req, _ := http.NewRequest(http.MethodPost, srv.URL, strings.NewReader(`{"spot":"sooke-bluffs"}`))

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1], "retry must replay the identical body")
}

func TestDoStopsWhenBreakerOpens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	// Trips after a single failure so the retry loop hits the open state.
	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        "trippy",
		MaxRequests: 1,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool { return counts.ConsecutiveFailures >= 1 },
	})

	var calls atomic.Int32
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		calls.Add(1)
		return srv.Client().Transport.RoundTrip(req)
	})}

	c := NewBaseClientWithBreaker(client, cb, testRetryPolicy(), "ReelCaster/test", WithSleepFunc(noSleep))
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)

	_, err := c.Do(req)
	require.Error(t, err)

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeUpstreamRateLimited, appErr.Code)
	assert.Equal(t, int32(1), calls.Load(), "open breaker must short-circuit remaining attempts")
}

func TestDoInjectsTraceAndUserAgent(t *testing.T) {
	var gotTrace, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTrace = r.Header.Get("X-B3-TraceId")
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewBaseClient(srv.Client(), "test", testRetryPolicy(), "ReelCaster/1.0", WithSleepFunc(noSleep))
	ctx := types.WithRequestID(t.Context(), "trace-abc-123")
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-abc-123", gotTrace)
	assert.Equal(t, "ReelCaster/1.0", gotAgent)
}

func TestComputeBackoffClampsToMaxWait(t *testing.T) {
	c := NewBaseClient(http.DefaultClient, "test",
		RetryPolicy{MaxRetries: 10, MinWait: time.Second, MaxWait: 4 * time.Second},
		"", WithSleepFunc(noSleep))

	for attempt := 0; attempt < 10; attempt++ {
		wait := c.computeBackoff(attempt, nil)
		assert.GreaterOrEqual(t, wait, time.Second)
		assert.LessOrEqual(t, wait, 4*time.Second)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }
