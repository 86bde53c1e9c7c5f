package adapter

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultQuota is the authenticated hourly request quota of the host.
	DefaultQuota = 5000

	// MinBuffer is the number of remaining requests kept in reserve; below it
	// callers wait for the quota reset.
	MinBuffer = 50

	HeaderRateLimit     = "X-RateLimit-Limit"
	HeaderRateRemaining = "X-RateLimit-Remaining"
	HeaderRateReset     = "X-RateLimit-Reset"
)

// RateLimiter throttles outbound requests with a token bucket and pauses
// when the quota reported by the host runs low. It is shared by all users'
// sync runs.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int
	limit     int
	resetTime time.Time

	bucket    *rate.Limiter
	minBuffer int
}

// NewRateLimiter creates a limiter allowing perSecond requests with a burst
// of one.
func NewRateLimiter(perSecond float64) *RateLimiter {
	return &RateLimiter{
		remaining: DefaultQuota,
		limit:     DefaultQuota,
		bucket:    rate.NewLimiter(rate.Limit(perSecond), 1),
		minBuffer: MinBuffer,
	}
}

// Wait blocks until a request may be sent or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	remaining := r.remaining
	resetTime := r.resetTime
	r.mu.Unlock()

	if remaining >= r.minBuffer || !time.Now().Before(resetTime) {
		return nil
	}

	timer := time.NewTimer(time.Until(resetTime))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// UpdateFromResponse records the quota headers of resp.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if v, err := strconv.Atoi(resp.Header.Get(HeaderRateRemaining)); err == nil {
		r.remaining = v
	}
	if v, err := strconv.Atoi(resp.Header.Get(HeaderRateLimit)); err == nil {
		r.limit = v
	}
	if v, err := strconv.ParseInt(resp.Header.Get(HeaderRateReset), 10, 64); err == nil {
		r.resetTime = time.Unix(v, 0)
	}
}

// Remaining returns the last reported number of remaining requests.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// Limit returns the last reported quota.
func (r *RateLimiter) Limit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit
}
