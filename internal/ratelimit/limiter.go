// internal/ratelimit/limiter.go
package ratelimit

import (
	"context"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter defines the interface for rate limiting implementations.
//
// Implementations bound the request rate on a per-host basis so a single
// registry is never hit faster than its configured politeness delay.
type RateLimiter interface {
	// Wait blocks until a request for the given URL can proceed.
	// If the context is cancelled before the rate limit allows, an error is returned.
	Wait(ctx context.Context, urlStr string) error

	// SetDelay changes the minimum spacing between requests for a host.
	SetDelay(host string, delay time.Duration)

	// Delay returns the spacing currently enforced for a host.
	Delay(host string) time.Duration
}

// DomainLimiter provides per-domain request spacing using a token bucket
// with a burst of one. A fresh bucket starts empty, so the very first request
// to a host waits a full delay as well.
type DomainLimiter struct {
	limiters map[string]*rate.Limiter
	delays   map[string]time.Duration
	mu       sync.RWMutex
	delay    time.Duration // default spacing for hosts without an override
}

// NewDomainLimiter creates a limiter that spaces requests to each host by delay.
// A non-positive delay disables waiting.
func NewDomainLimiter(delay time.Duration) *DomainLimiter {
	if delay < 0 {
		delay = 0
	}

	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		delays:   make(map[string]time.Duration),
		delay:    delay,
	}
}

// Wait blocks until the request for the given URL can proceed according to rate limits
func (dl *DomainLimiter) Wait(ctx context.Context, urlStr string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	domain := extractDomain(urlStr)
	if domain == "" {
		// Invalid URL, let it proceed (will fail elsewhere)
		return nil
	}

	limiter := dl.getLimiter(domain)
	return limiter.Wait(ctx)
}

// SetDelay updates the spacing for a specific domain
func (dl *DomainLimiter) SetDelay(domain string, delay time.Duration) {
	if delay < 0 {
		delay = 0
	}

	dl.mu.Lock()
	defer dl.mu.Unlock()

	dl.delays[domain] = delay
	if limiter, exists := dl.limiters[domain]; exists {
		limiter.SetLimit(limitFor(delay))
		return
	}
	dl.limiters[domain] = newDrainedLimiter(delay)
}

// Delay returns the spacing enforced for domain
func (dl *DomainLimiter) Delay(domain string) time.Duration {
	dl.mu.RLock()
	defer dl.mu.RUnlock()

	if delay, exists := dl.delays[domain]; exists {
		return delay
	}
	return dl.delay
}

// getLimiter returns or creates a rate limiter for the given domain
func (dl *DomainLimiter) getLimiter(domain string) *rate.Limiter {
	dl.mu.RLock()
	limiter, exists := dl.limiters[domain]
	dl.mu.RUnlock()

	if exists {
		return limiter
	}

	dl.mu.Lock()
	defer dl.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := dl.limiters[domain]; exists {
		return limiter
	}

	limiter = newDrainedLimiter(dl.delay)
	dl.limiters[domain] = limiter

	return limiter
}

// newDrainedLimiter builds a one-token bucket whose token is already spent
func newDrainedLimiter(delay time.Duration) *rate.Limiter {
	limiter := rate.NewLimiter(limitFor(delay), 1)
	if delay > 0 {
		limiter.Allow()
	}
	return limiter
}

func limitFor(delay time.Duration) rate.Limit {
	if delay <= 0 {
		return rate.Inf
	}
	return rate.Every(delay)
}

// extractDomain extracts the domain from a URL string
func extractDomain(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Host
}
