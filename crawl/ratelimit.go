package crawl

import (
	"context"
	"net/url"
	"sync"

	"github.com/SirDavvie/wikrawler"
	"golang.org/x/time/rate"
)

// DomainLimiter provides per-host rate limiting using token buckets.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified requests per second limit.
// Each host gets its own limiter with a burst of 1 (no bursting allowed).
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the host.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[host] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

var _ wikrawler.Fetcher = (*RateLimitedFetcher)(nil)

// RateLimitedFetcher waits on a DomainLimiter before each fetch.
type RateLimitedFetcher struct {
	next    wikrawler.Fetcher
	limiter *DomainLimiter
}

// NewRateLimitedFetcher wraps next, allowing rps requests per second per host.
func NewRateLimitedFetcher(next wikrawler.Fetcher, rps float64) *RateLimitedFetcher {
	return &RateLimitedFetcher{next: next, limiter: NewDomainLimiter(rps)}
}

func (f *RateLimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", wikrawler.Errorf(wikrawler.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if err := f.limiter.Wait(ctx, u.Host); err != nil {
		return "", err
	}
	return f.next.Fetch(ctx, rawURL)
}

func (f *RateLimitedFetcher) Close() error {
	return f.next.Close()
}
