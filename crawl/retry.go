package crawl

import (
	"context"
	"time"

	"github.com/SirDavvie/wikrawler"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays attempts fetch once, then once more after each delay,
// until it succeeds or ctx is done. ENOTFOUND and EINVALID errors are
// returned without retrying. The logger, if provided, is called before each
// retry.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if !retryable(err) {
			break
		}

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// retryable reports whether another attempt could change the outcome.
func retryable(err error) bool {
	switch wikrawler.ErrorCode(err) {
	case wikrawler.ENOTFOUND, wikrawler.EINVALID:
		return false
	}
	return true
}

var _ wikrawler.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries failed fetches of the wrapped fetcher.
type RetryFetcher struct {
	next   wikrawler.Fetcher
	delays []time.Duration
	logger LogFunc
}

// NewRetryFetcher wraps next with one retry per delay. A nil delays slice
// uses DefaultRetryDelays.
func NewRetryFetcher(next wikrawler.Fetcher, delays []time.Duration, logger LogFunc) *RetryFetcher {
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return &RetryFetcher{next: next, delays: delays, logger: logger}
}

// RetryDelays returns n backoff delays doubling from one second.
func RetryDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, n)
	d := time.Second
	for range n {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}

func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return FetchWithRetryDelays(ctx, url, f.next.Fetch, f.logger, f.delays)
}

func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
