// Package http reads dictionary pages from the live site over plain HTTP.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SirDavvie/wikrawler"
)

// DefaultFetchTimeout bounds a single page request.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the crawler to the site operators.
const DefaultUserAgent = "wikrawler/1.0 (+https://github.com/SirDavvie/wikrawler)"

var _ wikrawler.Fetcher = (*Fetcher)(nil)

// Fetcher is a wikrawler.Fetcher backed by net/http.
type Fetcher struct {
	client    http.Client
	userAgent string
}

type Option func(*Fetcher)

// WithTimeout replaces DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.client.Timeout = d }
}

// WithUserAgent replaces DefaultUserAgent. An empty agent sends Go's default.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    http.Client{Timeout: DefaultFetchTimeout},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the body of a 200 response. A 404 is ENOTFOUND and an
// unparsable URL is EINVALID; any other status is a plain error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", wikrawler.Errorf(wikrawler.EINVALID, "invalid request URL %q", url)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode, url); err != nil {
		return "", err
	}

	page, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(page), nil
}

func checkStatus(code int, url string) error {
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return wikrawler.Errorf(wikrawler.ENOTFOUND, "HTTP 404 for %s", url)
	default:
		return fmt.Errorf("HTTP %d for %s", code, url)
	}
}

func (f *Fetcher) Close() error { return nil }
