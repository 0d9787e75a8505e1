// Package rod provides a wikrawler.Fetcher that renders pages in headless
// Chrome before returning their HTML.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/SirDavvie/wikrawler"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds one navigation when no timeout is configured.
const DefaultFetchTimeout = 10 * time.Second

var _ wikrawler.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager     *BrowserManager
	timeout     time.Duration
	managerOpts []ManagerOption
	closed      atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout of a single page load.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRecycleAfter recycles the browser after n rendered pages.
func WithRecycleAfter(n int64) Option {
	return func(f *Fetcher) {
		f.managerOpts = append(f.managerOpts, WithMaxPages(n))
	}
}

// NewFetcher launches a headless browser. Close must be called when the
// Fetcher is no longer needed.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(f.managerOpts...)
	if err != nil {
		return nil, err
	}
	f.manager = manager
	return f, nil
}

// Fetch navigates to url and returns the HTML once the page has loaded.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", wikrawler.Errorf(wikrawler.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer func() { _ = page.Close() }()
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}
	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// Close releases browser resources. It is safe to call more than once.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
