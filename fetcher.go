package wikrawler

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch returns the HTML body served at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DocumentSource returns parsed documents from the dictionary site.
type DocumentSource interface {
	// FetchStart returns the document at the start locator.
	FetchStart(ctx context.Context) (Node, error)

	// FetchRelative returns the document at a site-relative locator,
	// such as "/wiki/Index:English/a1" or "/wiki/grice".
	FetchRelative(ctx context.Context, locator string) (Node, error)

	// StartLocator is the relative locator of the start document.
	StartLocator() string
}
