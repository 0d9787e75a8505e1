package mock

import (
	"context"

	"github.com/SirDavvie/wikrawler"
)

var _ wikrawler.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of wikrawler.DocumentSource.
type DocumentSource struct {
	FetchStartFn    func(ctx context.Context) (wikrawler.Node, error)
	FetchRelativeFn func(ctx context.Context, locator string) (wikrawler.Node, error)
	StartLocatorFn  func() string
}

func (s *DocumentSource) FetchStart(ctx context.Context) (wikrawler.Node, error) {
	return s.FetchStartFn(ctx)
}

func (s *DocumentSource) FetchRelative(ctx context.Context, locator string) (wikrawler.Node, error) {
	return s.FetchRelativeFn(ctx, locator)
}

func (s *DocumentSource) StartLocator() string {
	return s.StartLocatorFn()
}
