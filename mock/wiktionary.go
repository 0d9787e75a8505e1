package mock

import (
	"context"

	"github.com/SirDavvie/wikrawler"
)

var (
	_ wikrawler.Enumerator          = (*Enumerator)(nil)
	_ wikrawler.DefinitionExtractor = (*DefinitionExtractor)(nil)
)

// Enumerator is a mock implementation of wikrawler.Enumerator.
type Enumerator struct {
	ListIndexPagesFn  func(start wikrawler.Node, startLocator string) []string
	ListWordEntriesFn func(page wikrawler.Node) ([]wikrawler.WordLink, bool)
}

func (e *Enumerator) ListIndexPages(start wikrawler.Node, startLocator string) []string {
	return e.ListIndexPagesFn(start, startLocator)
}

func (e *Enumerator) ListWordEntries(page wikrawler.Node) ([]wikrawler.WordLink, bool) {
	return e.ListWordEntriesFn(page)
}

// DefinitionExtractor is a mock implementation of wikrawler.DefinitionExtractor.
type DefinitionExtractor struct {
	ExtractDefinitionsFn func(ctx context.Context, url string) ([]wikrawler.Definition, error)
}

func (e *DefinitionExtractor) ExtractDefinitions(ctx context.Context, url string) ([]wikrawler.Definition, error) {
	return e.ExtractDefinitionsFn(ctx, url)
}
