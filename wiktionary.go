package wikrawler

import "context"

// Enumerator lists the pages and word candidates of the dictionary site.
type Enumerator interface {
	// ListIndexPages returns the index page locators linked from the start
	// document, with startLocator appended last.
	ListIndexPages(start Node, startLocator string) []string

	// ListWordEntries returns the word candidates of an index page.
	// The bool result is false if the page has no word list.
	ListWordEntries(page Node) ([]WordLink, bool)
}

// DefinitionExtractor extracts the definitions of one word page.
type DefinitionExtractor interface {
	// ExtractDefinitions returns one Definition per part of speech found at
	// url, in order of first appearance. A nil result means nothing usable.
	ExtractDefinitions(ctx context.Context, url string) ([]Definition, error)
}
