// Package fixture provides a wikrawler.DocumentSource backed by Wiktionary
// pages captured in June 2013, for deterministic offline crawls and tests.
//
// Routing follows the page kinds: the start document is the index of index
// pages, any other "/wiki/Index:English/" locator is served the captured "x"
// index page, and every other locator is served the captured word page for
// "grice".
package fixture

import (
	"context"
	"embed"
	"strings"

	"github.com/SirDavvie/wikrawler"
)

//go:embed testdata/*.html
var pages embed.FS

// Captured pages.
const (
	PageStart      = "index_start.html" // links to Index:English/a1 and Index:English/z
	PageIndexX     = "index_x.html"     // 590 listed words, 567 without trailing audio links
	PageIndexSmall = "index_small.html" // X, X11 and x86, plus one item with an audio link
	PageWordGrice  = "word_grice.html"  // Noun (two etymologies and Scots) and Verb
)

// StartLocator is the locator of the captured start page.
const StartLocator = "/wiki/Index:English/0"

const indexPrefix = "/wiki/Index:English/"

// Page returns the raw HTML of a captured page.
func Page(name string) (string, error) {
	b, err := pages.ReadFile("testdata/" + name)
	if err != nil {
		return "", wikrawler.Errorf(wikrawler.ENOTFOUND, "fixture page %q not found", name)
	}
	return string(b), nil
}

// MustPage is like Page but panics on an unknown name.
func MustPage(name string) string {
	s, err := Page(name)
	if err != nil {
		panic(err)
	}
	return s
}

var _ wikrawler.DocumentSource = (*Source)(nil)

// Source serves captured pages by locator.
type Source struct {
	parser    wikrawler.Parser
	indexPage string
	wordPage  string
}

// Option configures a Source.
type Option func(*Source)

// WithIndexPage sets the page served for index locators.
func WithIndexPage(name string) Option {
	return func(s *Source) {
		s.indexPage = name
	}
}

// WithWordPage sets the page served for word locators.
func WithWordPage(name string) Option {
	return func(s *Source) {
		s.wordPage = name
	}
}

// NewSource creates a Source that parses captured pages with parser.
func NewSource(parser wikrawler.Parser, opts ...Option) *Source {
	s := &Source{
		parser:    parser,
		indexPage: PageIndexX,
		wordPage:  PageWordGrice,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) StartLocator() string {
	return StartLocator
}

func (s *Source) FetchStart(ctx context.Context) (wikrawler.Node, error) {
	return s.load(ctx, PageStart)
}

// FetchRelative serves the page for locator. The keys "startDoc", "testPage"
// and "testWord" select a page kind directly.
func (s *Source) FetchRelative(ctx context.Context, locator string) (wikrawler.Node, error) {
	return s.load(ctx, s.Route(locator))
}

// Route returns the name of the page served for locator.
func (s *Source) Route(locator string) string {
	switch {
	case locator == "startDoc":
		return PageStart
	case locator == "testPage":
		return s.indexPage
	case locator == "testWord":
		return s.wordPage
	case strings.Contains(locator, indexPrefix):
		return s.indexPage
	default:
		return s.wordPage
	}
}

func (s *Source) load(ctx context.Context, name string) (wikrawler.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := Page(name)
	if err != nil {
		return nil, err
	}
	return s.parser.Parse(body)
}
