package goquery

import (
	"context"
	"fmt"
	"net/url"

	"github.com/SirDavvie/wikrawler"
)

// Default site locations.
const (
	DefaultBaseURL      = "https://en.wiktionary.org"
	DefaultStartLocator = "/wiki/Index:English/0"
)

var _ wikrawler.DocumentSource = (*Source)(nil)

// Source fetches pages relative to a base URL and parses them.
type Source struct {
	fetcher      wikrawler.Fetcher
	parser       wikrawler.Parser
	baseURL      string
	startLocator string
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithBaseURL sets the site root that locators are resolved against.
func WithBaseURL(baseURL string) SourceOption {
	return func(s *Source) {
		s.baseURL = baseURL
	}
}

// WithStartLocator sets the locator of the start document.
func WithStartLocator(locator string) SourceOption {
	return func(s *Source) {
		s.startLocator = locator
	}
}

// WithParser replaces the default goquery parser.
func WithParser(p wikrawler.Parser) SourceOption {
	return func(s *Source) {
		s.parser = p
	}
}

// NewSource creates a Source reading through fetcher.
func NewSource(fetcher wikrawler.Fetcher, opts ...SourceOption) *Source {
	s := &Source{
		fetcher:      fetcher,
		parser:       NewParser(),
		baseURL:      DefaultBaseURL,
		startLocator: DefaultStartLocator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) StartLocator() string {
	return s.startLocator
}

func (s *Source) FetchStart(ctx context.Context) (wikrawler.Node, error) {
	return s.FetchRelative(ctx, s.startLocator)
}

// FetchRelative resolves locator against the base URL, fetches and parses it.
func (s *Source) FetchRelative(ctx context.Context, locator string) (wikrawler.Node, error) {
	u, err := s.ResolveURL(locator)
	if err != nil {
		return nil, err
	}

	body, err := s.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}

	return s.parser.Parse(body)
}

// ResolveURL returns the absolute URL of locator.
func (s *Source) ResolveURL(locator string) (string, error) {
	base, err := url.Parse(s.baseURL)
	if err != nil {
		return "", wikrawler.Errorf(wikrawler.EINVALID, "invalid base URL: %v", err)
	}
	ref, err := url.Parse(locator)
	if err != nil {
		return "", wikrawler.Errorf(wikrawler.EINVALID, "invalid locator %q: %v", locator, err)
	}
	return base.ResolveReference(ref).String(), nil
}
