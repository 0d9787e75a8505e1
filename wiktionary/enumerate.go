// Package wiktionary walks Wiktionary index and word pages. It lists the index
// pages reachable from the start page, the word candidates on each index page,
// and the numbered definitions per part of speech on each word page.
//
// Every function here works on wikrawler.Node and treats missing or unexpected
// markup as "nothing here" rather than as an error.
package wiktionary

import "github.com/SirDavvie/wikrawler"

// Structural paths into Wiktionary pages.
const (
	IndexLinksSelector = "div#mw-content-text > center > p > a[href]"
	WordListSelector   = `div#mw-content-text > div[class="index"] > ol > li`
	ContentSelector    = "div#mw-content-text"
)

// Enumerator lists index pages and word candidates.
type Enumerator struct{}

// NewEnumerator creates a new Enumerator.
func NewEnumerator() *Enumerator {
	return &Enumerator{}
}

// ListIndexPages returns the href of every index link on the start document in
// document order, followed by startLocator. The start page renders its own
// section as plain text, so it never links to itself.
func (e *Enumerator) ListIndexPages(start wikrawler.Node, startLocator string) []string {
	var locators []string
	if start != nil {
		for _, a := range start.Select(IndexLinksSelector) {
			if href, ok := a.Attr("href"); ok {
				locators = append(locators, href)
			}
		}
	}
	return append(locators, startLocator)
}

// ListWordEntries returns the word candidates listed on an index page.
// The bool result is false when the page has no word list at all, which is
// how some failed fetches render; callers skip such pages.
//
// An item whose last child carries attributes is dropped. Clean items end in
// an unattributed <i> with part-of-speech tags; items ending in an audio or
// pronunciation link do not. This is a markup heuristic, not a classifier.
func (e *Enumerator) ListWordEntries(page wikrawler.Node) ([]wikrawler.WordLink, bool) {
	if page == nil {
		return nil, false
	}
	items := page.Select(WordListSelector)
	if len(items) == 0 {
		return nil, false
	}

	links := make([]wikrawler.WordLink, 0, len(items))
	for _, item := range items {
		if link, ok := wordLink(item); ok {
			links = append(links, link)
		}
	}
	return links, true
}

func wordLink(item wikrawler.Node) (wikrawler.WordLink, bool) {
	last := item.LastChild()
	if last == nil || last.HasAttributes() {
		return wikrawler.WordLink{}, false
	}

	first := item.FirstChild()
	href, ok := first.Attr("href")
	if !ok {
		return wikrawler.WordLink{}, false
	}
	return wikrawler.WordLink{Word: first.Text(), URL: href}, true
}
