package wiktionary

import (
	"context"
	"strconv"
	"strings"

	"github.com/SirDavvie/wikrawler"
)

// RedlinkMarker appears in locators of pages that do not exist.
const RedlinkMarker = "redlink"

// Extractor fetches word pages and extracts their definitions.
type Extractor struct {
	source wikrawler.DocumentSource
}

// NewExtractor creates an Extractor reading word pages from source.
func NewExtractor(source wikrawler.DocumentSource) *Extractor {
	return &Extractor{source: source}
}

// ExtractDefinitions fetches the word page at url and returns its definitions.
// A redlink url returns nil without fetching. Fetch errors are returned as-is.
func (e *Extractor) ExtractDefinitions(ctx context.Context, url string) ([]wikrawler.Definition, error) {
	if strings.Contains(url, RedlinkMarker) {
		return nil, nil
	}

	doc, err := e.source.FetchRelative(ctx, url)
	if err != nil {
		return nil, err
	}
	return Definitions(doc), nil
}

// Definitions extracts the numbered definitions of each part of speech on a
// word page, in order of first appearance.
//
// Each definition list (<ol>) directly under the content container belongs to
// the heading two elements before it; a paragraph with the headword sits in
// between. Lists whose heading is not a catalog name are skipped, which also
// drops non-part-of-speech sections. Lists sharing a part of speech, e.g. from
// separate etymologies, are merged and numbered together.
func Definitions(doc wikrawler.Node) []wikrawler.Definition {
	if doc == nil {
		return nil
	}
	containers := doc.Select(ContentSelector)
	if len(containers) == 0 {
		return nil
	}

	var order []wikrawler.PartOfSpeech
	items := make(map[wikrawler.PartOfSpeech][]string)
	for _, list := range containers[0].Children("ol") {
		pos, ok := listPartOfSpeech(list)
		if !ok {
			continue
		}
		if _, seen := items[pos]; !seen {
			order = append(order, pos)
			items[pos] = nil
		}
		for _, li := range list.Children("li") {
			items[pos] = append(items[pos], itemText(li))
		}
	}

	defs := make([]wikrawler.Definition, 0, len(order))
	for _, pos := range order {
		defs = append(defs, wikrawler.Definition{PartOfSpeech: pos, Text: Number(items[pos])})
	}
	return defs
}

func listPartOfSpeech(list wikrawler.Node) (wikrawler.PartOfSpeech, bool) {
	prev := list.PrevElement()
	if prev == nil {
		return 0, false
	}
	heading := prev.PrevElement()
	if heading == nil {
		return 0, false
	}
	return wikrawler.PartOfSpeechByName(HeadingLabel(heading.Text()))
}

// HeadingLabel strips the "[edit]" suffix from a section heading.
func HeadingLabel(text string) string {
	if i := strings.Index(text, "["); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

func itemText(li wikrawler.Node) string {
	var b strings.Builder
	for _, c := range li.ChildNodes() {
		b.WriteString(c.Text())
	}
	return b.String()
}

// Number renders items as "1.) a2.) b...", with no separator.
func Number(items []string) string {
	var b strings.Builder
	for i, s := range items {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(".) ")
		b.WriteString(s)
	}
	return b.String()
}
