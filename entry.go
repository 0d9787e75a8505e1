package wikrawler

import "fmt"

// DictionaryEntry is one (word, part of speech) pairing extracted from a word page.
type DictionaryEntry struct {
	Word         string       `json:"word"`
	PartOfSpeech PartOfSpeech `json:"partOfSpeech"`
	Definitions  string       `json:"definitions"`
	URL          string       `json:"url"`
}

// EntryKey identifies an entry. Two entries with the same key are duplicates.
type EntryKey struct {
	Word         string
	PartOfSpeech PartOfSpeech
}

// NewDictionaryEntry creates an entry, resolving pos as a code or a name.
// Returns ENOTFOUND if pos is not in the catalog.
func NewDictionaryEntry(word, pos, definitions, url string) (*DictionaryEntry, error) {
	p, err := ParsePartOfSpeech(pos)
	if err != nil {
		return nil, err
	}
	return &DictionaryEntry{
		Word:         word,
		PartOfSpeech: p,
		Definitions:  definitions,
		URL:          url,
	}, nil
}

// Key returns the identity of the entry.
func (e *DictionaryEntry) Key() EntryKey {
	return EntryKey{Word: e.Word, PartOfSpeech: e.PartOfSpeech}
}

// Equal reports whether e and other have the same word and part of speech.
// Definitions and URL are ignored.
func (e *DictionaryEntry) Equal(other *DictionaryEntry) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Key() == other.Key()
}

// String renders the entry as "word (code): definitions Retrieved from: url".
func (e *DictionaryEntry) String() string {
	return fmt.Sprintf("%s (%s): %s Retrieved from: %s", e.Word, e.PartOfSpeech.Code(), e.Definitions, e.URL)
}

// Validate returns an error if the entry contains invalid fields.
func (e *DictionaryEntry) Validate() error {
	if e.Word == "" {
		return Errorf(EINVALID, "entry word required")
	}
	if !e.PartOfSpeech.IsValid() {
		return Errorf(EINVALID, "entry %q has no part of speech", e.Word)
	}
	return nil
}

// Definition holds the rendered, numbered definitions of one part of speech.
type Definition struct {
	PartOfSpeech PartOfSpeech
	Text         string
}

// WordLink is a word candidate taken from an index page listing.
type WordLink struct {
	Word string
	URL  string
}
