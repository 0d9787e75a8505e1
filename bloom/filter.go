// Package bloom provides approximate (word, part of speech) deduplication
// using Bloom filters.
package bloom

import (
	"github.com/SirDavvie/wikrawler"
	"github.com/bits-and-blooms/bloom/v3"
)

// Filter wraps a Bloom filter keyed by wikrawler.EntryKey.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected keys
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a key to the filter.
func (f *Filter) Add(key wikrawler.EntryKey) {
	f.f.AddString(encode(key))
}

// Test returns true if the key might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(key wikrawler.EntryKey) bool {
	return f.f.TestString(encode(key))
}

// TestAndAdd reports whether the key might already be in the filter, then adds it.
func (f *Filter) TestAndAdd(key wikrawler.EntryKey) bool {
	return f.f.TestAndAddString(encode(key))
}

// EstimatedCount returns the approximate number of keys in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// encode joins the key fields with a unit separator, which cannot occur in
// either field.
func encode(key wikrawler.EntryKey) string {
	return key.Word + "\x1f" + key.PartOfSpeech.Code()
}
