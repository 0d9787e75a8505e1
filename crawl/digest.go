package crawl

import (
	"fmt"

	"github.com/SirDavvie/wikrawler"
	"github.com/cespare/xxhash/v2"
)

// Digest is a running xxhash over written batches. Two runs that wrote the
// same entries in the same order have the same digest.
type Digest struct {
	h *xxhash.Digest
}

// NewDigest creates an empty Digest.
func NewDigest() *Digest {
	return &Digest{h: xxhash.New()}
}

// Add hashes every field of every entry in batch.
func (d *Digest) Add(batch []*wikrawler.DictionaryEntry) {
	for _, e := range batch {
		_, _ = d.h.WriteString(e.Word)
		_, _ = d.h.WriteString("\x1f")
		_, _ = d.h.WriteString(e.PartOfSpeech.Code())
		_, _ = d.h.WriteString("\x1f")
		_, _ = d.h.WriteString(e.Definitions)
		_, _ = d.h.WriteString("\x1f")
		_, _ = d.h.WriteString(e.URL)
		_, _ = d.h.WriteString("\x1e")
	}
}

// String returns the digest as 16 hex digits.
func (d *Digest) String() string {
	return fmt.Sprintf("%016x", d.h.Sum64())
}

// ComputeHash hashes the entries of a single batch.
func ComputeHash(batch []*wikrawler.DictionaryEntry) string {
	d := NewDigest()
	d.Add(batch)
	return d.String()
}
