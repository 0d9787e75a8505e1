package wikrawler

import "context"

// Sink persists batches of dictionary entries.
type Sink interface {
	// Exists reports whether the underlying file or table is present.
	Exists(ctx context.Context) (bool, error)

	// Delete removes the file or table. Deleting a missing sink is not an error.
	Delete(ctx context.Context) error

	// Create prepares an empty file or table.
	// Returns ECONFLICT if the sink already exists.
	Create(ctx context.Context) error

	// WriteBatch appends entries in order.
	// Returns ENOTFOUND if the sink has not been created.
	WriteBatch(ctx context.Context, entries []*DictionaryEntry) error
}

// EntryReader reads back entries previously written to a sink.
type EntryReader interface {
	ReadEntries(ctx context.Context) ([]*DictionaryEntry, error)
}
