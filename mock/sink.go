package mock

import (
	"context"

	"github.com/SirDavvie/wikrawler"
)

var (
	_ wikrawler.Sink        = (*Sink)(nil)
	_ wikrawler.EntryReader = (*Sink)(nil)
)

// Sink is a mock implementation of wikrawler.Sink and wikrawler.EntryReader.
type Sink struct {
	ExistsFn      func(ctx context.Context) (bool, error)
	DeleteFn      func(ctx context.Context) error
	CreateFn      func(ctx context.Context) error
	WriteBatchFn  func(ctx context.Context, entries []*wikrawler.DictionaryEntry) error
	ReadEntriesFn func(ctx context.Context) ([]*wikrawler.DictionaryEntry, error)
}

func (s *Sink) Exists(ctx context.Context) (bool, error) {
	return s.ExistsFn(ctx)
}

func (s *Sink) Delete(ctx context.Context) error {
	return s.DeleteFn(ctx)
}

func (s *Sink) Create(ctx context.Context) error {
	return s.CreateFn(ctx)
}

func (s *Sink) WriteBatch(ctx context.Context, entries []*wikrawler.DictionaryEntry) error {
	return s.WriteBatchFn(ctx, entries)
}

func (s *Sink) ReadEntries(ctx context.Context) ([]*wikrawler.DictionaryEntry, error) {
	return s.ReadEntriesFn(ctx)
}
