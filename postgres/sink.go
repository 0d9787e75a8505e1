package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SirDavvie/wikrawler"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DefaultBatchSize is the maximum number of rows per INSERT statement.
const DefaultBatchSize = 100

const (
	colKey          = "word_key"
	colWord         = "word"
	colPartOfSpeech = "part_of_speech"
	colDefinitions  = "definitions"
	colURL          = "word_url"
)

// undefinedTable is the SQLSTATE for a missing relation.
const undefinedTable = "42P01"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Compile-time interface verification.
var (
	_ wikrawler.Sink        = (*Sink)(nil)
	_ wikrawler.EntryReader = (*Sink)(nil)
)

// Sink stores entries in the PostgreSQL table managed by the embedded migrations.
type Sink struct {
	q         Querier
	migrator  SchemaMigrator
	batchSize int
}

// Option configures a Sink.
type Option func(*Sink)

// WithBatchSize sets the maximum rows per INSERT statement.
func WithBatchSize(n int) Option {
	return func(s *Sink) {
		s.batchSize = n
	}
}

// NewSink creates a new Sink.
func NewSink(q Querier, migrator SchemaMigrator, opts ...Option) *Sink {
	s := &Sink{
		q:         q,
		migrator:  migrator,
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sink) Exists(ctx context.Context) (bool, error) {
	var exists bool
	if err := s.q.QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", Table).Scan(&exists); err != nil {
		return false, fmt.Errorf("check table: %w", err)
	}
	return exists, nil
}

// Delete rolls back the migrations and drops any table left behind by a
// schema created outside them.
func (s *Sink) Delete(ctx context.Context) error {
	if err := s.migrator.Down(ctx); err != nil {
		return err
	}
	if _, err := s.q.Exec(ctx, "DROP TABLE IF EXISTS "+Table); err != nil {
		return fmt.Errorf("drop table: %w", err)
	}
	return nil
}

func (s *Sink) Create(ctx context.Context) error {
	exists, err := s.Exists(ctx)
	if err != nil {
		return err
	} else if exists {
		return wikrawler.Errorf(wikrawler.ECONFLICT, "table %s already exists", Table)
	}
	// Reset the recorded version in case the table was dropped by hand.
	if err := s.migrator.Down(ctx); err != nil {
		return err
	}
	return s.migrator.Up(ctx)
}

// WriteBatch queues one multi-row INSERT per chunk of the batch size and
// sends them together inside a transaction.
func (s *Sink) WriteBatch(ctx context.Context, entries []*wikrawler.DictionaryEntry) (err error) {
	if s.batchSize < 1 {
		return wikrawler.Errorf(wikrawler.EINVALID, "batch size must be positive")
	}
	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	chunks := wikrawler.ChunkEntries(entries, s.batchSize)
	for _, chunk := range chunks {
		query, args, err := InsertQuery(chunk).ToSql()
		if err != nil {
			return err
		}
		batch.Queue(query, args...)
	}

	tx, err := s.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := sendBatchExec(ctx, tx, batch, len(chunks)); err != nil {
		return mapError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// sendBatchExec sends batch and checks the result of each of its n statements.
func sendBatchExec(ctx context.Context, tx pgx.Tx, batch *pgx.Batch, n int) error {
	results := tx.SendBatch(ctx, batch)
	for i := 0; i < n; i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return err
		}
	}
	return results.Close()
}

// ReadEntries returns all entries in insertion order.
func (s *Sink) ReadEntries(ctx context.Context) ([]*wikrawler.DictionaryEntry, error) {
	query, args, err := psql.Select(colWord, colPartOfSpeech, colDefinitions, colURL).
		From(Table).
		OrderBy(colKey).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var entries []*wikrawler.DictionaryEntry
	for rows.Next() {
		var word, pos, defs, url string
		if err := rows.Scan(&word, &pos, &defs, &url); err != nil {
			return nil, err
		}
		p, ok := wikrawler.PartOfSpeechByName(pos)
		if !ok {
			return nil, wikrawler.Errorf(wikrawler.EINVALID, "unknown part of speech %q for %q", pos, word)
		}
		entries = append(entries, &wikrawler.DictionaryEntry{
			Word:         word,
			PartOfSpeech: p,
			Definitions:  defs,
			URL:          url,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return entries, nil
}

// InsertQuery builds one multi-row INSERT with numbered placeholders.
func InsertQuery(entries []*wikrawler.DictionaryEntry) sq.InsertBuilder {
	b := psql.Insert(Table).Columns(colWord, colPartOfSpeech, colDefinitions, colURL)
	for _, e := range entries {
		b = b.Values(e.Word, e.PartOfSpeech.Name(), e.Definitions, e.URL)
	}
	return b
}

// mapError converts a missing-table error to ENOTFOUND.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
		return wikrawler.Errorf(wikrawler.ENOTFOUND, "table %s not created", Table)
	}
	return err
}
