package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	sq "github.com/Masterminds/squirrel"
	"github.com/SirDavvie/wikrawler"
)

// Table defaults.
const (
	DefaultTable     = "wiktionary"
	DefaultBatchSize = 100
)

// Column names of the entry table.
const (
	colKey          = "word_key"
	colWord         = "word"
	colPartOfSpeech = "part_of_speech"
	colDefinitions  = "definitions"
	colURL          = "word_url"
)

var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Compile-time interface verification.
var (
	_ wikrawler.Sink        = (*Sink)(nil)
	_ wikrawler.EntryReader = (*Sink)(nil)
)

// Sink stores entries in a SQLite table.
type Sink struct {
	db        *DB
	table     string
	batchSize int
}

// Option configures a Sink.
type Option func(*Sink)

// WithTable sets the table name.
func WithTable(name string) Option {
	return func(s *Sink) {
		s.table = name
	}
}

// WithBatchSize sets the maximum rows per INSERT statement.
func WithBatchSize(n int) Option {
	return func(s *Sink) {
		s.batchSize = n
	}
}

// NewSink creates a new Sink.
func NewSink(db *DB, opts ...Option) *Sink {
	s := &Sink{
		db:        db,
		table:     DefaultTable,
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sink) validate() error {
	if !tableNameRe.MatchString(s.table) {
		return wikrawler.Errorf(wikrawler.EINVALID, "invalid table name %q", s.table)
	}
	if s.batchSize < 1 {
		return wikrawler.Errorf(wikrawler.EINVALID, "batch size must be positive")
	}
	return nil
}

func (s *Sink) Exists(ctx context.Context) (bool, error) {
	if err := s.validate(); err != nil {
		return false, err
	}
	query, args, err := sq.Select("COUNT(*)").
		From("sqlite_master").
		Where(sq.Eq{"type": "table", "name": s.table}).
		ToSql()
	if err != nil {
		return false, err
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Sink) Delete(ctx context.Context) error {
	if err := s.validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+s.table)
	return err
}

func (s *Sink) Create(ctx context.Context) error {
	exists, err := s.Exists(ctx)
	if err != nil {
		return err
	} else if exists {
		return wikrawler.Errorf(wikrawler.ECONFLICT, "table %s already exists", s.table)
	}

	_, err = s.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE %s (
			%s INTEGER PRIMARY KEY AUTOINCREMENT,
			%s VARCHAR(200) NOT NULL,
			%s VARCHAR(100) NOT NULL,
			%s TEXT NOT NULL,
			%s VARCHAR(500) NOT NULL
		)`, s.table, colKey, colWord, colPartOfSpeech, colDefinitions, colURL))
	return err
}

// WriteBatch inserts entries in one transaction, using multi-row INSERT
// statements of at most the configured batch size.
func (s *Sink) WriteBatch(ctx context.Context, entries []*wikrawler.DictionaryEntry) error {
	exists, err := s.Exists(ctx)
	if err != nil {
		return err
	} else if !exists {
		return wikrawler.Errorf(wikrawler.ENOTFOUND, "table %s not created", s.table)
	}
	if len(entries) == 0 {
		return nil
	}

	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, chunk := range wikrawler.ChunkEntries(entries, s.batchSize) {
			query, args, err := InsertQuery(s.table, chunk).ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert %d entries: %w", len(chunk), err)
			}
		}
		return nil
	})
}

// ReadEntries returns all entries in insertion order.
func (s *Sink) ReadEntries(ctx context.Context) ([]*wikrawler.DictionaryEntry, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	query, args, err := sq.Select(colWord, colPartOfSpeech, colDefinitions, colURL).
		From(s.table).
		OrderBy(colKey).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
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
	return entries, rows.Err()
}

// InsertQuery builds one multi-row INSERT for entries.
func InsertQuery(table string, entries []*wikrawler.DictionaryEntry) sq.InsertBuilder {
	b := sq.Insert(table).Columns(colWord, colPartOfSpeech, colDefinitions, colURL)
	for _, e := range entries {
		b = b.Values(e.Word, e.PartOfSpeech.Name(), e.Definitions, e.URL)
	}
	return b
}
