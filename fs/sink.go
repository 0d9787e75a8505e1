// Package fs provides a file-based sink that stores entries as
// pipe-delimited lines.
package fs

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SirDavvie/wikrawler"
)

// DefaultFileName is the name of the file written when no path is configured.
const DefaultFileName = "wiktionary.txt"

// DefaultRetryInterval is the wait between attempts when the file is locked.
const DefaultRetryInterval = 10 * time.Second

// Header layout. The first line of every file is HeaderPrefix, the creation
// time in RFC 1123 format, HeaderColumnsSep and Columns.
const (
	HeaderPrefix     = "Wiktionary retrieved on: "
	HeaderColumnsSep = "; columns: "
	Columns          = "Word|Part Of Speech|Definitions|Word Url"
)

const fieldSep = "|"

// maxLineSize bounds a single record; definition lists of long entries can
// exceed bufio's 64 KiB default.
const maxLineSize = 16 << 20

// OpenFileFunc opens a file like os.OpenFile.
type OpenFileFunc func(name string, flag int, perm os.FileMode) (*os.File, error)

// Ensure Sink implements wikrawler.Sink and wikrawler.EntryReader at compile time.
var (
	_ wikrawler.Sink        = (*Sink)(nil)
	_ wikrawler.EntryReader = (*Sink)(nil)
)

// Sink writes entries to a pipe-delimited text file.
type Sink struct {
	path          string
	retryInterval time.Duration
	now           func() time.Time
	openFile      OpenFileFunc
}

// Option configures a Sink.
type Option func(*Sink)

// WithRetryInterval sets the wait between write attempts on a locked file.
func WithRetryInterval(d time.Duration) Option {
	return func(s *Sink) {
		s.retryInterval = d
	}
}

// WithNow sets the clock used for the header timestamp.
func WithNow(now func() time.Time) Option {
	return func(s *Sink) {
		s.now = now
	}
}

// WithOpenFile replaces os.OpenFile for appends.
func WithOpenFile(fn OpenFileFunc) Option {
	return func(s *Sink) {
		s.openFile = fn
	}
}

// NewSink creates a Sink for the file at path.
func NewSink(path string, opts ...Option) *Sink {
	s := &Sink{
		path:          path,
		retryInterval: DefaultRetryInterval,
		now:           time.Now,
		openFile:      os.OpenFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file path.
func (s *Sink) Path() string {
	return s.path
}

func (s *Sink) Exists(_ context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (s *Sink) Delete(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Sink) Create(_ context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if errors.Is(err, os.ErrExist) {
		return wikrawler.Errorf(wikrawler.ECONFLICT, "file %s already exists", s.path)
	} else if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(Header(s.now()) + "\n"); err != nil {
		return err
	}
	return f.Close()
}

// WriteBatch appends one line per entry. While the file is locked by another
// process it waits the retry interval and tries again until ctx is done.
func (s *Sink) WriteBatch(ctx context.Context, entries []*wikrawler.DictionaryEntry) error {
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(FormatLine(e))
		buf.WriteByte('\n')
	}

	for {
		err := s.appendBytes(buf.Bytes())
		if !IsContention(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.retryInterval):
		}
	}
}

func (s *Sink) appendBytes(b []byte) error {
	f, err := s.openFile(s.path, os.O_APPEND|os.O_WRONLY, 0)
	if errors.Is(err, os.ErrNotExist) {
		return wikrawler.Errorf(wikrawler.ENOTFOUND, "file %s not created", s.path)
	} else if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(b); err != nil {
		return err
	}
	return f.Close()
}

// ReadEntries parses every record in the file, skipping the header and
// blank lines.
func (s *Sink) ReadEntries(_ context.Context) ([]*wikrawler.DictionaryEntry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, wikrawler.Errorf(wikrawler.ENOTFOUND, "file %s not found", s.path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var entries []*wikrawler.DictionaryEntry
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if line == "" || (n == 1 && strings.HasPrefix(line, HeaderPrefix)) {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			return nil, wikrawler.Errorf(wikrawler.EINVALID, "%s line %d: %s", s.path, n, wikrawler.ErrorMessage(err))
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return entries, nil
}

// Header returns the first line of a file created at t.
func Header(t time.Time) string {
	return HeaderPrefix + t.UTC().Format(time.RFC1123) + HeaderColumnsSep + Columns
}

// FormatLine renders an entry as "word|part of speech|definitions|url".
func FormatLine(e *wikrawler.DictionaryEntry) string {
	return strings.Join([]string{
		sanitize(e.Word),
		e.PartOfSpeech.Name(),
		sanitize(e.Definitions),
		sanitize(e.URL),
	}, fieldSep)
}

// ParseLine parses a line written by FormatLine.
func ParseLine(line string) (*wikrawler.DictionaryEntry, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != 4 {
		return nil, wikrawler.Errorf(wikrawler.EINVALID, "expected 4 fields, got %d", len(fields))
	}
	pos, ok := wikrawler.PartOfSpeechByName(fields[1])
	if !ok {
		return nil, wikrawler.Errorf(wikrawler.EINVALID, "unknown part of speech %q", fields[1])
	}
	return &wikrawler.DictionaryEntry{
		Word:         fields[0],
		PartOfSpeech: pos,
		Definitions:  fields[2],
		URL:          fields[3],
	}, nil
}

var fieldReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", fieldSep, "/")

func sanitize(s string) string {
	return fieldReplacer.Replace(s)
}
