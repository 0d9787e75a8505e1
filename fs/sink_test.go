package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/SirDavvie/wikrawler"
	"github.com/SirDavvie/wikrawler/crawl"
	"github.com/SirDavvie/wikrawler/fixture"
	"github.com/SirDavvie/wikrawler/fs"
	"github.com/SirDavvie/wikrawler/goquery"
	"github.com/SirDavvie/wikrawler/wiktionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time {
	return time.Date(2013, time.June, 20, 12, 0, 0, 0, time.UTC)
}

func newSink(t *testing.T, opts ...fs.Option) *fs.Sink {
	t.Helper()
	opts = append([]fs.Option{fs.WithNow(fixedNow)}, opts...)
	return fs.NewSink(filepath.Join(t.TempDir(), fs.DefaultFileName), opts...)
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
}

func TestSink_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sink := newSink(t)

	exists, err := sink.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, sink.Create(ctx))
	exists, err = sink.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	entries := []*wikrawler.DictionaryEntry{
		{Word: "grice", PartOfSpeech: wikrawler.Noun, Definitions: "1.) a pig", URL: "/wiki/grice"},
		{Word: "grice", PartOfSpeech: wikrawler.Verb, Definitions: "1.) to trainspot", URL: "/wiki/grice"},
	}
	require.NoError(t, sink.WriteBatch(ctx, entries))
	require.NoError(t, sink.WriteBatch(ctx, []*wikrawler.DictionaryEntry{
		{Word: "X11", PartOfSpeech: wikrawler.ProperNoun, Definitions: "1.) X Window System", URL: "/wiki/X11"},
	}))

	assert.Equal(t, []string{
		"Wiktionary retrieved on: Thu, 20 Jun 2013 12:00:00 UTC; columns: Word|Part Of Speech|Definitions|Word Url",
		"grice|Noun|1.) a pig|/wiki/grice",
		"grice|Verb|1.) to trainspot|/wiki/grice",
		"X11|Proper noun|1.) X Window System|/wiki/X11",
	}, readLines(t, sink.Path()))

	got, err := sink.ReadEntries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, entries[0], got[0])
	assert.Equal(t, entries[1], got[1])
	assert.Equal(t, wikrawler.ProperNoun, got[2].PartOfSpeech)

	require.NoError(t, sink.Delete(ctx))
	exists, err = sink.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSink_Create(t *testing.T) {
	t.Parallel()

	t.Run("returns conflict when the file exists", func(t *testing.T) {
		t.Parallel()

		sink := newSink(t)
		require.NoError(t, sink.Create(context.Background()))

		err := sink.Create(context.Background())

		assert.Equal(t, wikrawler.ECONFLICT, wikrawler.ErrorCode(err))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "out.txt")
		sink := fs.NewSink(path)

		require.NoError(t, sink.Create(context.Background()))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})
}

func TestSink_Delete(t *testing.T) {
	t.Parallel()

	sink := newSink(t)

	assert.NoError(t, sink.Delete(context.Background()))
}

func TestSink_WriteBatch(t *testing.T) {
	t.Parallel()

	entry := &wikrawler.DictionaryEntry{Word: "x86", PartOfSpeech: wikrawler.Noun, Definitions: "1.) a family", URL: "/wiki/x86"}

	t.Run("returns not found before create", func(t *testing.T) {
		t.Parallel()

		sink := newSink(t)

		err := sink.WriteBatch(context.Background(), []*wikrawler.DictionaryEntry{entry})

		assert.Equal(t, wikrawler.ENOTFOUND, wikrawler.ErrorCode(err))
	})

	t.Run("keeps one record per line", func(t *testing.T) {
		t.Parallel()

		sink := newSink(t)
		require.NoError(t, sink.Create(context.Background()))

		err := sink.WriteBatch(context.Background(), []*wikrawler.DictionaryEntry{
			{Word: "a|b", PartOfSpeech: wikrawler.Noun, Definitions: "1.) one\nline\r\ntwo", URL: "/wiki/a|b"},
		})

		require.NoError(t, err)
		lines := readLines(t, sink.Path())
		require.Len(t, lines, 2)
		assert.Equal(t, "a/b|Noun|1.) one line two|/wiki/a/b", lines[1])
	})

	t.Run("retries while the file is locked", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32
		sink := newSink(t,
			fs.WithRetryInterval(time.Millisecond),
			fs.WithOpenFile(func(name string, flag int, perm os.FileMode) (*os.File, error) {
				if attempts.Add(1) < 3 {
					return nil, &os.PathError{Op: "open", Path: name, Err: syscall.EAGAIN}
				}
				return os.OpenFile(name, flag, perm)
			}),
		)
		require.NoError(t, sink.Create(context.Background()))

		err := sink.WriteBatch(context.Background(), []*wikrawler.DictionaryEntry{entry})

		require.NoError(t, err)
		assert.Equal(t, int32(3), attempts.Load())
		assert.Len(t, readLines(t, sink.Path()), 2)
	})

	t.Run("gives up when the context is done", func(t *testing.T) {
		t.Parallel()

		sink := newSink(t,
			fs.WithRetryInterval(time.Millisecond),
			fs.WithOpenFile(func(name string, _ int, _ os.FileMode) (*os.File, error) {
				return nil, &os.PathError{Op: "open", Path: name, Err: syscall.EBUSY}
			}),
		)
		require.NoError(t, sink.Create(context.Background()))
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := sink.WriteBatch(ctx, []*wikrawler.DictionaryEntry{entry})

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestSink_ReadEntries(t *testing.T) {
	t.Parallel()

	t.Run("skips blank lines", func(t *testing.T) {
		t.Parallel()

		sink := newSink(t)
		content := fs.Header(fixedNow()) + "\n\nX|Noun|1.) letter|/wiki/X\n\n"
		require.NoError(t, os.WriteFile(sink.Path(), []byte(content), 0644))

		entries, err := sink.ReadEntries(context.Background())

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "X", entries[0].Word)
	})

	t.Run("reports malformed lines with their number", func(t *testing.T) {
		t.Parallel()

		sink := newSink(t)
		content := fs.Header(fixedNow()) + "\nX|Noun|1.) letter|/wiki/X\nX|Gerund|1.) no|/wiki/X\n"
		require.NoError(t, os.WriteFile(sink.Path(), []byte(content), 0644))

		_, err := sink.ReadEntries(context.Background())

		assert.Equal(t, wikrawler.EINVALID, wikrawler.ErrorCode(err))
		assert.Contains(t, wikrawler.ErrorMessage(err), "line 3")
	})

	t.Run("returns not found for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := newSink(t).ReadEntries(context.Background())

		assert.Equal(t, wikrawler.ENOTFOUND, wikrawler.ErrorCode(err))
	})
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	_, err := fs.ParseLine("too|few|fields")
	assert.Equal(t, wikrawler.EINVALID, wikrawler.ErrorCode(err))

	e, err := fs.ParseLine("grice|Verb|1.) to trainspot|/wiki/grice")
	require.NoError(t, err)
	assert.Equal(t, &wikrawler.DictionaryEntry{Word: "grice", PartOfSpeech: wikrawler.Verb, Definitions: "1.) to trainspot", URL: "/wiki/grice"}, e)
}

func TestIsContention(t *testing.T) {
	t.Parallel()

	assert.True(t, fs.IsContention(&os.PathError{Err: syscall.EAGAIN}))
	assert.True(t, fs.IsContention(syscall.EBUSY))
	assert.False(t, fs.IsContention(os.ErrNotExist))
	assert.False(t, fs.IsContention(nil))
}

func TestSink_OfflineCrawl(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sink := newSink(t)
	require.NoError(t, sink.Create(ctx))
	source := fixture.NewSource(goquery.NewParser())
	c := &crawl.Crawler{
		Source:     source,
		Enumerator: wiktionary.NewEnumerator(),
		Extractor:  wiktionary.NewExtractor(source),
		Sink:       sink,
	}

	result, err := c.Run(ctx, nil)

	require.NoError(t, err)
	assert.Equal(t, 3*1134, result.Entries)
	lines := readLines(t, sink.Path())
	assert.Len(t, lines, 3403)
	assert.True(t, strings.HasPrefix(lines[0], fs.HeaderPrefix))

	entries, err := sink.ReadEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3402)
}
