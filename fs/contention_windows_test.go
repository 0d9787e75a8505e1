//go:build windows

package fs_test

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SirDavvie/wikrawler"
	"github.com/SirDavvie/wikrawler/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestIsContention_Windows(t *testing.T) {
	t.Parallel()

	assert.True(t, fs.IsContention(&os.PathError{Op: "open", Err: windows.ERROR_SHARING_VIOLATION}))
	assert.True(t, fs.IsContention(&os.PathError{Op: "open", Err: windows.ERROR_LOCK_VIOLATION}))
	assert.False(t, fs.IsContention(&os.PathError{Op: "open", Err: windows.ERROR_ACCESS_DENIED}))
}

func TestSink_WriteBatch_RetriesSharingViolation(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	sink := newSink(t,
		fs.WithRetryInterval(time.Millisecond),
		fs.WithOpenFile(func(name string, flag int, perm os.FileMode) (*os.File, error) {
			if attempts.Add(1) < 3 {
				return nil, &os.PathError{Op: "open", Path: name, Err: windows.ERROR_SHARING_VIOLATION}
			}
			return os.OpenFile(name, flag, perm)
		}),
	)
	require.NoError(t, sink.Create(context.Background()))

	err := sink.WriteBatch(context.Background(), []*wikrawler.DictionaryEntry{
		{Word: "grice", PartOfSpeech: wikrawler.Noun, Definitions: "1.) a pig", URL: "/wiki/grice"},
	})

	require.NoError(t, err)
	assert.Equal(t, int32(3), attempts.Load())
	assert.Len(t, readLines(t, sink.Path()), 2)
}
