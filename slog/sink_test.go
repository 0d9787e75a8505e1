package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/SirDavvie/wikrawler"
	"github.com/SirDavvie/wikrawler/mock"
	wikslog "github.com/SirDavvie/wikrawler/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSink(t *testing.T) {
	t.Parallel()

	t.Run("logs batch writes with count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var written int
		inner := &mock.Sink{
			WriteBatchFn: func(_ context.Context, entries []*wikrawler.DictionaryEntry) error {
				written = len(entries)
				return nil
			},
		}

		sink := wikslog.NewLoggingSink(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		err := sink.WriteBatch(context.Background(), make([]*wikrawler.DictionaryEntry, 3))

		require.NoError(t, err)
		assert.Equal(t, 3, written)
		output := buf.String()
		assert.Contains(t, output, "sink write batch")
		assert.Contains(t, output, "count=3")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs lifecycle errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Sink{
			CreateFn: func(_ context.Context) error {
				return wikrawler.Errorf(wikrawler.ECONFLICT, "table wiktionary already exists")
			},
			DeleteFn: func(_ context.Context) error { return nil },
		}

		sink := wikslog.NewLoggingSink(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		require.Error(t, sink.Create(context.Background()))
		require.NoError(t, sink.Delete(context.Background()))

		output := buf.String()
		assert.Contains(t, output, "sink create")
		assert.Contains(t, output, "already exists")
		assert.Contains(t, output, "sink delete")
	})

	t.Run("logs existence checks at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Sink{
			ExistsFn: func(_ context.Context) (bool, error) { return true, nil },
		}

		sink := wikslog.NewLoggingSink(inner, debugLogger(&buf))
		exists, err := sink.Exists(context.Background())

		require.NoError(t, err)
		assert.True(t, exists)
		assert.Contains(t, buf.String(), "exists=true")
	})
}
