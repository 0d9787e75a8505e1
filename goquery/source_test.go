package goquery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SirDavvie/wikrawler"
	"github.com/SirDavvie/wikrawler/goquery"
	"github.com/SirDavvie/wikrawler/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_FetchRelative(t *testing.T) {
	t.Parallel()

	t.Run("resolves locators against the base URL", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = append(fetched, url)
				return `<html><body><div id="mw-content-text"></div></body></html>`, nil
			},
		}
		source := goquery.NewSource(fetcher, goquery.WithBaseURL("http://en.wiktionary.org"))

		doc, err := source.FetchRelative(context.Background(), "/wiki/Index:English/a1")
		require.NoError(t, err)
		assert.Len(t, doc.Select("div#mw-content-text"), 1)

		_, err = source.FetchStart(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []string{
			"http://en.wiktionary.org/wiki/Index:English/a1",
			"http://en.wiktionary.org/wiki/Index:English/0",
		}, fetched)
	})

	t.Run("uses the configured start locator", func(t *testing.T) {
		t.Parallel()

		source := goquery.NewSource(&mock.Fetcher{}, goquery.WithStartLocator("/wiki/Index:English/a1"))

		assert.Equal(t, "/wiki/Index:English/a1", source.StartLocator())
	})

	t.Run("defaults to the English index", func(t *testing.T) {
		t.Parallel()

		source := goquery.NewSource(&mock.Fetcher{})

		assert.Equal(t, goquery.DefaultStartLocator, source.StartLocator())
		u, err := source.ResolveURL("/wiki/grice")
		require.NoError(t, err)
		assert.Equal(t, "https://en.wiktionary.org/wiki/grice", u)
	})

	t.Run("wraps fetch errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("HTTP 404 for https://en.wiktionary.org/wiki/missing")
			},
		}
		source := goquery.NewSource(fetcher)

		_, err := source.FetchRelative(context.Background(), "/wiki/missing")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})

	t.Run("rejects an invalid base URL", func(t *testing.T) {
		t.Parallel()

		source := goquery.NewSource(&mock.Fetcher{}, goquery.WithBaseURL("http://[::1"))

		_, err := source.FetchRelative(context.Background(), "/wiki/grice")

		assert.Equal(t, wikrawler.EINVALID, wikrawler.ErrorCode(err))
	})
}
