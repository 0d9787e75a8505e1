package fixture_test

import (
	"context"
	"testing"

	"github.com/SirDavvie/wikrawler"
	"github.com/SirDavvie/wikrawler/fixture"
	"github.com/SirDavvie/wikrawler/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingParser returns a parser that records the HTML it was given.
func recordingParser(got *string) *mock.Parser {
	return &mock.Parser{
		ParseFn: func(html string) (wikrawler.Node, error) {
			*got = html
			return &mock.Node{}, nil
		},
	}
}

func TestPage(t *testing.T) {
	t.Parallel()

	t.Run("returns captured pages", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{fixture.PageStart, fixture.PageIndexX, fixture.PageIndexSmall, fixture.PageWordGrice} {
			html, err := fixture.Page(name)
			require.NoError(t, err, name)
			assert.Contains(t, html, `id="mw-content-text"`, name)
		}
	})

	t.Run("returns not found for unknown pages", func(t *testing.T) {
		t.Parallel()

		_, err := fixture.Page("missing.html")

		assert.Equal(t, wikrawler.ENOTFOUND, wikrawler.ErrorCode(err))
	})
}

func TestSource_Route(t *testing.T) {
	t.Parallel()

	s := fixture.NewSource(&mock.Parser{})

	tests := []struct {
		locator string
		want    string
	}{
		{"startDoc", fixture.PageStart},
		{"testPage", fixture.PageIndexX},
		{"testWord", fixture.PageWordGrice},
		{"/wiki/Index:English/a1", fixture.PageIndexX},
		{"/wiki/Index:English/0", fixture.PageIndexX},
		{"/wiki/X#English", fixture.PageWordGrice},
		{"/wiki/grice", fixture.PageWordGrice},
	}
	for _, tt := range tests {
		t.Run(tt.locator, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, s.Route(tt.locator))
		})
	}
}

func TestSource(t *testing.T) {
	t.Parallel()

	t.Run("serves the start page from FetchStart", func(t *testing.T) {
		t.Parallel()

		var got string
		s := fixture.NewSource(recordingParser(&got))

		_, err := s.FetchStart(context.Background())

		require.NoError(t, err)
		assert.Equal(t, fixture.MustPage(fixture.PageStart), got)
		assert.Equal(t, "/wiki/Index:English/0", s.StartLocator())
	})

	t.Run("serves the configured index page", func(t *testing.T) {
		t.Parallel()

		var got string
		s := fixture.NewSource(recordingParser(&got), fixture.WithIndexPage(fixture.PageIndexSmall))

		_, err := s.FetchRelative(context.Background(), "/wiki/Index:English/x")

		require.NoError(t, err)
		assert.Equal(t, fixture.MustPage(fixture.PageIndexSmall), got)
	})

	t.Run("returns context errors", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := fixture.NewSource(&mock.Parser{})

		_, err := s.FetchRelative(ctx, "/wiki/grice")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
