//go:build integration

package rod_test

import (
	"testing"

	"github.com/SirDavvie/wikrawler/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager(t *testing.T) {
	t.Parallel()

	t.Run("replaces the browser after max pages", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(2))
		require.NoError(t, err)
		defer manager.Close()

		first := manager.Browser()
		firstPID := manager.LauncherPID()
		manager.IncrementPageCount()
		assert.Same(t, first, manager.Browser())

		manager.IncrementPageCount()
		second := manager.Browser()

		assert.NotSame(t, first, second)
		assert.NotEqual(t, firstPID, manager.LauncherPID())
	})

	t.Run("never replaces with max pages of zero", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(0))
		require.NoError(t, err)
		defer manager.Close()

		first := manager.Browser()
		for range 5 {
			manager.IncrementPageCount()
		}

		assert.Same(t, first, manager.Browser())
	})

	t.Run("close is idempotent and clears the launcher", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager()
		require.NoError(t, err)

		require.NoError(t, manager.Close())
		require.NoError(t, manager.Close())
		assert.Zero(t, manager.LauncherPID())
	})
}
