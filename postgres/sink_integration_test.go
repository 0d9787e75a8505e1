//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/SirDavvie/wikrawler"
	"github.com/SirDavvie/wikrawler/config"
	"github.com/SirDavvie/wikrawler/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres starts a throwaway PostgreSQL container and returns a pool
// connected to it. The test is skipped under -short or without Docker.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "testuser",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		DSN:      fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port()),
		MaxConns: 4,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestSink_Postgres(t *testing.T) {
	t.Parallel()

	pool := startPostgres(t)
	migrator, err := postgres.NewMigrator(pool)
	require.NoError(t, err)
	t.Cleanup(func() { migrator.Close() })

	ctx := context.Background()
	sink := postgres.NewSink(pool, migrator, postgres.WithBatchSize(100))

	exists, err := sink.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	err = sink.WriteBatch(ctx, []*wikrawler.DictionaryEntry{{Word: "X", PartOfSpeech: wikrawler.Noun, URL: "/wiki/X"}})
	assert.Equal(t, wikrawler.ENOTFOUND, wikrawler.ErrorCode(err))

	require.NoError(t, sink.Create(ctx))
	assert.Equal(t, wikrawler.ECONFLICT, wikrawler.ErrorCode(sink.Create(ctx)))

	entries := make([]*wikrawler.DictionaryEntry, 250)
	for i := range entries {
		entries[i] = &wikrawler.DictionaryEntry{
			Word:         fmt.Sprintf("word%03d", i),
			PartOfSpeech: wikrawler.PartsOfSpeech()[i%27],
			Definitions:  fmt.Sprintf("1.) meaning %d", i),
			URL:          fmt.Sprintf("/wiki/word%03d", i),
		}
	}
	require.NoError(t, sink.WriteBatch(ctx, entries[:120]))
	require.NoError(t, sink.WriteBatch(ctx, entries[120:]))

	got, err := sink.ReadEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	require.NoError(t, sink.Delete(ctx))
	exists, err = sink.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, sink.Create(ctx))
	got, err = sink.ReadEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSink_Postgres_LongValues(t *testing.T) {
	t.Parallel()

	pool := startPostgres(t)
	migrator, err := postgres.NewMigrator(pool)
	require.NoError(t, err)
	t.Cleanup(func() { migrator.Close() })

	ctx := context.Background()
	sink := postgres.NewSink(pool, migrator)
	require.NoError(t, sink.Create(ctx))

	word := strings.Repeat("w", 300)
	entries := []*wikrawler.DictionaryEntry{{
		Word:         word,
		PartOfSpeech: wikrawler.Phrase,
		Definitions:  "1.) a very long phrase",
		URL:          "/wiki/" + strings.Repeat("%C3%A9", 100),
	}}
	require.NoError(t, sink.WriteBatch(ctx, entries))

	got, err := sink.ReadEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
