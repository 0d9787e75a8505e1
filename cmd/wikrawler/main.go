package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/SirDavvie/wikrawler"
	"github.com/SirDavvie/wikrawler/config"
	"github.com/SirDavvie/wikrawler/crawl"
	"github.com/SirDavvie/wikrawler/fixture"
	"github.com/SirDavvie/wikrawler/fs"
	"github.com/SirDavvie/wikrawler/goquery"
	wikhttp "github.com/SirDavvie/wikrawler/http"
	"github.com/SirDavvie/wikrawler/postgres"
	"github.com/SirDavvie/wikrawler/rod"
	wikslog "github.com/SirDavvie/wikrawler/slog"
	"github.com/SirDavvie/wikrawler/sqlite"
	"github.com/SirDavvie/wikrawler/wiktionary"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config overrides the loaded configuration when set before Run().
	Config *config.Config

	closers []func()
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close releases every resource opened by Run, most recent first.
func (m *Main) Close() error {
	for i := len(m.closers) - 1; i >= 0; i-- {
		m.closers[i]()
	}
	m.closers = nil
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikrawler"),
		kong.Description("Crawl the English Wiktionary index into a file or database."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikrawler --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	cfg := m.Config
	if cfg == nil {
		if cfg, err = config.Load(); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", messageOf(err))
			return err
		}
	}
	deps.Config = cfg
	deps.Logger = NewLogger(cfg.Log, stderr)

	// Wire command-specific dependencies.
	var (
		sinkFlags *SinkFlags
		offline   bool
		useSource bool
	)
	switch cmd {
	case "crawl":
		sinkFlags, offline, useSource = &cli.Crawl.SinkFlags, cli.Crawl.Offline, true
	case "pages":
		offline, useSource = cli.Pages.Offline, true
	case "words":
		offline, useSource = cli.Words.Offline, true
	case "define":
		offline, useSource = cli.Define.Offline, true
	case "dump":
		sinkFlags = &cli.Dump.SinkFlags
	case "drop":
		sinkFlags = &cli.Drop.SinkFlags
	}
	defer m.Close()

	if useSource {
		if cmd == "crawl" && cli.Crawl.Render {
			cfg.Source.Render = true
		}
		source, err := m.openSource(cfg, offline, deps.Logger)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", messageOf(err))
			return err
		}
		deps.Source = wikslog.NewLoggingSource(source, deps.Logger)
		deps.Enumerator = wiktionary.NewEnumerator()
		deps.Extractor = wikslog.NewLoggingExtractor(wiktionary.NewExtractor(source), deps.Logger)
	}

	if sinkFlags != nil {
		sinkFlags.Apply(&cfg.Sink)
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", wikrawler.ErrorMessage(err))
			return err
		}
		sink, reader, err := m.openSink(ctx, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", messageOf(err))
			return err
		}
		deps.Sink = wikslog.NewLoggingSink(sink, deps.Logger)
		deps.Entries = reader
	}

	return kongCtx.Run(deps)
}

// openSource returns the captured pages when offline, otherwise the live site.
func (m *Main) openSource(cfg *config.Config, offline bool, logger *slog.Logger) (wikrawler.DocumentSource, error) {
	parser := goquery.NewParser()
	if offline {
		return fixture.NewSource(parser), nil
	}

	var fetcher wikrawler.Fetcher
	if cfg.Source.Render {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cfg.Source.Timeout))
		if err != nil {
			return nil, err
		}
		fetcher = f
	} else {
		opts := []wikhttp.Option{wikhttp.WithTimeout(cfg.Source.Timeout)}
		if cfg.Source.UserAgent != "" {
			opts = append(opts, wikhttp.WithUserAgent(cfg.Source.UserAgent))
		}
		fetcher = wikhttp.NewFetcher(opts...)
	}
	fetcher = wikslog.NewLoggingFetcher(fetcher, logger)
	if cfg.Source.Rate > 0 {
		fetcher = crawl.NewRateLimitedFetcher(fetcher, cfg.Source.Rate)
	}
	if cfg.Source.Retries > 0 {
		fetcher = crawl.NewRetryFetcher(fetcher, crawl.RetryDelays(cfg.Source.Retries), func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		})
	}
	m.closers = append(m.closers, func() { _ = fetcher.Close() })

	return goquery.NewSource(fetcher,
		goquery.WithParser(parser),
		goquery.WithBaseURL(cfg.Source.BaseURL),
		goquery.WithStartLocator(cfg.Source.StartLocator),
	), nil
}

// openSink opens the sink selected by cfg.
func (m *Main) openSink(ctx context.Context, cfg *config.Config) (wikrawler.Sink, wikrawler.EntryReader, error) {
	switch cfg.Sink.Kind {
	case config.SinkSQLite:
		path := cfg.Sink.ResolvedPath()
		if path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return nil, nil, err
			}
		}
		db := sqlite.NewDB(path)
		if err := db.Open(); err != nil {
			return nil, nil, fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		m.closers = append(m.closers, func() { _ = db.Close() })
		sink := sqlite.NewSink(db, sqlite.WithTable(cfg.Sink.Table), sqlite.WithBatchSize(cfg.Sink.BatchSize))
		return sink, sink, nil

	case config.SinkPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		m.closers = append(m.closers, pool.Close)
		migrator, err := postgres.NewMigrator(pool)
		if err != nil {
			return nil, nil, err
		}
		m.closers = append(m.closers, func() { _ = migrator.Close() })
		sink := postgres.NewSink(pool, migrator, postgres.WithBatchSize(cfg.Sink.BatchSize))
		return sink, sink, nil

	default:
		sink := fs.NewSink(cfg.Sink.ResolvedPath())
		return sink, sink, nil
	}
}

// messageOf returns the message of an application error, or the error text
// for anything else.
func messageOf(err error) string {
	if wikrawler.ErrorCode(err) == wikrawler.EINTERNAL {
		return err.Error()
	}
	return wikrawler.ErrorMessage(err)
}
