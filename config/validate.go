package config

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/SirDavvie/wikrawler"
)

var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the loaded configuration. Load calls it automatically.
// It returns the first problem found as an EINVALID error.
func (c *Config) Validate() error {
	if u, err := url.Parse(c.Source.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return wikrawler.Errorf(wikrawler.EINVALID, "source.base_url must be an absolute URL (got %q)", c.Source.BaseURL)
	}
	if c.Source.Timeout <= 0 {
		return wikrawler.Errorf(wikrawler.EINVALID, "source.timeout must be > 0 (got %s)", c.Source.Timeout)
	}
	if c.Source.Retries < 0 {
		return wikrawler.Errorf(wikrawler.EINVALID, "source.retries must be >= 0 (got %d)", c.Source.Retries)
	}
	if c.Source.Rate < 0 {
		return wikrawler.Errorf(wikrawler.EINVALID, "source.rate must be >= 0 (got %v)", c.Source.Rate)
	}

	switch c.Sink.Kind {
	case SinkFile, SinkSQLite:
	case SinkPostgres:
		if c.Database.DSN == "" {
			return wikrawler.Errorf(wikrawler.EINVALID, "database.dsn is required for the postgres sink")
		}
	default:
		return wikrawler.Errorf(wikrawler.EINVALID, "sink.kind must be one of file, sqlite, postgres (got %q)", c.Sink.Kind)
	}
	if c.Sink.BatchSize < 1 {
		return wikrawler.Errorf(wikrawler.EINVALID, "sink.batch_size must be > 0 (got %d)", c.Sink.BatchSize)
	}
	if !tableNameRe.MatchString(c.Sink.Table) {
		return wikrawler.Errorf(wikrawler.EINVALID, "sink.table must be a plain identifier (got %q)", c.Sink.Table)
	}

	if c.Crawl.Concurrency < 1 {
		return wikrawler.Errorf(wikrawler.EINVALID, "crawl.concurrency must be >= 1 (got %d)", c.Crawl.Concurrency)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return wikrawler.Errorf(wikrawler.EINVALID, "log.format must be text or json (got %q)", c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return wikrawler.Errorf(wikrawler.EINVALID, "log.level must be debug, info, warn or error (got %q)", c.Log.Level)
	}

	return nil
}
