// Package config loads crawler settings from YAML and the environment.
package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// AppName names the XDG subdirectories.
const AppName = "wikrawler"

// Sink kinds.
const (
	SinkFile     = "file"
	SinkSQLite   = "sqlite"
	SinkPostgres = "postgres"
)

// Default file names inside the data directory.
const (
	DefaultFileName     = "wiktionary.txt"
	DefaultDatabaseName = "wiktionary.db"
	DefaultConfigName   = "config.yaml"
)

// Config is the root configuration.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Sink     SinkConfig     `yaml:"sink"`
	Database DatabaseConfig `yaml:"database"`
	Crawl    CrawlConfig    `yaml:"crawl"`
	Log      LogConfig      `yaml:"log"`
}

// SourceConfig holds settings for reading the live site.
type SourceConfig struct {
	BaseURL      string        `yaml:"base_url"      env:"WIKRAWLER_BASE_URL"      env-default:"https://en.wiktionary.org"`
	StartLocator string        `yaml:"start_locator" env:"WIKRAWLER_START_LOCATOR" env-default:"/wiki/Index:English/0"`
	Timeout      time.Duration `yaml:"timeout"       env:"WIKRAWLER_TIMEOUT"       env-default:"10s"`
	UserAgent    string        `yaml:"user_agent"    env:"WIKRAWLER_USER_AGENT"`

	// Retries is the number of retries after a failed fetch. Zero disables retrying.
	Retries int `yaml:"retries" env:"WIKRAWLER_RETRIES" env-default:"0"`
	// Rate caps requests per second per host. Zero disables limiting.
	Rate float64 `yaml:"rate" env:"WIKRAWLER_RATE" env-default:"0"`
	// Render loads pages through headless Chrome instead of plain HTTP.
	Render bool `yaml:"render" env:"WIKRAWLER_RENDER" env-default:"false"`
}

// SinkConfig selects where entries are stored.
type SinkConfig struct {
	Kind      string `yaml:"kind"       env:"WIKRAWLER_SINK"       env-default:"file"`
	Path      string `yaml:"path"       env:"WIKRAWLER_OUTPUT"`
	Table     string `yaml:"table"      env:"WIKRAWLER_TABLE"      env-default:"wiktionary"`
	BatchSize int    `yaml:"batch_size" env:"WIKRAWLER_BATCH_SIZE" env-default:"100"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// CrawlConfig holds crawler tuning.
type CrawlConfig struct {
	Concurrency int  `yaml:"concurrency" env:"WIKRAWLER_CONCURRENCY" env-default:"1"`
	Dedupe      bool `yaml:"dedupe"      env:"WIKRAWLER_DEDUPE"      env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ResolvedPath returns the configured path, or the default location of the
// file or SQLite database in the data directory.
func (c SinkConfig) ResolvedPath() string {
	if c.Path != "" {
		return c.Path
	}
	if c.Kind == SinkSQLite {
		return filepath.Join(DataDir(), DefaultDatabaseName)
	}
	return filepath.Join(DataDir(), DefaultFileName)
}

// DataDir returns the XDG data directory.
// On Linux: ~/.local/share/wikrawler
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// ConfigDir returns the XDG config directory.
// On Linux: ~/.config/wikrawler
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
