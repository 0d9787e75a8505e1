package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/SirDavvie/wikrawler"
	"github.com/SirDavvie/wikrawler/config"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Config     *config.Config
	Source     wikrawler.DocumentSource
	Enumerator wikrawler.Enumerator
	Extractor  wikrawler.DefinitionExtractor
	Sink       wikrawler.Sink
	Entries    wikrawler.EntryReader
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl  CrawlCmd  `cmd:"" help:"Crawl every index page into the sink"`
	Pages  PagesCmd  `cmd:"" help:"List the index pages linked from the start page"`
	Words  WordsCmd  `cmd:"" help:"List the word candidates of one index page"`
	Define DefineCmd `cmd:"" help:"Print the definitions of one word page"`
	Dump   DumpCmd   `cmd:"" help:"Print the entries stored in the sink"`
	Drop   DropCmd   `cmd:"" help:"Delete the sink"`
	Pos    PosCmd    `cmd:"" help:"List the recognized parts of speech"`
}

// SinkFlags override the configured sink.
type SinkFlags struct {
	Sink   string `short:"s" help:"Sink kind (file, sqlite, postgres)"`
	Output string `short:"o" help:"Output file or SQLite database path"`
}

// Apply copies the flags that were set onto cfg.
func (f *SinkFlags) Apply(cfg *config.SinkConfig) {
	if f.Sink != "" {
		cfg.Kind = f.Sink
	}
	if f.Output != "" {
		cfg.Path = f.Output
	}
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	SinkFlags
	Force       bool `short:"f" help:"Replace an existing sink"`
	Offline     bool `help:"Crawl the captured pages instead of the live site"`
	Render      bool `help:"Load pages through headless Chrome"`
	Concurrency int  `short:"c" help:"Concurrent definition fetches per index page"`
	Dedupe      bool   `help:"Drop entries already written during this run"`
	Report      string `type:"path" help:"Write a Markdown run report to this file"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	Offline bool `help:"Read the captured start page"`
}

// WordsCmd is the "words" subcommand.
type WordsCmd struct {
	Locator string `arg:"" help:"Index page locator, e.g. /wiki/Index:English/x"`
	Offline bool   `help:"Read the captured index page"`
}

// DefineCmd is the "define" subcommand.
type DefineCmd struct {
	Locator string `arg:"" help:"Word page locator, e.g. /wiki/grice"`
	Offline bool   `help:"Read the captured word page"`
}

// DumpCmd is the "dump" subcommand.
type DumpCmd struct {
	SinkFlags
	Format string `enum:"text,markdown" default:"text" help:"Output format (text, markdown)"`
}

// DropCmd is the "drop" subcommand.
type DropCmd struct {
	SinkFlags
	Force bool `help:"Confirm deletion"`
}

// PosCmd is the "pos" subcommand.
type PosCmd struct{}
