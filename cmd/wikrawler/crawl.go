package main

import (
	"fmt"
	"os"
	"time"

	"github.com/SirDavvie/wikrawler"
	"github.com/SirDavvie/wikrawler/crawl"
	"github.com/SirDavvie/wikrawler/markdown"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	exists, err := deps.Sink.Exists(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", messageOf(err))
		return err
	}
	if exists {
		if !c.Force {
			fmt.Fprintf(deps.Stderr, "error: sink already exists; use --force to replace it\n")
			return wikrawler.Errorf(wikrawler.ECONFLICT, "sink already exists; use --force to replace it")
		}
		if err := deps.Sink.Delete(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", messageOf(err))
			return err
		}
	}
	if err := deps.Sink.Create(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", messageOf(err))
		return err
	}

	crawler := &crawl.Crawler{
		Source:     deps.Source,
		Enumerator: deps.Enumerator,
		Extractor:  deps.Extractor,
		Sink:       deps.Sink,
		Logger:     deps.Logger,
	}
	if deps.Config != nil {
		crawler.Concurrency = deps.Config.Crawl.Concurrency
		crawler.Dedupe = deps.Config.Crawl.Dedupe
	}
	if c.Concurrency > 0 {
		crawler.Concurrency = c.Concurrency
	}
	if c.Dedupe {
		crawler.Dedupe = true
	}

	result, err := crawler.Run(deps.Ctx, func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Crawling %d index pages...\n", e.Total)
		case crawl.ProgressPageWritten:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s (%d entries)\n", e.Completed, e.Total, e.Locator, e.Entries)
		case crawl.ProgressPageSkipped:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] skipped %s: %v\n", e.Completed, e.Total, e.Locator, e.Error)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", messageOf(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d entries from %d pages (%d skipped, %d words skipped)\n",
		result.Entries, result.Pages, result.PagesSkipped, result.WordsSkipped)
	if result.Duplicates > 0 {
		fmt.Fprintf(deps.Stdout, "Dropped %d duplicate entries\n", result.Duplicates)
	}
	fmt.Fprintf(deps.Stdout, "Digest: %s\n", result.Digest)

	if c.Report != "" {
		if err := writeReport(c.Report, result); err != nil {
			fmt.Fprintf(deps.Stderr, "error: writing report: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Report: %s\n", c.Report)
	}
	return nil
}

func writeReport(path string, result *crawl.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return markdown.WriteReport(f, result, time.Now())
}
