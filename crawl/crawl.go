// Package crawl provides crawl orchestration.
// It walks the index pages listed on the start page, extracts the definitions
// of every word candidate, and flushes one batch of entries per index page.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SirDavvie/wikrawler"
	"github.com/SirDavvie/wikrawler/bloom"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Dedupe filter sizing.
const (
	DefaultDedupeCapacity   = 2_000_000
	dedupeFalsePositiveRate = 1e-9
)

// Crawler orchestrates a crawl of the dictionary site.
type Crawler struct {
	Source     wikrawler.DocumentSource
	Enumerator wikrawler.Enumerator
	Extractor  wikrawler.DefinitionExtractor
	Sink       wikrawler.Sink
	Logger     *slog.Logger

	// Concurrency bounds the definition fetches in flight within one index
	// page. Values below 2 extract words one at a time.
	Concurrency int

	// Dedupe drops entries whose (word, part of speech) was already written
	// during this run. The filter is approximate; DedupeCapacity sizes it.
	Dedupe         bool
	DedupeCapacity uint
}

// Result holds the outcome of a crawl.
type Result struct {
	RunID        string
	Pages        int // index pages with a word list
	PagesSkipped int // index pages that failed to load or had no word list
	Words        int // word candidates examined
	WordsSkipped int // candidates that failed to load or had no definitions
	Entries      int // entries written to the sink
	Duplicates   int // entries dropped by Dedupe
	Digest       string
	Duration     time.Duration
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	Locator   string
	Completed int
	Total     int
	Entries   int
	Hash      string // ComputeHash of the written batch
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressPageWritten
	ProgressPageSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// wordResult holds the outcome of extracting one word candidate.
type wordResult struct {
	link wikrawler.WordLink
	defs []wikrawler.Definition
	err  error
}

// Run crawls every index page and writes one batch per page to the sink.
//
// Pages and words that fail to load or yield nothing are skipped and counted.
// Run fails only when the start page cannot be loaded, the sink rejects a
// batch, or ctx is done; a run that captured some entries is a success.
func (c *Crawler) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	begin := time.Now()
	result := &Result{RunID: uuid.NewString()}
	logger := c.logger().With("run", result.RunID)

	start, err := c.Source.FetchStart(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch start page: %w", err)
	}
	pages := c.Enumerator.ListIndexPages(start, c.Source.StartLocator())
	logger.Info("crawl started", "pages", len(pages))
	notify(progress, ProgressEvent{Type: ProgressStarted, Total: len(pages)})

	var seen *bloom.Filter
	if c.Dedupe {
		capacity := c.DedupeCapacity
		if capacity == 0 {
			capacity = DefaultDedupeCapacity
		}
		seen = bloom.NewFilter(capacity, dedupeFalsePositiveRate)
	}
	digest := NewDigest()

	for i, locator := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batch, err := c.crawlPage(ctx, logger, locator, result)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			result.PagesSkipped++
			logger.Warn("index page skipped", "locator", locator, "err", err)
			notify(progress, ProgressEvent{Type: ProgressPageSkipped, Locator: locator, Completed: i + 1, Total: len(pages), Error: err})
			continue
		}
		result.Pages++

		if seen != nil {
			batch = dedupe(batch, seen, result)
		}

		if len(batch) > 0 {
			if err := c.Sink.WriteBatch(ctx, batch); err != nil {
				return nil, fmt.Errorf("write batch for %s: %w", locator, err)
			}
			digest.Add(batch)
			result.Entries += len(batch)
		}
		hash := ComputeHash(batch)
		logger.Info("index page written", "locator", locator, "entries", len(batch), "hash", hash)
		notify(progress, ProgressEvent{Type: ProgressPageWritten, Locator: locator, Completed: i + 1, Total: len(pages), Entries: len(batch), Hash: hash})
	}

	result.Digest = digest.String()
	result.Duration = time.Since(begin)
	logger.Info("crawl finished",
		"pages", result.Pages,
		"pages_skipped", result.PagesSkipped,
		"words", result.Words,
		"words_skipped", result.WordsSkipped,
		"entries", result.Entries,
		"digest", result.Digest,
		"duration", result.Duration,
	)
	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: len(pages), Total: len(pages), Entries: result.Entries})
	return result, nil
}

// crawlPage builds the batch of one index page. The error is non-nil only
// when the page itself is unusable.
func (c *Crawler) crawlPage(ctx context.Context, logger *slog.Logger, locator string, result *Result) ([]*wikrawler.DictionaryEntry, error) {
	page, err := c.Source.FetchRelative(ctx, locator)
	if err != nil {
		return nil, err
	}
	links, ok := c.Enumerator.ListWordEntries(page)
	if !ok {
		return nil, wikrawler.Errorf(wikrawler.ENOTFOUND, "no word list on %s", locator)
	}

	var batch []*wikrawler.DictionaryEntry
	for _, r := range c.extractAll(ctx, links) {
		result.Words++
		if r.err != nil || len(r.defs) == 0 {
			result.WordsSkipped++
			logger.Debug("word skipped", "word", r.link.Word, "url", r.link.URL, "err", r.err)
			continue
		}
		for _, d := range r.defs {
			batch = append(batch, &wikrawler.DictionaryEntry{
				Word:         r.link.Word,
				PartOfSpeech: d.PartOfSpeech,
				Definitions:  d.Text,
				URL:          r.link.URL,
			})
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return batch, nil
}

// extractAll extracts every link, returning results in link order.
func (c *Crawler) extractAll(ctx context.Context, links []wikrawler.WordLink) []wordResult {
	results := make([]wordResult, len(links))
	if c.Concurrency < 2 {
		for i, link := range links {
			defs, err := c.Extractor.ExtractDefinitions(ctx, link.URL)
			results[i] = wordResult{link: link, defs: defs, err: err}
		}
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)
	for i, link := range links {
		g.Go(func() error {
			defs, err := c.Extractor.ExtractDefinitions(gctx, link.URL)
			results[i] = wordResult{link: link, defs: defs, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func dedupe(batch []*wikrawler.DictionaryEntry, seen *bloom.Filter, result *Result) []*wikrawler.DictionaryEntry {
	kept := batch[:0]
	for _, e := range batch {
		if seen.TestAndAdd(e.Key()) {
			result.Duplicates++
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
