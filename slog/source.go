package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/SirDavvie/wikrawler"
)

var (
	_ wikrawler.DocumentSource      = (*LoggingSource)(nil)
	_ wikrawler.DefinitionExtractor = (*LoggingExtractor)(nil)
)

// LoggingSource wraps a DocumentSource with debug logging.
type LoggingSource struct {
	next   wikrawler.DocumentSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next wikrawler.DocumentSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

func (s *LoggingSource) FetchStart(ctx context.Context) (doc wikrawler.Node, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("load page",
			"locator", s.next.StartLocator(),
			"start", true,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchStart(ctx)
}

func (s *LoggingSource) FetchRelative(ctx context.Context, locator string) (doc wikrawler.Node, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("load page",
			"locator", locator,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchRelative(ctx, locator)
}

func (s *LoggingSource) StartLocator() string {
	return s.next.StartLocator()
}

// LoggingExtractor wraps a DefinitionExtractor with debug logging.
type LoggingExtractor struct {
	next   wikrawler.DefinitionExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next wikrawler.DefinitionExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

func (e *LoggingExtractor) ExtractDefinitions(ctx context.Context, url string) (defs []wikrawler.Definition, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract definitions",
			"url", url,
			"count", len(defs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractDefinitions(ctx, url)
}
