package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/SirDavvie/wikrawler"
)

// Ensure LoggingSink implements wikrawler.Sink.
var _ wikrawler.Sink = (*LoggingSink)(nil)

// LoggingSink wraps a Sink with logging.
type LoggingSink struct {
	next   wikrawler.Sink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next wikrawler.Sink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

func (s *LoggingSink) Exists(ctx context.Context) (exists bool, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("sink exists",
			"exists", exists,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Exists(ctx)
}

func (s *LoggingSink) Delete(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("sink delete",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Delete(ctx)
}

func (s *LoggingSink) Create(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("sink create",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Create(ctx)
}

func (s *LoggingSink) WriteBatch(ctx context.Context, entries []*wikrawler.DictionaryEntry) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("sink write batch",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteBatch(ctx, entries)
}
