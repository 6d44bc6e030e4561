// Package slog provides logging decorators for qbank services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/qbank"
)

// Ensure LoggingFetcher implements qbank.Fetcher.
var _ qbank.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs every fetch.
type LoggingFetcher struct {
	next   qbank.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next qbank.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, location string) (body string, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch",
			"location", location,
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, location)
}
