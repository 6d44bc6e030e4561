package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/qbank"
)

var _ qbank.Fetcher = (*RetryFetcher)(nil)

// DefaultRetryDelays returns the backoff delays between fetch attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RetryFetcher retries a failed fetch once per entry in Delays, waiting that
// long before each retry. ENOTFOUND errors are returned without retrying.
type RetryFetcher struct {
	Fetcher qbank.Fetcher
	Delays  []time.Duration
	Logger  *slog.Logger
}

// NewRetryFetcher wraps f with the default retry delays.
func NewRetryFetcher(f qbank.Fetcher, logger *slog.Logger) *RetryFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryFetcher{Fetcher: f, Delays: DefaultRetryDelays(), Logger: logger}
}

// Fetch calls the wrapped Fetcher until it succeeds or the attempts run out,
// returning the last error.
func (r *RetryFetcher) Fetch(ctx context.Context, location string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(r.Delays); attempt++ {
		body, err := r.Fetcher.Fetch(ctx, location)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt == len(r.Delays) || qbank.ErrorCode(err) == qbank.ENOTFOUND {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if r.Logger != nil {
			r.Logger.Info("retrying fetch", "location", location, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.Delays[attempt]):
		}
	}

	return "", lastErr
}
