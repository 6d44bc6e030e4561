package mock

import (
	"context"

	"github.com/fwojciec/qbank"
)

var _ qbank.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of qbank.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, location string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	return f.FetchFn(ctx, location)
}
