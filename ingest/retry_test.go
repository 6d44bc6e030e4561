package ingest_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/qbank"
	"github.com/fwojciec/qbank/ingest"
	"github.com/fwojciec/qbank/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryFetcher_Fetch(t *testing.T) {
	t.Parallel()

	noDelays := []time.Duration{0, 0, 0}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		r := &ingest.RetryFetcher{
			Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
				calls++
				if calls < 3 {
					return "", qbank.Errorf(qbank.EUNAVAILABLE, "HTTP 503")
				}
				return "body", nil
			}},
			Delays: noDelays,
		}

		body, err := r.Fetch(context.Background(), "https://example.com/a.md")

		require.NoError(t, err)
		assert.Equal(t, "body", body)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns the last error once attempts run out", func(t *testing.T) {
		t.Parallel()

		calls := 0
		r := &ingest.RetryFetcher{
			Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
				calls++
				return "", errors.New("connection reset")
			}},
			Delays: noDelays,
		}

		_, err := r.Fetch(context.Background(), "https://example.com/a.md")

		assert.EqualError(t, err, "connection reset")
		assert.Equal(t, 4, calls)
	})

	t.Run("does not retry a missing document", func(t *testing.T) {
		t.Parallel()

		calls := 0
		r := &ingest.RetryFetcher{
			Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
				calls++
				return "", qbank.Errorf(qbank.ENOTFOUND, "no such document")
			}},
			Delays: noDelays,
		}

		_, err := r.Fetch(context.Background(), "notes/missing.md")

		assert.Equal(t, qbank.ENOTFOUND, qbank.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("stops waiting when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		r := &ingest.RetryFetcher{
			Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
				cancel()
				return "", errors.New("timeout")
			}},
			Delays: []time.Duration{time.Hour},
		}

		_, err := r.Fetch(ctx, "https://example.com/a.md")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
