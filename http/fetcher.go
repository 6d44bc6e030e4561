// Package http provides a qbank.Fetcher that retrieves source documents with
// plain HTTP GET requests.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/qbank"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the importer to source hosts.
const DefaultUserAgent = "qbank/1.0"

// DefaultMaxBodySize caps the size of a fetched document.
const DefaultMaxBodySize = 10 << 20

// Ensure Fetcher implements qbank.Fetcher at compile time.
var _ qbank.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves document text from URLs.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the largest body, in bytes, the Fetcher will read.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch returns the body at url. A 404 or 410 response is ENOTFOUND; any
// other failure is EUNAVAILABLE unless ctx was canceled.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", qbank.Errorf(qbank.EINVALID, "invalid location %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/markdown, text/plain;q=0.9, text/html;q=0.8, */*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", qbank.Errorf(qbank.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return "", qbank.Errorf(qbank.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode != http.StatusOK:
		return "", qbank.Errorf(qbank.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return "", qbank.Errorf(qbank.EUNAVAILABLE, "read %s: %v", url, err)
	}
	if int64(len(body)) > f.maxBodySize {
		return "", qbank.Errorf(qbank.EUNAVAILABLE, "%s exceeds %d bytes", url, f.maxBodySize)
	}

	return string(body), nil
}
