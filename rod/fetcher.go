// Package rod renders JavaScript-driven documentation pages in headless
// Chrome so their questions can be extracted like any other HTML source.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/qbank"
	"github.com/go-rod/rod/lib/proto"
)

var _ qbank.Fetcher = (*Fetcher)(nil)

// DefaultTimeout bounds a single page render.
const DefaultTimeout = 30 * time.Second

// Fetcher returns the rendered HTML of a page.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *browser
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-page render timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets how many pages are rendered before Chrome is restarted.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.browser.maxPages = n
	}
}

// NewFetcher launches headless Chrome. Close must be called when the Fetcher
// is no longer needed.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		browser: &browser{maxPages: DefaultMaxPages},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if err := f.browser.launch(); err != nil {
		return nil, qbank.Errorf(qbank.EUNAVAILABLE, "headless browser: %v", err)
	}
	return f, nil
}

// Fetch navigates to location, waits for the page to load and returns its HTML.
func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.browser.get().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", qbank.Errorf(qbank.EUNAVAILABLE, "open page for %s: %v", location, err)
	}
	defer page.Close()
	defer f.browser.rendered()

	page = page.Context(ctx)
	if err := page.Navigate(location); err != nil {
		return "", renderError(ctx, location, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", renderError(ctx, location, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", renderError(ctx, location, err)
	}
	return html, nil
}

// Close shuts Chrome down. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	return f.browser.close()
}

// LauncherPID returns the process ID of the running browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.browser.pid()
}

func renderError(ctx context.Context, location string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return qbank.Errorf(qbank.EUNAVAILABLE, "render %s: %v", location, err)
}
