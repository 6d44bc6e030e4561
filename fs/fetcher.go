// Package fs provides file-based implementations: a local document Fetcher,
// the JSON run report writer and a markdown catalog exporter.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/fwojciec/qbank"
)

// Ensure Fetcher implements qbank.Fetcher at compile time.
var _ qbank.Fetcher = (*Fetcher)(nil)

// Fetcher reads source documents from the local filesystem. Locations are
// paths, optionally prefixed with file://.
type Fetcher struct{}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch returns the contents of the file at location. A missing file is
// ENOTFOUND; any other read failure is EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := strings.TrimPrefix(location, "file://")
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", qbank.Errorf(qbank.ENOTFOUND, "no such document: %s", path)
	case err != nil:
		return "", qbank.Errorf(qbank.EUNAVAILABLE, "read %s: %v", path, err)
	}
	return string(b), nil
}
