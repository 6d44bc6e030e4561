package ingest

import (
	"context"

	"github.com/fwojciec/qbank"
)

var _ qbank.Fetcher = (*Router)(nil)

// Router sends http and https locations to Remote and everything else to Local.
type Router struct {
	Remote qbank.Fetcher
	Local  qbank.Fetcher
}

// Fetch delegates to the fetcher responsible for location.
func (r *Router) Fetch(ctx context.Context, location string) (string, error) {
	if hostOf(location) != "" {
		if r.Remote == nil {
			return "", qbank.Errorf(qbank.EINVALID, "remote sources are not supported: %s", location)
		}
		return r.Remote.Fetch(ctx, location)
	}
	if r.Local == nil {
		return "", qbank.Errorf(qbank.EINVALID, "local sources are not supported: %s", location)
	}
	return r.Local.Fetch(ctx, location)
}
