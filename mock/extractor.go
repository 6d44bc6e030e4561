package mock

import "github.com/fwojciec/qbank"

var _ qbank.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of qbank.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*qbank.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*qbank.ExtractResult, error) {
	return e.ExtractFn(html)
}
