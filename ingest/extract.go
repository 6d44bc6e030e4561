package ingest

import (
	"strings"

	"github.com/fwojciec/qbank"
)

var _ qbank.Extractor = (ExtractorChain)(nil)

// ExtractorChain tries each Extractor in turn and returns the first result
// with non-empty content. The last error is returned when all fail.
type ExtractorChain []qbank.Extractor

// Extract implements qbank.Extractor.
func (c ExtractorChain) Extract(html string) (*qbank.ExtractResult, error) {
	var err error = qbank.Errorf(qbank.EINVALID, "no extractor configured")
	for _, e := range c {
		var res *qbank.ExtractResult
		res, err = e.Extract(html)
		if err == nil && strings.TrimSpace(res.ContentHTML) != "" {
			return res, nil
		}
		if err == nil {
			err = qbank.Errorf(qbank.EINVALID, "no content found")
		}
	}
	return nil, err
}
