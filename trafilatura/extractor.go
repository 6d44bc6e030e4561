// Package trafilatura extracts the main content of pages that no
// site-specific selector recognises.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/qbank"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ qbank.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of rawHTML without reader comments.
func (e *Extractor) Extract(rawHTML string) (*qbank.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, qbank.Errorf(qbank.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	})
	if err != nil {
		return nil, qbank.Errorf(qbank.EINVALID, "extract content: %v", err)
	}
	if result.ContentNode == nil {
		return nil, qbank.Errorf(qbank.EINVALID, "no main content found")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, err
	}

	return &qbank.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: buf.String(),
	}, nil
}
