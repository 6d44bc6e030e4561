package mock

import "github.com/fwojciec/qbank"

var _ qbank.Converter = (*Converter)(nil)

// Converter is a mock implementation of qbank.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
