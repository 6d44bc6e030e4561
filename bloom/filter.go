// Package bloom remembers which source locations an import run has seen.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a Bloom filter over strings. False positives are possible;
// false negatives are not.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected keys at the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether key may have been seen before, and records it.
func (f *Filter) Seen(key string) bool {
	return f.f.TestOrAddString(key)
}
