// Package bloom provides the probabilistic seen-set used by crawls.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a Bloom filter over URLs. A URL reported as absent was never
// added; a URL reported as present was added with high probability.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd reports whether the URL might already be in the filter and
// adds it in the same step.
func (f *Filter) TestAndAdd(url string) bool {
	return f.f.TestAndAddString(url)
}
