package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/docsmcp/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_TestAndAdd(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.001)

	assert.False(t, f.TestAndAdd("https://example.com/docs/a"))
	assert.True(t, f.TestAndAdd("https://example.com/docs/a"))
	assert.False(t, f.TestAndAdd("https://example.com/docs/b"))
	assert.True(t, f.TestAndAdd("https://example.com/docs/b"))
}

func TestFilter_ZeroCapacity(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(0, 0.01)

	assert.False(t, f.TestAndAdd("https://example.com/"))
	assert.True(t, f.TestAndAdd("https://example.com/"))
}

func TestFilter_DistinguishesQueryStrings(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(100, 0.001)

	assert.False(t, f.TestAndAdd("https://docs.example.com/api?page=1"))
	assert.False(t, f.TestAndAdd("https://docs.example.com/api?page=2"))
	assert.False(t, f.TestAndAdd("https://docs.example.com/api"))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		pages  = 10000
		fpRate = 0.01
	)

	f := bloom.NewFilter(pages, fpRate)

	for i := range pages {
		f.TestAndAdd(fmt.Sprintf("https://docs.example.com/v1/page/%d", i))
	}

	// Each lookup also inserts, so later lookups see a slightly fuller
	// filter; 2% leaves room for that and for variance.
	hits := 0
	for i := range pages {
		if f.TestAndAdd(fmt.Sprintf("https://docs.example.com/v2/page/%d", i)) {
			hits++
		}
	}
	rate := float64(hits) / float64(pages)
	assert.Less(t, rate, 0.02, "false positive rate %f exceeds 2%%", rate)
}
