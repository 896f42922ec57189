package crawl_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/docsmcp/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Disabled(t *testing.T) {
	t.Parallel()

	for _, rps := range []float64{0, -1} {
		limiter := crawl.NewDomainLimiter(rps)

		start := time.Now()
		for range 50 {
			require.NoError(t, limiter.Wait(context.Background(), "docs.example.com"))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond, "rps %v should not throttle", rps)
	}
}

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("default crawl rate spaces requests to one host", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(2)
		ctx := context.Background()

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "docs.example.com"))
		assert.Less(t, time.Since(start), 50*time.Millisecond, "first fetch of a host is not delayed")

		require.NoError(t, limiter.Wait(ctx, "docs.example.com"))
		assert.GreaterOrEqual(t, time.Since(start), 400*time.Millisecond)
	})

	t.Run("hosts are keyed with their port", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)
		ctx := context.Background()

		start := time.Now()
		for _, host := range []string{"docs.example.com", "docs.example.com:8080", "api.example.com"} {
			require.NoError(t, limiter.Wait(ctx, host))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("canceled wait returns the context error", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "127.0.0.1:3000"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := limiter.Wait(ctx, "127.0.0.1:3000")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("parallel workers on one host share its bucket", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(20)

		start := time.Now()
		var wg sync.WaitGroup
		errs := make([]error, 4)
		for i := range errs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = limiter.Wait(context.Background(), "docs.example.com")
			}()
		}
		wg.Wait()

		for _, err := range errs {
			assert.NoError(t, err)
		}
		// Burst of one: the fourth worker waits three 50ms intervals.
		assert.GreaterOrEqual(t, time.Since(start), 120*time.Millisecond)
	})
}
