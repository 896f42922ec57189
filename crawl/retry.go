package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsmcp"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (*docsmcp.Response, error)

// DefaultRetryDelays returns the backoff delays for fetch retries.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, 1 * time.Second}
}

// FetchWithRetryDelays calls fetch until it returns a response, retrying
// after each of delays in turn. Only transport errors are retried: any
// response, whatever its status, is returned as is, and invalid input
// fails immediately.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (*docsmcp.Response, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err := fetch(ctx, url)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if docsmcp.ErrorCode(err) == docsmcp.EINVALID || attempt >= maxAttempts-1 {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if logger != nil {
			logger.Debug("retrying fetch", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
