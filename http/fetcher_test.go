package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/docsmcp"
	docsmcphttp "github.com/fwojciec/docsmcp/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body, status and content type", func(t *testing.T) {
		t.Parallel()

		gotUA := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA <- r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		resp, err := docsmcphttp.NewFetcher().Fetch(context.Background(), server.URL, docsmcp.FetchOptions{})

		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", string(resp.Body))
		assert.True(t, resp.OK())
		assert.True(t, resp.IsHTML())
		assert.Equal(t, docsmcp.UserAgent, <-gotUA)
	})

	t.Run("returns non-200 responses without error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		resp, err := docsmcphttp.NewFetcher().Fetch(context.Background(), server.URL, docsmcp.FetchOptions{})

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.False(t, resp.OK())
	})

	t.Run("follows redirects only when asked", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("moved here"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		fetcher := docsmcphttp.NewFetcher()

		followed, err := fetcher.Fetch(context.Background(), server.URL+"/old", docsmcp.FetchOptions{FollowRedirects: true})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, followed.StatusCode)
		assert.Equal(t, server.URL+"/new", followed.URL)
		assert.Equal(t, "moved here", string(followed.Body))

		stopped, err := fetcher.Fetch(context.Background(), server.URL+"/old", docsmcp.FetchOptions{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusMovedPermanently, stopped.StatusCode)
	})

	t.Run("truncates large bodies", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("0123456789"))
		}))
		defer server.Close()

		resp, err := docsmcphttp.NewFetcher(docsmcphttp.WithMaxBodySize(4)).Fetch(context.Background(), server.URL, docsmcp.FetchOptions{})

		require.NoError(t, err)
		assert.Equal(t, "0123", string(resp.Body))
	})

	t.Run("read timeout bounds slow responses", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		}))
		defer server.Close()

		fetcher := docsmcphttp.NewFetcher(
			docsmcphttp.WithConnectTimeout(20*time.Millisecond),
			docsmcphttp.WithReadTimeout(20*time.Millisecond),
		)

		_, err := fetcher.Fetch(context.Background(), server.URL, docsmcp.FetchOptions{})
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := docsmcphttp.NewFetcher().Fetch(ctx, server.URL, docsmcp.FetchOptions{})
		require.Error(t, err)
	})

	t.Run("rejects malformed urls", func(t *testing.T) {
		t.Parallel()

		_, err := docsmcphttp.NewFetcher().Fetch(context.Background(), "http://[::1", docsmcp.FetchOptions{})

		assert.Equal(t, docsmcp.EINVALID, docsmcp.ErrorCode(err))
	})
}
