package goquery_test

import (
	"testing"

	"github.com/fwojciec/docsmcp"
	"github.com/fwojciec/docsmcp/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentSelector_SelectContent(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewContentSelector().SelectContent("")

		assert.Equal(t, docsmcp.EINVALID, docsmcp.ErrorCode(err))
	})

	t.Run("prefers main over article", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article><p>Teaser</p></article>
<main><p>Primary body</p></main>
</body></html>`

		got, err := goquery.NewContentSelector().SelectContent(html)

		require.NoError(t, err)
		assert.Contains(t, got, "<main>")
		assert.Contains(t, got, "Primary body")
		assert.NotContains(t, got, "Teaser")
	})

	t.Run("matches role main", func(t *testing.T) {
		t.Parallel()

		html := `<div role="main"><p>Role content</p></div><div><p>Other</p></div>`

		got, err := goquery.NewContentSelector().SelectContent(html)

		require.NoError(t, err)
		assert.Contains(t, got, "Role content")
		assert.NotContains(t, got, "Other")
	})

	t.Run("matches content id", func(t *testing.T) {
		t.Parallel()

		html := `<div id="content"><p>Identified</p></div><div class="extra">Else</div>`

		got, err := goquery.NewContentSelector().SelectContent(html)

		require.NoError(t, err)
		assert.Contains(t, got, "Identified")
		assert.NotContains(t, got, "Else")
	})

	t.Run("removes clutter inside selection", func(t *testing.T) {
		t.Parallel()

		html := `<main>
<nav>Menu</nav><header>Top</header>
<p>Body text</p>
<script>track()</script><style>p{}</style><form><input></form>
<aside>Related</aside><footer>Bottom</footer>
</main>`

		got, err := goquery.NewContentSelector().SelectContent(html)

		require.NoError(t, err)
		assert.Contains(t, got, "Body text")
		for _, gone := range []string{"Menu", "Top", "track()", "p{}", "<form", "Related", "Bottom"} {
			assert.NotContains(t, got, gone)
		}
	})

	t.Run("falls back to whole cleaned document", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><nav>Menu</nav><div><p>Loose text</p></div></body></html>`

		got, err := goquery.NewContentSelector().SelectContent(html)

		require.NoError(t, err)
		assert.Contains(t, got, "Loose text")
		assert.NotContains(t, got, "Menu")
	})
}
