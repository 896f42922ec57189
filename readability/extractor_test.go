package readability_test

import (
	"net/url"
	"testing"

	"github.com/fwojciec/docsmcp"
	"github.com/fwojciec/docsmcp/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Installing the CLI</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<h2>Requirements</h2>
<p>The command line tool needs a recent toolchain and a writable cache directory before it can be installed.</p>
<p>Run the installer from the project root, then verify the version it reports matches the release notes.</p>
<pre><code>make install</code></pre>
<p>See <a href="guide/setup">the setup guide</a> for platform specific notes and troubleshooting advice.</p>
</article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := readability.NewExtractor().Extract("  \n ")

	require.Error(t, err)
	assert.Equal(t, docsmcp.EINVALID, docsmcp.ErrorCode(err))
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	result, err := readability.NewExtractor().Extract(articlePage)

	require.NoError(t, err)
	assert.Equal(t, "Installing the CLI", result.Title)
	assert.Contains(t, result.ContentHTML, "writable cache directory")
	assert.Contains(t, result.ContentHTML, "make install")
	assert.NotContains(t, result.ContentHTML, "Home Nav Link")
	assert.NotContains(t, result.ContentHTML, "Footer copyright text")
}

func TestExtractor_ResolvesLinksAgainstBaseURL(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("https://docs.example.com/cli/install")
	require.NoError(t, err)

	ext := &readability.Extractor{BaseURL: base}
	result, err := ext.Extract(articlePage)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "https://docs.example.com/cli/guide/setup")
}
