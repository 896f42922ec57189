package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docsmcp"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ docsmcp.Extractor = (*Extractor)(nil)

// Extractor is the secondary reader-mode extractor, backed by
// go-trafilatura. It keeps links so that extracted documentation still
// references related pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of rawHTML.
func (e *Extractor) Extract(rawHTML string) (*docsmcp.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeLinks:    true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &docsmcp.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
