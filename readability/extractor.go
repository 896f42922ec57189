package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/docsmcp"
	"github.com/go-shiori/go-readability"
)

var _ docsmcp.Extractor = (*Extractor)(nil)

// Extractor is the primary reader-mode extractor, backed by
// go-readability.
type Extractor struct {
	// BaseURL resolves relative links inside the extracted fragment. Nil
	// leaves them untouched.
	BaseURL *url.URL
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the readable article of rawHTML. A page with no
// readable article yields an empty ContentHTML and no error.
func (e *Extractor) Extract(rawHTML string) (*docsmcp.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.BaseURL)
	if err != nil {
		return nil, err
	}

	return &docsmcp.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: strings.TrimSpace(article.Content),
	}, nil
}
