package mock

import "github.com/fwojciec/docsmcp"

var _ docsmcp.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of docsmcp.Normalizer.
type Normalizer struct {
	NormalizeFn func(rawHTML string) docsmcp.Normalized
}

func (n *Normalizer) Normalize(rawHTML string) docsmcp.Normalized {
	return n.NormalizeFn(rawHTML)
}

var _ docsmcp.ContentSelector = (*ContentSelector)(nil)

// ContentSelector is a mock implementation of docsmcp.ContentSelector.
type ContentSelector struct {
	SelectContentFn func(html string) (string, error)
}

func (s *ContentSelector) SelectContent(html string) (string, error) {
	return s.SelectContentFn(html)
}

var _ docsmcp.MarkdownRenderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer is a mock implementation of docsmcp.MarkdownRenderer.
type MarkdownRenderer struct {
	RenderFn func(html string) (string, error)
}

func (r *MarkdownRenderer) Render(html string) (string, error) {
	return r.RenderFn(html)
}
