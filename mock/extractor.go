package mock

import "github.com/fwojciec/docsmcp"

var _ docsmcp.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docsmcp.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docsmcp.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docsmcp.ExtractResult, error) {
	return e.ExtractFn(html)
}
