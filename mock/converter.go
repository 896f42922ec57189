package mock

import "github.com/fwojciec/docsmcp"

var _ docsmcp.Converter = (*Converter)(nil)

// Converter is a mock implementation of docsmcp.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ docsmcp.DocumentConverter = (*DocumentConverter)(nil)

// DocumentConverter is a mock implementation of docsmcp.DocumentConverter.
type DocumentConverter struct {
	ConvertDocumentFn func(data []byte) (string, error)
}

func (c *DocumentConverter) ConvertDocument(data []byte) (string, error) {
	return c.ConvertDocumentFn(data)
}
