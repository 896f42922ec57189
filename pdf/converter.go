// Package pdf converts PDF documents to plain text using ledongthuc/pdf.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fwojciec/docsmcp"
	"github.com/ledongthuc/pdf"
)

var _ docsmcp.DocumentConverter = (*Converter)(nil)

// Converter extracts the text layer of a PDF. Image-only pages yield no
// text.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ConvertDocument returns the text of every page, pages separated by a
// blank line. Pages that fail to decode are skipped.
func (c *Converter) ConvertDocument(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", docsmcp.Errorf(docsmcp.EINVALID, "empty pdf")
	}
	// The reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = docsmcp.Errorf(docsmcp.EINVALID, "malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if content = strings.TrimSpace(content); content != "" {
			pages = append(pages, content)
		}
	}
	return strings.Join(pages, "\n\n"), nil
}
