package etree_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/fwojciec/docsmcp"
	"github.com/fwojciec/docsmcp/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// officeArchive builds an in-memory zip with the given parts.
func officeArchive(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range parts {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

func TestDOCXConverter_ConvertDocument(t *testing.T) {
	t.Parallel()

	t.Run("headings paragraphs and tables", func(t *testing.T) {
		t.Parallel()

		doc := `<?xml version="1.0" encoding="UTF-8"?>
<w:document ` + wordNS + `><w:body>
<w:p><w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:t>User Guide</w:t></w:r></w:p>
<w:p><w:pPr><w:pStyle w:val="Heading2"/></w:pPr><w:r><w:t>Install</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Run the </w:t></w:r><w:hyperlink><w:r><w:t>installer</w:t></w:r></w:hyperlink><w:r><w:t xml:space="preserve"> now.</w:t></w:r></w:p>
<w:p></w:p>
<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Key</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Value</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
<w:sectPr/>
</w:body></w:document>`
		data := officeArchive(t, map[string]string{"word/document.xml": doc})

		got, err := etree.NewDOCXConverter().ConvertDocument(data)

		require.NoError(t, err)
		assert.Equal(t, "# User Guide\n\n## Install\n\nRun the installer now.\n\n| Key | Value |", got)
	})

	t.Run("missing document part", func(t *testing.T) {
		t.Parallel()

		data := officeArchive(t, map[string]string{"other.xml": "<x/>"})

		_, err := etree.NewDOCXConverter().ConvertDocument(data)

		assert.Equal(t, docsmcp.EINVALID, docsmcp.ErrorCode(err))
	})

	t.Run("not a zip archive", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewDOCXConverter().ConvertDocument([]byte("plain text"))

		assert.Equal(t, docsmcp.EINVALID, docsmcp.ErrorCode(err))
	})
}

const drawingNS = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`

func slide(texts ...string) string {
	s := `<p:sld ` + drawingNS + `><p:cSld><p:spTree><p:sp><p:txBody>`
	for _, text := range texts {
		s += `<a:p><a:r><a:t>` + text + `</a:t></a:r></a:p>`
	}
	return s + `</p:txBody></p:sp></p:spTree></p:cSld></p:sld>`
}

func TestPPTXConverter_ConvertDocument(t *testing.T) {
	t.Parallel()

	t.Run("slides in numeric order", func(t *testing.T) {
		t.Parallel()

		data := officeArchive(t, map[string]string{
			"ppt/slides/slide10.xml":            slide("Ten"),
			"ppt/slides/slide2.xml":             slide("Two", "More"),
			"ppt/slides/slide1.xml":             slide("One"),
			"ppt/slides/slide3.xml":             slide(),
			"ppt/slides/_rels/slide1.xml.rels":  "<Relationships/>",
			"ppt/slideLayouts/slideLayout1.xml": slide("Layout"),
		})

		got, err := etree.NewPPTXConverter().ConvertDocument(data)

		require.NoError(t, err)
		assert.Equal(t, "## Slide 1\n\nOne\n\n## Slide 2\n\nTwo\nMore\n\n## Slide 10\n\nTen", got)
	})

	t.Run("deck without slides", func(t *testing.T) {
		t.Parallel()

		data := officeArchive(t, map[string]string{"ppt/presentation.xml": "<p/>"})

		_, err := etree.NewPPTXConverter().ConvertDocument(data)

		assert.Equal(t, docsmcp.EINVALID, docsmcp.ErrorCode(err))
	})
}
