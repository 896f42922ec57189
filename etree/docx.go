// Package etree converts Office Open XML documents (DOCX, PPTX) to
// Markdown by reading their XML parts with beevik/etree.
package etree

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docsmcp"
)

var _ docsmcp.DocumentConverter = (*DOCXConverter)(nil)

const docxBodyPart = "word/document.xml"

// DOCXConverter converts Word documents. Heading styles become ATX
// headings and tables become pipe rows.
type DOCXConverter struct{}

// NewDOCXConverter creates a new DOCXConverter.
func NewDOCXConverter() *DOCXConverter {
	return &DOCXConverter{}
}

// ConvertDocument returns the Markdown text of a .docx archive.
func (c *DOCXConverter) ConvertDocument(data []byte) (string, error) {
	archive, err := openArchive(data)
	if err != nil {
		return "", err
	}
	doc, err := readPart(archive, docxBodyPart)
	if err != nil {
		return "", err
	}

	body := doc.FindElement("//w:body")
	if body == nil {
		return "", docsmcp.Errorf(docsmcp.EINVALID, "docx has no body")
	}

	var blocks []string
	for _, el := range body.ChildElements() {
		switch el.Tag {
		case "p":
			if text := docxParagraph(el); text != "" {
				blocks = append(blocks, text)
			}
		case "tbl":
			if text := docxTable(el); text != "" {
				blocks = append(blocks, text)
			}
		}
	}
	return strings.Join(blocks, "\n\n"), nil
}

func docxParagraph(p *etree.Element) string {
	var b strings.Builder
	walk(p, func(el *etree.Element) {
		switch el.Tag {
		case "t":
			b.WriteString(el.Text())
		case "tab":
			b.WriteByte('\t')
		case "br", "cr":
			b.WriteByte('\n')
		}
	})
	text := strings.TrimSpace(b.String())
	if text == "" {
		return ""
	}
	if level := headingLevel(p); level > 0 {
		return strings.Repeat("#", level) + " " + text
	}
	return text
}

// headingLevel maps the paragraph style to a heading depth: "Title" is 1
// and "HeadingN" is N. Zero means body text.
func headingLevel(p *etree.Element) int {
	style := p.FindElement("./w:pPr/w:pStyle")
	if style == nil {
		return 0
	}
	val := strings.ToLower(style.SelectAttrValue("w:val", ""))
	if val == "title" {
		return 1
	}
	n, ok := strings.CutPrefix(val, "heading")
	if !ok || len(n) != 1 || n[0] < '1' || n[0] > '6' {
		return 0
	}
	return int(n[0] - '0')
}

func docxTable(tbl *etree.Element) string {
	var rows []string
	for _, tr := range tbl.SelectElements("w:tr") {
		var cells []string
		for _, tc := range tr.SelectElements("w:tc") {
			var parts []string
			for _, p := range tc.SelectElements("w:p") {
				if text := docxParagraph(p); text != "" {
					parts = append(parts, text)
				}
			}
			cells = append(cells, strings.Join(parts, " "))
		}
		if len(cells) > 0 {
			rows = append(rows, "| "+strings.Join(cells, " | ")+" |")
		}
	}
	return strings.Join(rows, "\n")
}

func openArchive(data []byte) (*zip.Reader, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "not an office document: %v", err)
	}
	return archive, nil
}

func readPart(archive *zip.Reader, name string) (*etree.Document, error) {
	f, err := archive.Open(name)
	if err != nil {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "missing part %s", name)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return doc, nil
}

// walk visits the descendants of e depth first in document order. Path
// queries with "//" visit breadth first, which reorders text split across
// nested runs.
func walk(e *etree.Element, fn func(*etree.Element)) {
	for _, c := range e.ChildElements() {
		fn(c)
		walk(c, fn)
	}
}
