package etree

import (
	"archive/zip"
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docsmcp"
)

var _ docsmcp.DocumentConverter = (*PPTXConverter)(nil)

// PPTXConverter converts PowerPoint decks, one section per slide.
type PPTXConverter struct{}

// NewPPTXConverter creates a new PPTXConverter.
func NewPPTXConverter() *PPTXConverter {
	return &PPTXConverter{}
}

// ConvertDocument returns the text of every slide in deck order, each
// under a "## Slide N" heading. Slides without text are omitted.
func (c *PPTXConverter) ConvertDocument(data []byte) (string, error) {
	archive, err := openArchive(data)
	if err != nil {
		return "", err
	}

	slides := slideParts(archive)
	if len(slides) == 0 {
		return "", docsmcp.Errorf(docsmcp.EINVALID, "pptx has no slides")
	}

	var sections []string
	for _, s := range slides {
		doc, err := readPart(archive, s.name)
		if err != nil {
			return "", err
		}
		var paras []string
		walk(&doc.Element, func(p *etree.Element) {
			if p.Space != "a" || p.Tag != "p" {
				return
			}
			var b strings.Builder
			walk(p, func(t *etree.Element) {
				if t.Space == "a" && t.Tag == "t" {
					b.WriteString(t.Text())
				}
			})
			if text := strings.TrimSpace(b.String()); text != "" {
				paras = append(paras, text)
			}
		})
		if len(paras) > 0 {
			sections = append(sections, fmt.Sprintf("## Slide %d\n\n%s", s.number, strings.Join(paras, "\n")))
		}
	}
	return strings.Join(sections, "\n\n"), nil
}

type slidePart struct {
	name   string
	number int
}

// slideParts lists ppt/slides/slideN.xml in numeric order.
func slideParts(archive *zip.Reader) []slidePart {
	var parts []slidePart
	for _, f := range archive.File {
		dir, file := path.Split(f.Name)
		if dir != "ppt/slides/" {
			continue
		}
		num, ok := strings.CutPrefix(strings.TrimSuffix(file, ".xml"), "slide")
		if !ok || !strings.HasSuffix(file, ".xml") {
			continue
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			continue
		}
		parts = append(parts, slidePart{name: f.Name, number: n})
	}
	slices.SortFunc(parts, func(a, b slidePart) int { return a.number - b.number })
	return parts
}
