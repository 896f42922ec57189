package goquery

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsmcp"
)

var _ docsmcp.MarkdownRenderer = (*MarkdownRenderer)(nil)

var (
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
	spacesRe     = regexp.MustCompile(` +`)
)

// MarkdownRenderer emits Markdown markers by rewriting elements in place
// and then taking the text of the document. Nested markup inside a
// rewritten element is flattened to its text.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a new MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts html to Markdown-flavoured plain text.
func (r *MarkdownRenderer) Render(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docsmcp.Errorf(docsmcp.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript").Remove()

	for level := 1; level <= 6; level++ {
		doc.Find(fmt.Sprintf("h%d", level)).Each(func(_ int, s *goquery.Selection) {
			s.SetText(fmt.Sprintf("\n\n%s %s\n\n", strings.Repeat("#", level), s.Text()))
		})
	}

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if text := s.Text(); href != "" && text != "" {
			s.SetText(fmt.Sprintf("[%s](%s)", text, href))
		}
	})

	doc.Find("pre").Each(func(_ int, s *goquery.Selection) {
		s.SetText(fmt.Sprintf("\n\n```\n%s\n```\n\n", s.Text()))
	})

	doc.Find("code").Each(func(_ int, s *goquery.Selection) {
		if s.Parent().Is("pre") {
			return
		}
		s.SetText("`" + s.Text() + "`")
	})

	doc.Find("ul").Each(func(_ int, list *goquery.Selection) {
		list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			li.SetText("\n- " + li.Text())
		})
	})

	doc.Find("ol").Each(func(_ int, list *goquery.Selection) {
		list.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
			li.SetText(fmt.Sprintf("\n%d. %s", i+1, li.Text()))
		})
	})

	doc.Find("blockquote").Each(func(_ int, s *goquery.Selection) {
		s.SetText("\n> " + s.Text() + "\n")
	})

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		s.SetText(s.Text() + "\n\n")
	})

	text := blankLinesRe.ReplaceAllString(doc.Text(), "\n\n")
	text = spacesRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text), nil
}
