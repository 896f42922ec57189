package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsmcp"
)

var _ docsmcp.ContentSelector = (*ContentSelector)(nil)

// clutterSelector matches elements that never hold documentation text.
const clutterSelector = "script, style, noscript, nav, footer, header, aside, iframe, form"

// mainContentSelectors are tried in order; the first match wins.
var mainContentSelectors = []string{
	"main",
	"article",
	`[role="main"]`,
	".content",
	"#content",
	".main",
	"#main",
}

// ContentSelector picks the main content of a page by DOM heuristics.
type ContentSelector struct{}

// NewContentSelector creates a new ContentSelector.
func NewContentSelector() *ContentSelector {
	return &ContentSelector{}
}

// SelectContent removes clutter and returns the outer HTML of the first
// main-content candidate, or of the whole cleaned document when no
// candidate matches.
func (s *ContentSelector) SelectContent(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docsmcp.Errorf(docsmcp.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docsmcp.Errorf(docsmcp.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(clutterSelector).Remove()

	for _, sel := range mainContentSelectors {
		if match := doc.Find(sel).First(); match.Length() > 0 {
			return goquery.OuterHtml(match)
		}
	}
	return doc.Html()
}
