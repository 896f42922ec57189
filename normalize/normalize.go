// Package normalize turns raw HTML pages into Markdown through a tiered
// fallback pipeline. Each stage runs only when the stages before it are
// unavailable or produce nothing, and the last stage needs no parser at
// all, so Normalize always returns usable text.
package normalize

import (
	"regexp"
	"strings"

	"github.com/fwojciec/docsmcp"
)

var _ docsmcp.Normalizer = (*Normalizer)(nil)

// Normalizer holds the optional collaborators of each stage. A nil
// collaborator marks its stage as unavailable.
type Normalizer struct {
	// Extractors are reader-mode extractors in priority order.
	Extractors []docsmcp.Extractor
	Selector   docsmcp.ContentSelector
	Converter  docsmcp.Converter
	Renderer   docsmcp.MarkdownRenderer
}

// New assembles a Normalizer from its collaborators.
func New(extractors []docsmcp.Extractor, selector docsmcp.ContentSelector, converter docsmcp.Converter, renderer docsmcp.MarkdownRenderer) *Normalizer {
	return &Normalizer{
		Extractors: extractors,
		Selector:   selector,
		Converter:  converter,
		Renderer:   renderer,
	}
}

// Normalize converts rawHTML to Markdown. It never fails.
func (n *Normalizer) Normalize(rawHTML string) docsmcp.Normalized {
	if strings.TrimSpace(rawHTML) == "" {
		return docsmcp.Normalized{}
	}

	if out, ok := n.readerMode(rawHTML); ok {
		return out
	}
	if out, ok := n.selectContent(rawHTML); ok {
		return out
	}
	if n.Selector == nil {
		if md, ok := n.render(rawHTML); ok {
			return docsmcp.Normalized{MainHTML: rawHTML, Markdown: md}
		}
	}
	return docsmcp.Normalized{MainHTML: rawHTML, Markdown: StripTags(rawHTML)}
}

// readerMode extracts the article with the first extractor that finds
// one, then converts it, prefixing the title as a top-level heading.
// When conversion fails the fragment is rendered manually without the
// title.
func (n *Normalizer) readerMode(rawHTML string) (docsmcp.Normalized, bool) {
	for _, ext := range n.Extractors {
		if ext == nil {
			continue
		}
		res, err := ext.Extract(rawHTML)
		if err != nil || res == nil || strings.TrimSpace(res.ContentHTML) == "" {
			continue
		}

		if md, ok := n.convert(res.ContentHTML); ok {
			if res.Title != "" {
				md = "# " + res.Title + "\n\n" + md
			}
			return docsmcp.Normalized{MainHTML: res.ContentHTML, Markdown: md}, true
		}
		if md, ok := n.render(res.ContentHTML); ok {
			return docsmcp.Normalized{MainHTML: res.ContentHTML, Markdown: md}, true
		}
		return docsmcp.Normalized{}, false
	}
	return docsmcp.Normalized{}, false
}

func (n *Normalizer) selectContent(rawHTML string) (docsmcp.Normalized, bool) {
	if n.Selector == nil {
		return docsmcp.Normalized{}, false
	}
	fragment, err := n.Selector.SelectContent(rawHTML)
	if err != nil || strings.TrimSpace(fragment) == "" {
		return docsmcp.Normalized{}, false
	}
	if md, ok := n.convert(fragment); ok {
		return docsmcp.Normalized{MainHTML: fragment, Markdown: md}, true
	}
	if md, ok := n.render(fragment); ok {
		return docsmcp.Normalized{MainHTML: fragment, Markdown: md}, true
	}
	return docsmcp.Normalized{}, false
}

func (n *Normalizer) convert(fragment string) (string, bool) {
	if n.Converter == nil {
		return "", false
	}
	md, err := n.Converter.Convert(fragment)
	if err != nil {
		return "", false
	}
	md = strings.TrimSpace(md)
	return md, md != ""
}

func (n *Normalizer) render(fragment string) (string, bool) {
	if n.Renderer == nil {
		return "", false
	}
	md, err := n.Renderer.Render(fragment)
	if err != nil {
		return "", false
	}
	md = strings.TrimSpace(md)
	return md, md != ""
}

var (
	scriptStyleRe = regexp.MustCompile(`(?is)<script\b.*?</script\s*>|<style\b.*?</style\s*>`)
	lineBreakRe   = regexp.MustCompile(`(?i)<br\s*/?>`)
	paragraphRe   = regexp.MustCompile(`(?i)</p\s*>`)
	tagRe         = regexp.MustCompile(`<[^>]+>`)
	blankLinesRe  = regexp.MustCompile(`\n{3,}`)
)

// StripTags is the parser-free last resort: it drops script and style
// blocks, turns <br> into a newline and </p> into a blank line, removes
// every remaining tag and collapses runs of three or more newlines.
func StripTags(rawHTML string) string {
	text := scriptStyleRe.ReplaceAllString(rawHTML, "")
	text = lineBreakRe.ReplaceAllString(text, "\n")
	text = paragraphRe.ReplaceAllString(text, "\n\n")
	text = tagRe.ReplaceAllString(text, "")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
