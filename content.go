package docsmcp

// Normalized is the result of turning a raw HTML page into Markdown.
type Normalized struct {
	// MainHTML is the HTML the Markdown was produced from: the reader-mode
	// fragment, the selected DOM subtree or the raw input.
	MainHTML string

	// Markdown is the cleaned text. It is empty only for empty input.
	Markdown string
}

// Normalizer converts raw HTML into Markdown. It never fails; weaker
// conversion strategies are used when stronger ones are unavailable.
type Normalizer interface {
	Normalize(rawHTML string) Normalized
}

// ContentSelector picks the main content subtree of a page after
// removing navigation and other clutter.
type ContentSelector interface {
	SelectContent(html string) (string, error)
}

// MarkdownRenderer renders HTML to Markdown element by element without a
// full conversion library.
type MarkdownRenderer interface {
	Render(html string) (string, error)
}
