package docsmcp

// ExtractResult holds the reader-mode view of an HTML page.
type ExtractResult struct {
	// Title is the page title from metadata, possibly empty.
	Title string

	// ContentHTML is the main content fragment with boilerplate removed.
	ContentHTML string
}

// Extractor reduces a page to its main content, the way a browser's
// reader mode does.
type Extractor interface {
	// Extract returns the main content of html. An empty ContentHTML
	// means nothing usable was found.
	Extract(html string) (*ExtractResult, error)
}
