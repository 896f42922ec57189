package docsmcp

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	Convert(html string) (string, error)
}

// DocumentConverter converts a binary document (PDF, DOCX, PPTX) to
// Markdown or plain text.
type DocumentConverter interface {
	ConvertDocument(data []byte) (string, error)
}

// Binary document extensions handled by a DocumentConverter.
const (
	ExtPDF  = ".pdf"
	ExtDOCX = ".docx"
	ExtPPTX = ".pptx"
)

// DocumentExtensions lists the extensions routed to document conversion.
var DocumentExtensions = []string{ExtPDF, ExtDOCX, ExtPPTX}
