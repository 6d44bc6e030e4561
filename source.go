package qbank

import "context"

// Source is a document location paired with the category its questions belong to.
type Source struct {
	Location string `json:"location" yaml:"location"`
	Category string `json:"category" yaml:"category"`
}

// RawDocument is the text of one source, held for the duration of an import run.
type RawDocument struct {
	Location string
	Category string
	Text     string
}

// Block is a contiguous span of a document delimited by a heading boundary.
// Heading is the boundary line with its marker removed; Text is the whole
// span including the heading line.
type Block struct {
	Heading string
	Text    string
	Line    int // 1-based line of the heading in the source document
}

// Fetcher retrieves the text of a document.
type Fetcher interface {
	// Fetch returns the body found at location.
	// Returns EUNAVAILABLE if the document cannot be retrieved.
	Fetch(ctx context.Context, location string) (string, error)
}

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title taken from document metadata.
	Title string

	// ContentHTML is the main content as HTML with page chrome removed.
	ContentHTML string
}

// Extractor reduces an HTML page to its main content.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}
