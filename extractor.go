package distill

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title as detected by the extractor. May be empty.
	Title string

	// Excerpt is a short summary of the content, when available.
	Excerpt string

	// ContentHTML is the main content as HTML with boilerplate removed.
	ContentHTML string
}

// Extractor decides which part of a page is the article.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// sourceURL is the page origin; it may be empty for local files.
	Extract(html string, sourceURL string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
