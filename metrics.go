package distill

// Metrics holds the text density signals measured on a document.
// They are produced by the DOM layer and interpreted by callers.
type Metrics struct {
	// Title is the document title, "Untitled" when none could be found.
	Title string `json:"title"`

	// TextLength is the untrimmed byte length of all text under the body.
	TextLength int `json:"textLength"`

	// Paragraphs counts blocks holding at least one direct text run of
	// substantial length.
	Paragraphs int `json:"paragraphs"`

	// Images is the number of img elements.
	Images int `json:"images"`

	// ImagesNormalized is the number of images that carried a src attribute
	// when image paths were fixed.
	ImagesNormalized int `json:"imagesNormalized"`

	// LinksResolved is the number of anchors whose href was made absolute.
	LinksResolved int `json:"linksResolved"`
}

// Metadata describes a page as declared by its head markup.
type Metadata struct {
	Title       string
	Description string
	SiteName    string
	Image       string
	Canonical   string
}

// MetadataReader reads page-level metadata from raw HTML.
type MetadataReader interface {
	ReadMetadata(html string) (*Metadata, error)
}
