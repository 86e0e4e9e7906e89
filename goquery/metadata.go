package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/distill"
	"golang.org/x/net/html"
)

// Ensure MetadataReader implements distill.MetadataReader at compile time.
var _ distill.MetadataReader = (*MetadataReader)(nil)

// MetadataReader reads Open Graph, Twitter card and standard meta tags.
// Earlier selectors in each list take precedence.
type MetadataReader struct{}

// NewMetadataReader creates a new MetadataReader.
func NewMetadataReader() *MetadataReader {
	return &MetadataReader{}
}

// ReadMetadata parses raw HTML and returns the declared page metadata.
// Missing fields are left empty.
func (r *MetadataReader) ReadMetadata(rawHTML string) (*distill.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, distill.Errorf(distill.EINVALID, "failed to parse HTML: %v", err)
	}
	return readMetadata(doc), nil
}

// ReadNode reads metadata from an already parsed document.
func (r *MetadataReader) ReadNode(root *html.Node) *distill.Metadata {
	return readMetadata(goquery.NewDocumentFromNode(root))
}

func readMetadata(doc *goquery.Document) *distill.Metadata {
	return &distill.Metadata{
		Title: firstAttr(doc, "content",
			`meta[property="og:title"]`,
			`meta[name="twitter:title"]`,
		),
		Description: firstAttr(doc, "content",
			`meta[property="og:description"]`,
			`meta[name="description"]`,
			`meta[name="twitter:description"]`,
		),
		SiteName: firstAttr(doc, "content",
			`meta[property="og:site_name"]`,
			`meta[name="application-name"]`,
		),
		Image: firstAttr(doc, "content",
			`meta[property="og:image"]`,
			`meta[name="twitter:image"]`,
		),
		Canonical: firstNonEmpty(
			firstAttr(doc, "href", `link[rel="canonical"]`),
			firstAttr(doc, "content", `meta[property="og:url"]`),
		),
	}
}

// firstAttr returns the first non-blank attribute value found by the
// selectors, tried in order.
func firstAttr(doc *goquery.Document, attr string, selectors ...string) string {
	for _, selector := range selectors {
		var found string
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if val, ok := sel.Attr(attr); ok && strings.TrimSpace(val) != "" {
				found = strings.TrimSpace(val)
				return false
			}
			return true
		})
		if found != "" {
			return found
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
