// Package readability adapts go-readability as a distill.Extractor.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/distill"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements distill.Extractor at compile time.
var _ distill.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string, sourceURL string) (*distill.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, distill.Errorf(distill.EINVALID, "empty HTML input")
	}

	pageURL, err := parsePageURL(sourceURL)
	if err != nil {
		return nil, err
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, err
	}

	return &distill.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		Excerpt:     strings.TrimSpace(article.Excerpt),
		ContentHTML: article.Content,
	}, nil
}

// parsePageURL returns nil for an empty source so local files can be
// extracted without an origin.
func parsePageURL(sourceURL string) (*url.URL, error) {
	if sourceURL == "" {
		return nil, nil
	}
	u, err := url.Parse(sourceURL)
	if err != nil {
		return nil, distill.Errorf(distill.EINVALID, "invalid source URL: %v", err)
	}
	return u, nil
}
