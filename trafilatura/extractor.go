// Package trafilatura adapts go-trafilatura as a distill.Extractor.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/fwojciec/distill"
	dhtml "github.com/fwojciec/distill/html"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements distill.Extractor at compile time.
var _ distill.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	fallback bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFallback toggles trafilatura's readability and dom-distiller fallback
// extractors. Enabled by default.
func WithFallback(enabled bool) Option {
	return func(e *Extractor) {
		e.fallback = enabled
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{fallback: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string, sourceURL string) (*distill.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, distill.Errorf(distill.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: e.fallback,
	}
	if sourceURL != "" {
		u, err := url.Parse(sourceURL)
		if err != nil {
			return nil, distill.Errorf(distill.EINVALID, "invalid source URL: %v", err)
		}
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = dhtml.Render(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &distill.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		Excerpt:     strings.TrimSpace(result.Metadata.Description),
		ContentHTML: contentHTML,
	}, nil
}
