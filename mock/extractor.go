package mock

import (
	"github.com/fwojciec/distill"
	"golang.org/x/net/html"
)

var _ distill.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of distill.Extractor.
type Extractor struct {
	ExtractFn func(html, sourceURL string) (*distill.ExtractResult, error)
}

func (e *Extractor) Extract(html, sourceURL string) (*distill.ExtractResult, error) {
	return e.ExtractFn(html, sourceURL)
}

var _ distill.MetadataReader = (*MetadataReader)(nil)

// MetadataReader is a mock implementation of distill.MetadataReader.
type MetadataReader struct {
	ReadMetadataFn func(html string) (*distill.Metadata, error)
}

func (r *MetadataReader) ReadMetadata(html string) (*distill.Metadata, error) {
	return r.ReadMetadataFn(html)
}

// NodeMetadataReader is a mock metadata reader that also reads parsed
// documents.
type NodeMetadataReader struct {
	MetadataReader
	ReadNodeFn func(root *html.Node) *distill.Metadata
}

func (r *NodeMetadataReader) ReadNode(root *html.Node) *distill.Metadata {
	return r.ReadNodeFn(root)
}
