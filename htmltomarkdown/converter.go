// Package htmltomarkdown converts extracted article HTML to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/distill"
	dhtml "github.com/fwojciec/distill/html"
	"golang.org/x/net/html"
)

// Ensure Converter implements distill.Converter at compile time.
var _ distill.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter with CommonMark and table support.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert parses HTML content and renders it as Markdown.
func (c *Converter) Convert(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", distill.Errorf(distill.EINVALID, "empty HTML input")
	}

	doc, err := dhtml.ParseString(rawHTML)
	if err != nil {
		return "", err
	}

	return c.ConvertNode(doc)
}

// ConvertNode renders an already parsed tree as Markdown.
func (c *Converter) ConvertNode(n *html.Node) (string, error) {
	md, err := c.conv.ConvertNode(n)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(md)), nil
}
