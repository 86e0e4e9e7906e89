package html

import (
	"net/url"

	"github.com/fwojciec/distill"
	"golang.org/x/net/html"
)

// Body returns the first body element below root, or root itself when the
// tree has none.
func Body(root *html.Node) *html.Node {
	if nodes, ok := FindByTag(root, "body"); ok {
		return nodes[0]
	}
	return root
}

// Title returns the text of the first title element, or Untitled.
func Title(root *html.Node) string {
	nodes, ok := FindByTag(root, "title")
	if !ok {
		return Untitled
	}
	return TextContent(nodes[0])
}

// Measure computes the text density signals of a parsed document.
// It does not modify the tree.
func Measure(root *html.Node) distill.Metrics {
	body := Body(root)
	m := distill.Metrics{
		Title:      Title(root),
		TextLength: TextLength(body),
		Paragraphs: SubstantialTextChildCount(body),
	}
	paragraphs, _ := FindByTag(body, "p")
	for _, p := range paragraphs {
		if SubstantialTextChildCount(p) > 0 {
			m.Paragraphs++
		}
	}
	images, _ := FindByTag(root, "img")
	m.Images = len(images)
	return m
}

// Normalize fixes image paths and resolves anchor targets against base,
// in place. It returns the number of images carrying a src and the number
// of links rewritten.
func Normalize(root *html.Node, base *url.URL) (images, links int) {
	imgs, _ := FindByTag(root, "img")
	for _, img := range imgs {
		if FixImgPath(img, base) {
			images++
		}
	}
	anchors, _ := FindByTag(root, "a")
	for _, a := range anchors {
		if ResolveAttr(a, "href", base) {
			links++
		}
	}
	return images, links
}
