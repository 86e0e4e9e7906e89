package html_test

import (
	"testing"

	dhtml "github.com/fwojciec/distill/html"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// elem builds an element node with the given children.
func elem(tag string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// text builds a text node.
func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// comment builds a comment node.
func comment(s string) *html.Node {
	return &html.Node{Type: html.CommentNode, Data: s}
}

// parse parses markup and fails the test on error.
func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := dhtml.ParseString(markup)
	require.NoError(t, err)
	return doc
}

// first returns the first element named tag, failing the test when absent.
func first(t *testing.T, root *html.Node, tag string) *html.Node {
	t.Helper()
	nodes, ok := dhtml.FindByTag(root, tag)
	require.True(t, ok, "no <%s> element", tag)
	return nodes[0]
}

const sampleDocument = `<html><head><title>My Document</title></head><body><h1>Hello, world!</h1></body></html>`
