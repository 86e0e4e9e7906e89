package html

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CreateElement builds a detached element with no namespace, a copy of
// attrs, and no children. The caller decides where to insert it.
func CreateElement(tag string, attrs []html.Attribute) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if len(attrs) > 0 {
		n.Attr = append([]html.Attribute(nil), attrs...)
	}
	return n
}

// Wrap creates a tag element and moves nodes under it in order, detaching
// each from its current parent. Nil entries are skipped. The wrapper
// itself is left detached.
func Wrap(tag string, attrs []html.Attribute, nodes []*html.Node) *html.Node {
	wrapper := CreateElement(tag, attrs)
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		wrapper.AppendChild(n)
	}
	return wrapper
}

// Children returns the direct children of n as a slice.
func Children(n *html.Node) []*html.Node {
	var nodes []*html.Node
	if n == nil {
		return nodes
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		nodes = append(nodes, c)
	}
	return nodes
}
