package html

import (
	"slices"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Attr returns the value of the first attribute whose key is name.
// Namespaces are ignored.
func Attr(name string, attrs []html.Attribute) (string, bool) {
	for _, a := range attrs {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Attrs collects the attributes whose keys appear in names. When a key is
// repeated the last value wins.
func Attrs(names []string, attrs []html.Attribute) map[string]string {
	m := make(map[string]string)
	for _, a := range attrs {
		if slices.Contains(names, a.Key) {
			m[a.Key] = a.Val
		}
	}
	return m
}

// AttrByName returns the named attribute of an element node.
// Any other node type reports false.
func AttrByName(n *html.Node, name string) (string, bool) {
	if n == nil || n.Type != html.ElementNode {
		return "", false
	}
	return Attr(name, n.Attr)
}

// SetAttr overwrites the first attribute called name, keeping its position
// and namespace, or appends a new one. Writes to non-element nodes and
// values that are not valid UTF-8 are dropped silently.
func SetAttr(n *html.Node, name, value string) {
	setAttr(n, name, value)
}

type attrWrite int

const (
	attrSkipped attrWrite = iota
	attrReplaced
	attrAppended
)

func setAttr(n *html.Node, name, value string) attrWrite {
	if n == nil || n.Type != html.ElementNode || !utf8.ValidString(value) {
		return attrSkipped
	}
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return attrReplaced
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
	return attrAppended
}
