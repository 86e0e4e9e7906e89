package html

import "golang.org/x/net/html"

// SetAttrStatus exposes the outcome of an attribute write to tests.
func SetAttrStatus(n *html.Node, name, value string) string {
	switch setAttr(n, name, value) {
	case attrReplaced:
		return "replaced"
	case attrAppended:
		return "appended"
	}
	return "skipped"
}
