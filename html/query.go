package html

import (
	"strings"

	"golang.org/x/net/html"
)

// FindByTag returns every element below root whose local name matches tag,
// ignoring case. Matches come back in document order and may nest: the
// descendants of a match are searched too. root itself is never included.
// The boolean reports whether anything matched.
func FindByTag(root *html.Node, tag string) ([]*html.Node, bool) {
	var nodes []*html.Node
	if root == nil {
		return nodes, false
	}
	walkChildren(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes, len(nodes) > 0
}
