package html

import (
	"strings"

	"golang.org/x/net/html"
)

// Untitled is returned by TextContent when a node holds no visible text.
const Untitled = "Untitled"

// SubstantialTextLength is the minimum trimmed length, in bytes, of a text
// node counted by SubstantialTextChildCount.
const SubstantialTextLength = 20

// TextContent concatenates the trimmed value of every text node below n,
// without separators. It returns Untitled when the result is empty, so it
// is safe to use for titles.
func TextContent(n *html.Node) string {
	if n == nil {
		return Untitled
	}
	var b strings.Builder
	walkChildren(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(c.Data))
		}
		return true
	})
	if b.Len() == 0 {
		return Untitled
	}
	return b.String()
}

// ChildrenTextContent concatenates the trimmed text of n's direct text
// children. When deep is set, element children contribute their text under
// the same rule. The result may be empty.
func ChildrenTextContent(n *html.Node, deep bool) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	walkChildren(n, func(c *html.Node) bool {
		switch c.Type {
		case html.TextNode:
			b.WriteString(strings.TrimSpace(c.Data))
		case html.ElementNode:
			return deep
		}
		return false
	})
	return b.String()
}

// TextLength sums the raw byte length of every text node reachable from n
// through elements. Whitespace counts.
func TextLength(n *html.Node) int {
	if n == nil {
		return 0
	}
	var total int
	walkChildren(n, func(c *html.Node) bool {
		switch c.Type {
		case html.TextNode:
			total += len(c.Data)
		case html.ElementNode:
			return true
		}
		return false
	})
	return total
}

// SubstantialTextChildCount counts the direct text children of n whose
// trimmed length is at least SubstantialTextLength. Text inside child
// elements is not considered.
func SubstantialTextChildCount(n *html.Node) int {
	if n == nil {
		return 0
	}
	var count int
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && len(strings.TrimSpace(c.Data)) >= SubstantialTextLength {
			count++
		}
	}
	return count
}
