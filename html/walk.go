// Package html implements DOM traversal and measurement on top of
// golang.org/x/net/html. It locates elements by tag, aggregates and measures
// text, reads and writes attributes, and makes resource URLs absolute.
//
// All functions operate on trees produced by Parse (or html.Parse) and never
// walk upward. None of them lock: callers must not mutate a tree while other
// goroutines read it.
package html

import (
	"strings"

	"golang.org/x/net/html"
)

// Walk visits root and its descendants in pre-order, children in document
// order. If fn returns false the children of that node are skipped and the
// walk continues with its next sibling.
//
// The walk keeps its own stack, so arbitrarily deep documents do not grow
// the goroutine stack.
func Walk(root *html.Node, fn func(*html.Node) bool) {
	if root == nil {
		return
	}
	stack := []*html.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			continue
		}
		// Push in reverse so the first child is popped first.
		for c := n.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
}

// walkChildren walks every child subtree of n, leaving n itself unvisited.
func walkChildren(n *html.Node, fn func(*html.Node) bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, fn)
	}
}

// TagName returns "document" for a document node and the lower-cased local
// name for an element. Other node types report false.
func TagName(n *html.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	switch n.Type {
	case html.DocumentNode:
		return "document", true
	case html.ElementNode:
		return strings.ToLower(n.Data), true
	}
	return "", false
}
