package html

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/distill"
	"golang.org/x/net/html"
)

var errNoBase = errors.New("no base URL")

// Parse reads an HTML document into a node tree.
// Read failures are reported as EINVALID; malformed markup is not an error.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, distill.Errorf(distill.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// ParseString parses an HTML document held in a string.
func ParseString(s string) (*html.Node, error) {
	return Parse(strings.NewReader(s))
}

// Render serializes n and its descendants.
func Render(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
