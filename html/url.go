package html

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// FixImgPath rewrites the src attribute of an image against base.
//
// Only values starting with "https://" are joined and written back;
// protocol-relative and "http://" values are left alone, and so are plain
// relative paths. Use ResolveAttr to make relative references absolute.
// A failed join leaves the value untouched. The result reports whether the
// node has a src attribute at all.
func FixImgPath(n *html.Node, base *url.URL) bool {
	src, ok := AttrByName(n, "src")
	if !ok {
		return false
	}
	if !strings.HasPrefix(src, "//") && !strings.HasPrefix(src, "http://") && strings.HasPrefix(src, "https://") {
		if abs, err := join(base, src); err == nil {
			SetAttr(n, "src", abs)
		}
	}
	return true
}

// ResolveAttr makes the named attribute of n absolute with respect to base.
// Relative paths, dot segments, absolute paths and protocol-relative
// references are resolved; empty values, fragment-only values and
// non-HTTP schemes are skipped. It reports whether the value was rewritten.
func ResolveAttr(n *html.Node, name string, base *url.URL) bool {
	val, ok := AttrByName(n, name)
	if !ok {
		return false
	}
	ref := strings.TrimSpace(val)
	if ref == "" || strings.HasPrefix(ref, "#") || isNonHTTPLink(ref) {
		return false
	}
	abs, err := join(base, ref)
	if err != nil || abs == val {
		return false
	}
	return setAttr(n, name, abs) != attrSkipped
}

// join resolves ref against base per RFC 3986.
func join(base *url.URL, ref string) (string, error) {
	if base == nil {
		return "", errNoBase
	}
	u, err := base.Parse(ref)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// isNonHTTPLink checks if a reference uses a scheme that cannot be resolved
// to a fetchable resource.
func isNonHTTPLink(ref string) bool {
	ref = strings.ToLower(ref)
	return strings.HasPrefix(ref, "javascript:") ||
		strings.HasPrefix(ref, "mailto:") ||
		strings.HasPrefix(ref, "tel:") ||
		strings.HasPrefix(ref, "data:")
}
