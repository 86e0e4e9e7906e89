package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// isURL reports whether source should be fetched rather than read from disk.
func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// readSource returns the HTML for a file path, URL, or "-" for stdin.
func readSource(deps *Dependencies, source string) (string, error) {
	switch {
	case source == "-":
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	case isURL(source):
		return deps.Fetcher.Fetch(deps.Ctx, source)
	default:
		b, err := os.ReadFile(source)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
