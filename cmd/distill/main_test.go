package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/distill/cmd/distill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><head><title>Sample Page</title>
<meta property="og:site_name" content="Sample Site"></head><body>
<p>This paragraph is long enough to count.</p>
<img src="https://cdn.test/x/../a.png"><img src="b.png">
<a href="/about">About</a>
</body></html>`

func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "distill.db")
	m.Stdin = strings.NewReader("")
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires a command", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("prints help", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "extract")
		assert.Contains(t, stdout.String(), "inspect")
	})

	t.Run("rejects unknown engine", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"extract", "--engine", "magic", "page.html"}, stdout, stderr)

		require.Error(t, err)
	})

	t.Run("documents robots timeout flag", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		_ = newTestMain(t).Run(context.Background(), []string{"extract", "--help"}, stdout, stderr)

		assert.Contains(t, stdout.String(), "--robots-timeout")
	})

	t.Run("rejects malformed robots timeout", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"extract", "--robots-timeout", "soon", "https://site.test/"}, stdout, stderr)

		require.Error(t, err)
	})

	t.Run("lists an empty database", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"list"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No articles found")
	})

	t.Run("reports missing article", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"show", "nope"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), `article "nope" not found`)
	})

	t.Run("inspects a local file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte(samplePage), 0644))

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"inspect", path, "--base", "https://site.test/blog/"}, stdout, stderr)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "title:       Sample Page")
		assert.Contains(t, out, "paragraphs:  1")
		assert.Contains(t, out, "images:      2 (2 with src)")
		assert.Contains(t, out, "links:       1 resolvable")
		assert.Contains(t, out, "site:        Sample Site")
	})

	t.Run("inspects stdin", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		m.Stdin = strings.NewReader(samplePage)

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"inspect", "-"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "links:       0 resolvable")
	})
}
