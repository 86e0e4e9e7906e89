// Package fs provides file-based output for extracted articles.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/distill"
)

// URLToPath converts an article URL to a relative file path rooted at the
// host, using ext as the file extension.
// Example: https://example.com/blog/post.html → example.com/blog/post.md
func URLToPath(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", distill.Errorf(distill.EINVALID, "URL has no host: %s", rawURL)
	}

	host := strings.ToLower(u.Hostname())
	p := path.Clean("/" + u.Path)

	// Root or trailing slash → index in that directory.
	if p == "/" {
		return host + "/index" + ext, nil
	}
	if strings.HasSuffix(u.Path, "/") {
		return host + p + "/index" + ext, nil
	}

	p = strings.TrimSuffix(p, path.Ext(p))
	return host + p + ext, nil
}

// FormatArticle formats an article body with YAML frontmatter.
func FormatArticle(article *distill.Article, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(article.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(strconv.Quote(article.Title))
	if article.SiteName != "" {
		b.WriteString("\nsite: ")
		b.WriteString(strconv.Quote(article.SiteName))
	}
	b.WriteString("\nextracted: ")
	b.WriteString(article.ExtractedAt.Format("2006-01-02"))
	b.WriteString("\nlength: ")
	b.WriteString(strconv.Itoa(article.Metrics.TextLength))
	b.WriteString("\n---\n\n")
	b.WriteString(body)
	return b.String()
}

// Ensure Writer implements distill.ArticleWriter at compile time.
var _ distill.ArticleWriter = (*Writer)(nil)

// Writer writes articles as files under a base directory.
type Writer struct {
	baseDir string
	html    bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithHTML writes the article's content HTML to .html files instead of
// Markdown.
func WithHTML() WriterOption {
	return func(w *Writer) {
		w.html = true
	}
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string, opts ...WriterOption) *Writer {
	w := &Writer{baseDir: baseDir}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// CreateArticle writes an article to disk.
func (w *Writer) CreateArticle(ctx context.Context, article *distill.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	ext, body := ".md", article.Content
	if w.html {
		ext, body = ".html", article.ContentHTML
	}

	relPath, err := URLToPath(article.SourceURL, ext)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content := body
	if !w.html {
		content = FormatArticle(article, body)
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}
