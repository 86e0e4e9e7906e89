// Package extract provides the article extraction pipeline.
// It coordinates fetching, content scoring, tree normalization,
// measurement, conversion, and storage of a single page or a batch.
package extract

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/distill"
	dhtml "github.com/fwojciec/distill/html"
	"golang.org/x/net/html"
)

// ArticleTag is the element that wraps extracted content.
const ArticleTag = "article"

// NodeConverter is implemented by converters that can render a parsed
// tree directly, skipping a render and reparse.
type NodeConverter interface {
	ConvertNode(n *html.Node) (string, error)
}

// NodeMetadataReader is implemented by metadata readers that can read an
// already parsed page.
type NodeMetadataReader interface {
	ReadNode(root *html.Node) *distill.Metadata
}

// Pipeline turns raw pages into articles.
// Extractor and Converter are required. The remaining collaborators are
// optional and skipped when nil.
type Pipeline struct {
	Extractor   distill.Extractor
	Converter   distill.Converter
	Metadata    distill.MetadataReader
	Fetcher     distill.Fetcher
	Robots      distill.RobotsPolicy
	Limiter     distill.DomainLimiter
	Writer      distill.ArticleWriter
	RetryDelays []time.Duration
}

// FromHTML extracts an article from raw page HTML.
// sourceURL may be empty, in which case relative references are left
// untouched.
func (p *Pipeline) FromHTML(raw, sourceURL string) (*distill.Article, error) {
	base, err := parseBase(sourceURL)
	if err != nil {
		return nil, err
	}

	result, err := p.Extractor.Extract(raw, sourceURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.ContentHTML) == "" {
		return nil, distill.Errorf(distill.EINVALID, "no content extracted from %s", displayURL(sourceURL))
	}

	doc, err := dhtml.ParseString(result.ContentHTML)
	if err != nil {
		return nil, err
	}

	images, links := dhtml.Normalize(doc, base)

	// Measured before wrapping so text sitting directly under body still
	// counts as a paragraph of body.
	metrics := dhtml.Measure(doc)
	metrics.ImagesNormalized = images
	metrics.LinksResolved = links

	body := dhtml.Body(doc)
	var attrs []html.Attribute
	if sourceURL != "" {
		attrs = append(attrs, html.Attribute{Key: "data-source", Val: sourceURL})
	}
	article := dhtml.Wrap(ArticleTag, attrs, dhtml.Children(body))
	body.AppendChild(article)

	page, err := dhtml.ParseString(raw)
	if err != nil {
		page = nil
	}
	meta := p.readMetadata(raw, page)
	title := p.chooseTitle(result.Title, meta.Title, page)
	metrics.Title = title

	contentHTML, err := dhtml.Render(article)
	if err != nil {
		return nil, fmt.Errorf("render article: %w", err)
	}

	markdown, err := p.convert(article, contentHTML)
	if err != nil {
		return nil, fmt.Errorf("convert article: %w", err)
	}

	excerpt := result.Excerpt
	if excerpt == "" {
		excerpt = meta.Description
	}

	return &distill.Article{
		SourceURL:   sourceURL,
		Title:       title,
		Excerpt:     excerpt,
		SiteName:    meta.SiteName,
		ContentHTML: contentHTML,
		Content:     markdown,
		Metrics:     metrics,
		ExtractedAt: time.Now().UTC(),
	}, nil
}

// FromURL fetches rawURL and extracts an article from it, persisting the
// result when a Writer is configured.
func (p *Pipeline) FromURL(ctx context.Context, rawURL string) (*distill.Article, error) {
	if p.Fetcher == nil {
		return nil, distill.Errorf(distill.EINTERNAL, "pipeline has no fetcher")
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, distill.Errorf(distill.EINVALID, "invalid URL: %s", rawURL)
	}

	if p.Robots != nil {
		allowed, err := p.Robots.Allowed(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, distill.Errorf(distill.EFORBIDDEN, "disallowed by robots.txt: %s", rawURL)
		}
	}

	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	raw, err := fetchWithRetry(ctx, rawURL, p.Fetcher.Fetch, p.retryDelays())
	if err != nil {
		return nil, err
	}

	article, err := p.FromHTML(raw, rawURL)
	if err != nil {
		return nil, err
	}

	if p.Writer != nil {
		if err := p.Writer.CreateArticle(ctx, article); err != nil {
			return nil, fmt.Errorf("store article: %w", err)
		}
	}

	return article, nil
}

func (p *Pipeline) retryDelays() []time.Duration {
	if p.RetryDelays == nil {
		return DefaultRetryDelays()
	}
	return p.RetryDelays
}

// readMetadata returns page metadata, or an empty value when no reader is
// configured or the page cannot be read. Missing metadata is not an error.
// Readers implementing NodeMetadataReader reuse the parsed page.
func (p *Pipeline) readMetadata(raw string, page *html.Node) *distill.Metadata {
	if p.Metadata == nil {
		return &distill.Metadata{}
	}
	if nr, ok := p.Metadata.(NodeMetadataReader); ok && page != nil {
		if meta := nr.ReadNode(page); meta != nil {
			return meta
		}
		return &distill.Metadata{}
	}
	meta, err := p.Metadata.ReadMetadata(raw)
	if err != nil || meta == nil {
		return &distill.Metadata{}
	}
	return meta
}

// chooseTitle picks the extractor title, then the metadata title, then
// the raw page's title element, falling back to Untitled.
func (p *Pipeline) chooseTitle(extracted, meta string, page *html.Node) string {
	if t := strings.TrimSpace(extracted); t != "" {
		return t
	}
	if t := strings.TrimSpace(meta); t != "" {
		return t
	}
	if page == nil {
		return dhtml.Untitled
	}
	if t := strings.TrimSpace(dhtml.Title(page)); t != "" {
		return t
	}
	return dhtml.Untitled
}

func (p *Pipeline) convert(article *html.Node, contentHTML string) (string, error) {
	if nc, ok := p.Converter.(NodeConverter); ok {
		return nc.ConvertNode(article)
	}
	return p.Converter.Convert(contentHTML)
}

func parseBase(sourceURL string) (*url.URL, error) {
	if sourceURL == "" {
		return nil, nil
	}
	u, err := url.Parse(sourceURL)
	if err != nil {
		return nil, distill.Errorf(distill.EINVALID, "invalid source URL: %v", err)
	}
	return u, nil
}

func displayURL(sourceURL string) string {
	if sourceURL == "" {
		return "input"
	}
	return sourceURL
}
