package main_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/distill"
	main "github.com/fwojciec/distill/cmd/distill"
	"github.com/fwojciec/distill/extract"
	"github.com/fwojciec/distill/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(articles distill.ArticleService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdin:    strings.NewReader(""),
		Stdout:   stdout,
		Stderr:   stderr,
		Articles: articles,
	}, stdout, stderr
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists articles with ID title and URL", func(t *testing.T) {
		t.Parallel()

		var gotFilter distill.ArticleFilter
		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, filter distill.ArticleFilter) ([]*distill.Article, error) {
				gotFilter = filter
				return []*distill.Article{
					{ID: "a-1", Title: "First", SourceURL: "https://site.test/1", ExtractedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
					{ID: "a-2", Title: "Second", SourceURL: "https://site.test/2", ExtractedAt: time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)},
				}, nil
			},
		}

		deps, stdout, _ := newDeps(articles)
		err := (&main.ListCmd{Limit: 5, URL: "https://site.test/1"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 5, gotFilter.Limit)
		require.NotNil(t, gotFilter.SourceURL)
		assert.Equal(t, "https://site.test/1", *gotFilter.SourceURL)
		assert.Contains(t, stdout.String(), "a-1  2025-01-15  First  https://site.test/1")
		assert.Contains(t, stdout.String(), "a-2  2025-01-16  Second  https://site.test/2")
	})

	t.Run("reports service errors", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ distill.ArticleFilter) ([]*distill.Article, error) {
				return nil, errors.New("db down")
			},
		}

		deps, _, stderr := newDeps(articles)
		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	article := &distill.Article{
		ID:          "a-1",
		SourceURL:   "https://site.test/post",
		Title:       "Post",
		ContentHTML: "<article><p>Body</p></article>",
		Content:     "Body",
	}
	articles := &mock.ArticleService{
		FindArticleByIDFn: func(_ context.Context, id string) (*distill.Article, error) {
			if id != "a-1" {
				return nil, distill.Errorf(distill.ENOTFOUND, "article not found")
			}
			return article, nil
		},
	}

	t.Run("prints markdown with frontmatter", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(articles)
		err := (&main.ShowCmd{ID: "a-1"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "source: https://site.test/post")
		assert.Contains(t, stdout.String(), "\nBody\n")
	})

	t.Run("prints content HTML", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(articles)
		err := (&main.ShowCmd{ID: "a-1", HTML: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "<article><p>Body</p></article>\n", stdout.String())
	})

	t.Run("explains missing article", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(articles)
		err := (&main.ShowCmd{ID: "missing"}).Run(deps)

		assert.Equal(t, distill.ENOTFOUND, distill.ErrorCode(err))
		assert.Contains(t, stderr.String(), `article "missing" not found`)
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(&mock.ArticleService{})
		err := (&main.DeleteCmd{ID: "a-1"}).Run(deps)

		assert.Equal(t, distill.EINVALID, distill.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes article", func(t *testing.T) {
		t.Parallel()

		var deleted string
		articles := &mock.ArticleService{
			DeleteArticleFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		deps, stdout, _ := newDeps(articles)
		err := (&main.DeleteCmd{ID: "a-1", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "a-1", deleted)
		assert.Contains(t, stdout.String(), "Deleted article a-1")
	})
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	newPipeline := func() *extract.Pipeline {
		return &extract.Pipeline{
			Extractor: &mock.Extractor{
				ExtractFn: func(html, sourceURL string) (*distill.ExtractResult, error) {
					if html == "" {
						return nil, distill.Errorf(distill.EINVALID, "empty HTML input")
					}
					return &distill.ExtractResult{Title: "Post", ContentHTML: "<p>Body text</p>"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) { return "Body text", nil },
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					if strings.HasSuffix(url, "/missing") {
						return "", distill.Errorf(distill.ENOTFOUND, "page not found")
					}
					return "<p>page</p>", nil
				},
			},
			RetryDelays: []time.Duration{},
		}
	}

	t.Run("extracts stdin to stdout", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(nil)
		deps.Stdin = strings.NewReader("<p>page</p>")
		deps.Pipeline = newPipeline()

		err := (&main.ExtractCmd{Sources: []string{"-"}, Format: "markdown"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "# Post\n\nBody text\n", stdout.String())
	})

	t.Run("prints HTML format", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(nil)
		deps.Stdin = strings.NewReader("<p>page</p>")
		deps.Pipeline = newPipeline()

		err := (&main.ExtractCmd{Sources: []string{"-"}, Format: "html", Base: "https://site.test/p"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `<article data-source="https://site.test/p"><p>Body text</p></article>`)
	})

	t.Run("runs URLs through the batch and counts failures", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(nil)
		deps.Pipeline = newPipeline()

		cmd := &main.ExtractCmd{
			Sources:     []string{"https://site.test/a", "https://site.test/missing", "https://site.test/a"},
			Format:      "markdown",
			Concurrency: 1,
		}
		err := cmd.Run(deps)

		require.EqualError(t, err, "1 of 3 sources failed")
		assert.Contains(t, stdout.String(), "# Post")
		assert.Contains(t, stderr.String(), "failed https://site.test/missing")
		assert.Contains(t, stderr.String(), "skipped 1 duplicate URLs")
	})

	t.Run("requires base to store local input", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(nil)
		deps.Stdin = strings.NewReader("<p>page</p>")
		deps.Pipeline = newPipeline()
		deps.Writer = &mock.ArticleWriter{
			CreateArticleFn: func(ctx context.Context, article *distill.Article) error { return nil },
		}

		err := (&main.ExtractCmd{Sources: []string{"-"}, Out: t.TempDir()}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "--base is required")
	})
}
