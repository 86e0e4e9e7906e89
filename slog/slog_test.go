package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/mock"
	dslog "github.com/fwojciec/distill/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := dslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "level=INFO msg=fetch")
		assert.Contains(t, output, "url=https://example.com/post")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := dslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/post")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="network error"`)
	})

	t.Run("delegates close", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		fetcher := dslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs title and content size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html, sourceURL string) (*distill.ExtractResult, error) {
				return &distill.ExtractResult{Title: "Post", ContentHTML: "<p>hello</p>"}, nil
			},
		}

		ext := dslog.NewLoggingExtractor(inner, logger)
		result, err := ext.Extract("<html>page</html>", "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "Post", result.Title)
		output := buf.String()
		assert.Contains(t, output, "level=INFO msg=extract")
		assert.Contains(t, output, "title=Post")
		assert.Contains(t, output, "input_bytes=17")
		assert.Contains(t, output, "content_bytes=12")
	})

	t.Run("logs failures without result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html, sourceURL string) (*distill.ExtractResult, error) {
				return nil, distill.Errorf(distill.EINVALID, "empty HTML input")
			},
		}

		ext := dslog.NewLoggingExtractor(inner, logger)
		_, err := ext.Extract("", "")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "content_bytes=0")
		assert.Contains(t, buf.String(), "err=")
	})
}

func TestLoggingArticleWriter_CreateArticle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ArticleService{
		CreateArticleFn: func(ctx context.Context, article *distill.Article) error {
			article.ID = "abc"
			return nil
		},
	}

	w := dslog.NewLoggingArticleWriter(inner, logger)
	err := w.CreateArticle(context.Background(), &distill.Article{SourceURL: "https://example.com/post", Title: "Post"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `level=INFO msg="store article"`)
	assert.Contains(t, buf.String(), "id=abc")
	assert.Contains(t, buf.String(), "url=https://example.com/post")
}
