package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ distill.ArticleWriter = &mock.ArticleWriter{}
	var _ distill.ArticleWriter = &mock.ArticleService{}
}

func TestArticleWriter_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateArticleFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *distill.Article
		w := &mock.ArticleWriter{
			CreateArticleFn: func(_ context.Context, article *distill.Article) error {
				calledWith = article
				return nil
			},
		}

		article := &distill.Article{
			SourceURL: "https://example.com/post",
			Title:     "Test Post",
			Content:   "Test content",
		}

		err := w.CreateArticle(context.Background(), article)

		require.NoError(t, err)
		assert.Equal(t, article, calledWith)
	})
}
