package mock

import (
	"context"

	"github.com/fwojciec/distill"
)

var _ distill.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of distill.ArticleWriter.
type ArticleWriter struct {
	CreateArticleFn func(ctx context.Context, article *distill.Article) error
}

func (w *ArticleWriter) CreateArticle(ctx context.Context, article *distill.Article) error {
	return w.CreateArticleFn(ctx, article)
}
