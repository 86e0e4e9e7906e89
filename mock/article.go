package mock

import (
	"context"

	"github.com/fwojciec/distill"
)

var _ distill.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of distill.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *distill.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*distill.Article, error)
	FindArticlesFn    func(ctx context.Context, filter distill.ArticleFilter) ([]*distill.Article, error)
	DeleteArticleFn   func(ctx context.Context, id string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *distill.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*distill.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter distill.ArticleFilter) ([]*distill.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}
