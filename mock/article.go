package mock

import (
	"context"

	"github.com/jinhoo5694/newsharvest"
)

var _ newsharvest.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of newsharvest.ArticleService.
type ArticleService struct {
	CreateArticleFn       func(ctx context.Context, article *newsharvest.Article) error
	FindArticleByIDFn     func(ctx context.Context, id string) (*newsharvest.Article, error)
	FindArticlesFn        func(ctx context.Context, filter newsharvest.ArticleFilter) ([]*newsharvest.Article, error)
	DeleteArticlesByRunFn func(ctx context.Context, runID string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *newsharvest.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsharvest.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter newsharvest.ArticleFilter) ([]*newsharvest.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticlesByRun(ctx context.Context, runID string) error {
	return s.DeleteArticlesByRunFn(ctx, runID)
}
