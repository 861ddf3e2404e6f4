package mock

import (
	"context"

	"github.com/jinhoo5694/newsharvest"
)

var _ newsharvest.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of newsharvest.ArticleWriter.
type ArticleWriter struct {
	WriteArticlesFn func(ctx context.Context, articles []*newsharvest.Article) error
}

func (w *ArticleWriter) WriteArticles(ctx context.Context, articles []*newsharvest.Article) error {
	return w.WriteArticlesFn(ctx, articles)
}
