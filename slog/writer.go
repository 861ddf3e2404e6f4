package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jinhoo5694/newsharvest"
)

// Ensure LoggingArticleWriter implements newsharvest.ArticleWriter.
var _ newsharvest.ArticleWriter = (*LoggingArticleWriter)(nil)

// LoggingArticleWriter wraps an ArticleWriter with write logging.
type LoggingArticleWriter struct {
	next   newsharvest.ArticleWriter
	logger *slog.Logger
}

// NewLoggingArticleWriter creates a new LoggingArticleWriter.
func NewLoggingArticleWriter(next newsharvest.ArticleWriter, logger *slog.Logger) *LoggingArticleWriter {
	return &LoggingArticleWriter{next: next, logger: logger}
}

// WriteArticles delegates to the wrapped writer and logs the operation.
func (w *LoggingArticleWriter) WriteArticles(ctx context.Context, articles []*newsharvest.Article) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write articles",
			"count", len(articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteArticles(ctx, articles)
}
