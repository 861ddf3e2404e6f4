package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/jinhoo5694/newsharvest"
	"github.com/jinhoo5694/newsharvest/mock"
	nhslog "github.com/jinhoo5694/newsharvest/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingArticleWriter_WriteArticles(t *testing.T) {
	t.Parallel()

	t.Run("logs count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleWriter{
			WriteArticlesFn: func(ctx context.Context, articles []*newsharvest.Article) error {
				return nil
			},
		}

		writer := nhslog.NewLoggingArticleWriter(inner, logger)
		err := writer.WriteArticles(context.Background(), []*newsharvest.Article{{Title: "One"}, {Title: "Two"}})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "write articles")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArticleWriter{
			WriteArticlesFn: func(ctx context.Context, articles []*newsharvest.Article) error {
				return newsharvest.Errorf(newsharvest.EINTERNAL, "disk full")
			},
		}

		writer := nhslog.NewLoggingArticleWriter(inner, logger)
		err := writer.WriteArticles(context.Background(), nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "disk full")
	})
}
