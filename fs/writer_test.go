package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jinhoo5694/newsharvest"
	"github.com/jinhoo5694/newsharvest/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validArticle(title string) *newsharvest.Article {
	return &newsharvest.Article{
		Title:     title,
		Content:   "# " + title + "\n\nBody text.",
		Source:    "example.com",
		SourceURL: "https://example.com/post",
		Category:  newsharvest.CategoryDev,
		Language:  newsharvest.LanguageEnglish,
	}
}

func TestWriter_WriteArticles(t *testing.T) {
	t.Parallel()

	t.Run("writes a pretty-printed JSON array", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "articles.json")
		w := fs.NewWriter(path)

		articles := []*newsharvest.Article{validArticle("First"), validArticle("Second")}
		require.NoError(t, w.WriteArticles(context.Background(), articles))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var got []*newsharvest.Article
		require.NoError(t, json.Unmarshal(data, &got))
		require.Len(t, got, 2)
		assert.Equal(t, "First", got[0].Title)
		assert.Equal(t, newsharvest.CategoryDev, got[0].Category)

		// Pretty-printed, newline-terminated.
		assert.Contains(t, string(data), "\n  {")
		assert.Equal(t, byte('\n'), data[len(data)-1])
	})

	t.Run("nil slice produces an empty array", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "articles.json")
		w := fs.NewWriter(path)

		require.NoError(t, w.WriteArticles(context.Background(), nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "nested", "articles.json")
		w := fs.NewWriter(path)

		require.NoError(t, w.WriteArticles(context.Background(), nil))

		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("replaces an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "articles.json")
		require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

		w := fs.NewWriter(path)
		require.NoError(t, w.WriteArticles(context.Background(), []*newsharvest.Article{validArticle("Fresh")}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "stale")
		assert.Contains(t, string(data), "Fresh")
	})

	t.Run("rejects invalid articles without writing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "articles.json")
		w := fs.NewWriter(path)

		invalid := validArticle("No Body")
		invalid.Content = ""

		err := w.WriteArticles(context.Background(), []*newsharvest.Article{invalid})
		require.Error(t, err)
		assert.Equal(t, newsharvest.EINVALID, newsharvest.ErrorCode(err))

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "articles.json")
		w := fs.NewWriter(path)

		require.NoError(t, w.WriteArticles(context.Background(), []*newsharvest.Article{validArticle("Only")}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "articles.json", entries[0].Name())
	})
}
