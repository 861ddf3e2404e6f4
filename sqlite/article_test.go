package sqlite_test

import (
	"context"
	"testing"

	"github.com/jinhoo5694/newsharvest"
	"github.com/jinhoo5694/newsharvest/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustCreateRun inserts a run record and returns it.
func mustCreateRun(tb testing.TB, db *sqlite.DB) *newsharvest.CrawlRun {
	tb.Helper()

	run := &newsharvest.CrawlRun{Pages: 5}
	require.NoError(tb, sqlite.NewRunService(db).CreateRun(context.Background(), run))
	return run
}

func testArticle(runID, title string) *newsharvest.Article {
	return &newsharvest.Article{
		RunID:     runID,
		Title:     title,
		Content:   "# " + title + "\n\nBody.",
		Source:    "example.com",
		SourceURL: "https://example.com/post",
		Category:  newsharvest.CategoryDev,
		Language:  newsharvest.LanguageEnglish,
	}
}

func TestArticleService_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("assigns id, timestamp, and content hash", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		run := mustCreateRun(t, db)
		s := sqlite.NewArticleService(db)

		article := testArticle(run.ID, "Stored")
		require.NoError(t, s.CreateArticle(context.Background(), article))

		assert.NotEmpty(t, article.ID)
		assert.NotEmpty(t, article.ContentHash)
		assert.False(t, article.FetchedAt.IsZero())

		got, err := s.FindArticleByID(context.Background(), article.ID)
		require.NoError(t, err)
		assert.Equal(t, "Stored", got.Title)
		assert.Equal(t, newsharvest.CategoryDev, got.Category)
		assert.Equal(t, article.ContentHash, got.ContentHash)
		assert.Equal(t, run.ID, got.RunID)
	})

	t.Run("same content yields same hash", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		run := mustCreateRun(t, db)
		s := sqlite.NewArticleService(db)

		a := testArticle(run.ID, "A")
		b := testArticle(run.ID, "B")
		b.Content = a.Content

		require.NoError(t, s.CreateArticle(context.Background(), a))
		require.NoError(t, s.CreateArticle(context.Background(), b))
		assert.Equal(t, a.ContentHash, b.ContentHash)
	})

	t.Run("rejects invalid articles", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		run := mustCreateRun(t, db)
		s := sqlite.NewArticleService(db)

		invalid := testArticle(run.ID, "")
		err := s.CreateArticle(context.Background(), invalid)
		require.Error(t, err)
		assert.Equal(t, newsharvest.EINVALID, newsharvest.ErrorCode(err))
	})

	t.Run("requires a run id", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewArticleService(db)

		err := s.CreateArticle(context.Background(), testArticle("", "Orphan"))
		require.Error(t, err)
		assert.Equal(t, newsharvest.EINVALID, newsharvest.ErrorCode(err))
	})
}

func TestArticleService_FindArticleByID(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for missing article", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewArticleService(db)

		_, err := s.FindArticleByID(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, newsharvest.ENOTFOUND, newsharvest.ErrorCode(err))
	})
}

func TestArticleService_FindArticles(t *testing.T) {
	t.Parallel()

	t.Run("filters by run", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewArticleService(db)

		run1 := mustCreateRun(t, db)
		run2 := mustCreateRun(t, db)
		require.NoError(t, s.CreateArticle(context.Background(), testArticle(run1.ID, "In Run One")))
		require.NoError(t, s.CreateArticle(context.Background(), testArticle(run2.ID, "In Run Two")))

		got, err := s.FindArticles(context.Background(), newsharvest.ArticleFilter{RunID: &run1.ID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "In Run One", got[0].Title)
	})

	t.Run("filters by category", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		run := mustCreateRun(t, db)
		s := sqlite.NewArticleService(db)

		ai := testArticle(run.ID, "Model Release")
		ai.Category = newsharvest.CategoryAI
		require.NoError(t, s.CreateArticle(context.Background(), ai))
		require.NoError(t, s.CreateArticle(context.Background(), testArticle(run.ID, "Build Notes")))

		category := newsharvest.CategoryAI
		got, err := s.FindArticles(context.Background(), newsharvest.ArticleFilter{Category: &category})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Model Release", got[0].Title)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		run := mustCreateRun(t, db)
		s := sqlite.NewArticleService(db)

		for _, title := range []string{"One", "Two", "Three"} {
			require.NoError(t, s.CreateArticle(context.Background(), testArticle(run.ID, title)))
		}

		got, err := s.FindArticles(context.Background(), newsharvest.ArticleFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = s.FindArticles(context.Background(), newsharvest.ArticleFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestArticleService_DeleteArticlesByRun(t *testing.T) {
	t.Parallel()

	t.Run("removes only the run's articles", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewArticleService(db)

		run1 := mustCreateRun(t, db)
		run2 := mustCreateRun(t, db)
		require.NoError(t, s.CreateArticle(context.Background(), testArticle(run1.ID, "Doomed")))
		require.NoError(t, s.CreateArticle(context.Background(), testArticle(run2.ID, "Survivor")))

		require.NoError(t, s.DeleteArticlesByRun(context.Background(), run1.ID))

		got, err := s.FindArticles(context.Background(), newsharvest.ArticleFilter{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Survivor", got[0].Title)
	})
}
