package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/jinhoo5694/newsharvest"
)

// Compile-time interface verification.
var _ newsharvest.ArticleService = (*ArticleService)(nil)

// ArticleService implements newsharvest.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateArticle creates a new article. The ID, fetch timestamp, and
// content hash are assigned here, not by the caller.
func (s *ArticleService) CreateArticle(ctx context.Context, article *newsharvest.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}
	if article.RunID == "" {
		return newsharvest.Errorf(newsharvest.EINVALID, "article run id required")
	}

	article.ID = uuid.New().String()
	article.FetchedAt = time.Now().UTC()
	article.ContentHash = hashContent(article.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, run_id, title, content, source, source_url, category, language, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.RunID, article.Title, article.Content, article.Source, article.SourceURL,
		string(article.Category), article.Language, article.ContentHash, article.FetchedAt.Format(time.RFC3339))

	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsharvest.Article, error) {
	var article newsharvest.Article
	var category, fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, run_id, title, content, source, source_url, category, language, content_hash, fetched_at
		FROM articles
		WHERE id = ?
	`, id).Scan(&article.ID, &article.RunID, &article.Title, &article.Content, &article.Source,
		&article.SourceURL, &category, &article.Language, &article.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, newsharvest.Errorf(newsharvest.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	article.Category = newsharvest.Category(category)
	article.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// FindArticles retrieves articles matching the filter, most recent first.
func (s *ArticleService) FindArticles(ctx context.Context, filter newsharvest.ArticleFilter) ([]*newsharvest.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, run_id, title, content, source, source_url, category, language, content_hash, fetched_at FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, string(*filter.Category))
	}

	query.WriteString(" ORDER BY fetched_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*newsharvest.Article
	for rows.Next() {
		var article newsharvest.Article
		var category, fetchedAt string

		if err := rows.Scan(&article.ID, &article.RunID, &article.Title, &article.Content, &article.Source,
			&article.SourceURL, &category, &article.Language, &article.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		article.Category = newsharvest.Category(category)
		article.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		articles = append(articles, &article)
	}

	return articles, rows.Err()
}

// DeleteArticlesByRun removes all articles recorded by a crawl run.
func (s *ArticleService) DeleteArticlesByRun(ctx context.Context, runID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE run_id = ?", runID)
	return err
}
