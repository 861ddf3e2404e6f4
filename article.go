package newsharvest

import (
	"context"
	"time"
)

// LanguageEnglish marks article content for downstream translation.
// Source articles are assumed to be in the aggregator's dominant
// language; the publisher treats "en" as "translation pending", not as
// a detection result.
const LanguageEnglish = "en"

// MinContentLen is the minimum usable article body length in characters.
// Shorter extractions are discarded by the crawler.
const MinContentLen = 200

// Article is one extracted, classified article ready for publishing.
type Article struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Source      string    `json:"source"`
	SourceURL   string    `json:"sourceUrl"`
	Category    Category  `json:"category"`
	Language    string    `json:"language"`
	ContentHash string    `json:"contentHash,omitempty"`
	RunID       string    `json:"runId,omitempty"`
	FetchedAt   time.Time `json:"fetchedAt,omitzero"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.Content == "" {
		return Errorf(EINVALID, "article content required")
	}
	if a.Source == "" {
		return Errorf(EINVALID, "article source required")
	}
	if !a.Category.Valid() {
		return Errorf(EINVALID, "unknown category %q", a.Category)
	}
	return nil
}

// ArticleWriter writes a completed result set to an output artifact.
// Implementations must be atomic: consumers never observe a partially
// written result set.
type ArticleWriter interface {
	WriteArticles(ctx context.Context, articles []*Article) error
}

// ArticleService represents a service for managing stored articles.
type ArticleService interface {
	// CreateArticle creates a new article.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticlesByRun removes all articles recorded by a crawl run.
	DeleteArticlesByRun(ctx context.Context, runID string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID       *string   `json:"id"`
	RunID    *string   `json:"runId"`
	Category *Category `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
