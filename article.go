package distill

import (
	"context"
	"time"
)

// Article represents the main content extracted from an HTML page.
type Article struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	SiteName    string    `json:"siteName"`
	ContentHTML string    `json:"contentHtml"`
	Content     string    `json:"content"` // Markdown
	ContentHash string    `json:"contentHash"`
	Metrics     Metrics   `json:"metrics"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	return nil
}

// ArticleWriter persists extracted articles.
type ArticleWriter interface {
	CreateArticle(ctx context.Context, article *Article) error
}

// ArticleService represents a service for managing extracted articles.
type ArticleService interface {
	// CreateArticle stores a new article, assigning its ID and content hash.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter, newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if the article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
