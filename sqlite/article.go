package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/distill"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ distill.ArticleService = (*ArticleService)(nil)

const articleColumns = `id, source_url, title, excerpt, site_name, content_html, content, content_hash,
	text_length, paragraphs, images, images_normalized, links_resolved, extracted_at`

// ArticleService implements distill.ArticleService using SQLite.
type ArticleService struct {
	db  *DB
	now func() time.Time
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db, now: time.Now}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateArticle stores a new article, assigning ID, content hash and
// extraction time. The metrics title mirrors the article title.
func (s *ArticleService) CreateArticle(ctx context.Context, article *distill.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.ContentHash = hashContent(article.Content)
	if article.ExtractedAt.IsZero() {
		article.ExtractedAt = s.now().UTC()
	}
	m := article.Metrics

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (`+articleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.SourceURL, article.Title, article.Excerpt, article.SiteName,
		article.ContentHTML, article.Content, article.ContentHash,
		m.TextLength, m.Paragraphs, m.Images, m.ImagesNormalized, m.LinksResolved,
		article.ExtractedAt.UTC().Format(timeLayout))

	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*distill.Article, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+articleColumns+" FROM articles WHERE id = ?", id)
	article, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, distill.Errorf(distill.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter distill.ArticleFilter) ([]*distill.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY extracted_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*distill.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return distill.Errorf(distill.ENOTFOUND, "article not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (*distill.Article, error) {
	var a distill.Article
	var extractedAt string

	if err := row.Scan(&a.ID, &a.SourceURL, &a.Title, &a.Excerpt, &a.SiteName,
		&a.ContentHTML, &a.Content, &a.ContentHash,
		&a.Metrics.TextLength, &a.Metrics.Paragraphs, &a.Metrics.Images,
		&a.Metrics.ImagesNormalized, &a.Metrics.LinksResolved, &extractedAt); err != nil {
		return nil, err
	}

	t, err := parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}
	a.ExtractedAt = t
	a.Metrics.Title = a.Title

	return &a, nil
}
