package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/distill"
)

// Ensure LoggingArticleWriter implements distill.ArticleWriter.
var _ distill.ArticleWriter = (*LoggingArticleWriter)(nil)

// LoggingArticleWriter wraps an ArticleWriter and logs each store at Info level.
type LoggingArticleWriter struct {
	next   distill.ArticleWriter
	logger *slog.Logger
}

// NewLoggingArticleWriter creates a new LoggingArticleWriter.
func NewLoggingArticleWriter(next distill.ArticleWriter, logger *slog.Logger) *LoggingArticleWriter {
	return &LoggingArticleWriter{next: next, logger: logger}
}

// CreateArticle delegates to the wrapped writer and logs the stored article.
func (w *LoggingArticleWriter) CreateArticle(ctx context.Context, article *distill.Article) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("store article",
			"url", article.SourceURL,
			"id", article.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.CreateArticle(ctx, article)
}
