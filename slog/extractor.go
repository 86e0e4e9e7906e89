package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/distill"
)

// Ensure LoggingExtractor implements distill.Extractor.
var _ distill.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs each extraction at Info level.
type LoggingExtractor struct {
	next   distill.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next distill.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs how much content
// survived boilerplate removal.
func (e *LoggingExtractor) Extract(html string, sourceURL string) (result *distill.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var contentBytes int
		if result != nil {
			title = result.Title
			contentBytes = len(result.ContentHTML)
		}
		e.logger.Info("extract",
			"url", sourceURL,
			"title", title,
			"input_bytes", len(html),
			"content_bytes", contentBytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, sourceURL)
}
