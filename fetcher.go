package distill

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the HTML served at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// RobotsPolicy reports whether a URL may be fetched under the site's
// robots.txt rules.
type RobotsPolicy interface {
	Allowed(ctx context.Context, url string) (bool, error)
}

// DomainLimiter rate limits requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context, domain string) error
}

// ProgressEvent reports progress while processing a batch of URLs.
type ProgressEvent struct {
	URL       string
	Completed int
	Total     int
	Article   *Article
	Error     error
}

// ProgressFunc is called as URLs are processed.
type ProgressFunc func(ProgressEvent)
