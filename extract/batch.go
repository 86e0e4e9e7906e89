package extract

import (
	"context"
	"sync"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs processed at once when Batch is
// given a non-positive limit.
const DefaultConcurrency = 4

// Dedup filter sizing.
const (
	dedupMinItems          = 1000
	dedupFalsePositiveRate = 0.001
)

// BatchResult summarizes a Batch run.
type BatchResult struct {
	Articles   []*distill.Article
	Failed     int
	Duplicates int
}

// Batch runs FromURL over urls with bounded concurrency.
// Repeated URLs are processed once. Per-URL failures are reported through
// progress and counted in the result; only context cancellation aborts
// the batch. Articles are returned in input order.
func (p *Pipeline) Batch(ctx context.Context, urls []string, concurrency int, progress distill.ProgressFunc) (*BatchResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	seen := bloom.NewFilter(uint(max(len(urls), dedupMinItems)), dedupFalsePositiveRate)
	var unique []string
	result := &BatchResult{}
	for _, u := range urls {
		if seen.Seen(u) {
			result.Duplicates++
			continue
		}
		unique = append(unique, u)
	}

	articles := make([]*distill.Article, len(unique))
	total := len(unique)

	var mu sync.Mutex
	completed := 0
	report := func(url string, article *distill.Article, err error) {
		mu.Lock()
		defer mu.Unlock()
		completed++
		if err != nil {
			result.Failed++
		}
		if progress != nil {
			progress(distill.ProgressEvent{
				URL:       url,
				Completed: completed,
				Total:     total,
				Article:   article,
				Error:     err,
			})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range unique {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			article, err := p.FromURL(gctx, u)
			if err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			articles[i] = article
			report(u, article, err)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, a := range articles {
		if a != nil {
			result.Articles = append(result.Articles, a)
		}
	}
	return result, nil
}
