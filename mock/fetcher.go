package mock

import (
	"context"

	"github.com/fwojciec/distill"
)

var _ distill.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of distill.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ distill.RobotsPolicy = (*RobotsPolicy)(nil)

// RobotsPolicy is a mock implementation of distill.RobotsPolicy.
type RobotsPolicy struct {
	AllowedFn func(ctx context.Context, url string) (bool, error)
}

func (r *RobotsPolicy) Allowed(ctx context.Context, url string) (bool, error) {
	return r.AllowedFn(ctx, url)
}

var _ distill.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of distill.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
