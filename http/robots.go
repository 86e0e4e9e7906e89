package http

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/distill"
	"github.com/temoto/robotstxt"
)

// DefaultRobotsTimeout bounds the download of a robots.txt file.
const DefaultRobotsTimeout = 5 * time.Second

// Ensure Robots implements distill.RobotsPolicy at compile time.
var _ distill.RobotsPolicy = (*Robots)(nil)

// Robots answers robots.txt queries, downloading each host's rules once.
// A host whose robots.txt cannot be fetched is treated as allowing
// everything. Robots is safe for concurrent use.
type Robots struct {
	client    *http.Client
	userAgent string

	mu    sync.Mutex
	hosts map[string]*robotstxt.RobotsData
}

// RobotsOption configures Robots.
type RobotsOption func(*Robots)

// WithRobotsUserAgent sets the agent name matched against robots.txt groups.
func WithRobotsUserAgent(ua string) RobotsOption {
	return func(r *Robots) {
		r.userAgent = ua
	}
}

// WithRobotsTimeout sets the robots.txt download timeout.
func WithRobotsTimeout(d time.Duration) RobotsOption {
	return func(r *Robots) {
		r.client.Timeout = d
	}
}

// NewRobots creates a new Robots policy.
func NewRobots(opts ...RobotsOption) *Robots {
	r := &Robots{
		client:    &http.Client{Timeout: DefaultRobotsTimeout},
		userAgent: DefaultUserAgent,
		hosts:     make(map[string]*robotstxt.RobotsData),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Allowed reports whether rawURL may be fetched.
func (r *Robots) Allowed(ctx context.Context, rawURL string) (bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false, distill.Errorf(distill.EINVALID, "invalid URL %q", rawURL)
	}

	data, err := r.rules(ctx, u)
	if err != nil {
		return false, err
	}
	if data == nil {
		return true, nil
	}
	return data.TestAgent(u.EscapedPath(), r.userAgent), nil
}

// rules returns the cached robots.txt for the URL's host, fetching it on
// first use. Concurrent first lookups may both fetch; the last one wins.
// A lookup cut short by ctx is not cached.
func (r *Robots) rules(ctx context.Context, u *url.URL) (*robotstxt.RobotsData, error) {
	key := u.Scheme + "://" + u.Host

	r.mu.Lock()
	data, ok := r.hosts[key]
	r.mu.Unlock()
	if ok {
		return data, nil
	}

	data = r.fetch(ctx, key+"/robots.txt")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.hosts[key] = data
	r.mu.Unlock()
	return data, nil
}

func (r *Robots) fetch(ctx context.Context, robotsURL string) *robotstxt.RobotsData {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil
	}
	return data
}
