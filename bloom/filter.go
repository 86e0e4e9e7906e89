// Package bloom provides source URL deduplication using Bloom filters.
package bloom

import (
	"net/url"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter wraps a Bloom filter for URL deduplication.
// It is safe for concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether rawURL was probably added before and records it.
// URLs differing only in fragment or host case are treated as equal.
func (f *Filter) Seen(rawURL string) bool {
	key := Key(rawURL)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestOrAddString(key)
}

// Key returns the dedup key for rawURL. Unparseable input is used
// verbatim after trimming.
func Key(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}
