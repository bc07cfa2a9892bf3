// Package cache wraps readability.Extract behind a content-addressed
// in-memory cache, the "suitable for archival" supplement named in
// SPEC_FULL.md §4.11: re-extracting the same document — a repeated crawl
// visit, say — becomes a cache hit instead of a re-run of the pipeline.
package cache

import (
	"encoding/hex"
	"sync"

	"lukechampine.com/blake3"

	readability "github.com/mackee/go-readability"
)

// Cache is safe for concurrent use; each Extract call either serves a
// cached Output or computes and stores a fresh one under its content key.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]readability.Output
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]readability.Output)}
}

// Extract serves html/opts from the cache when the exact same document and
// options were extracted before, or runs readability.Extract and stores the
// result under the content key otherwise. A cache hit returns the same
// Output.Root tree pointer to every caller; callers must treat it as
// read-only, per the single-threaded tree-ownership convention in spec.md §5
// — Extract does not deep-clone the tree on each hit.
func (c *Cache) Extract(html string, opts readability.Options) (readability.Output, error) {
	key := contentKey(html, opts)

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	out, err := readability.Extract(html, opts)
	if err != nil {
		return out, err
	}

	c.mu.Lock()
	c.entries[key] = out
	c.mu.Unlock()
	return out, nil
}

// Len reports how many distinct documents are cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func contentKey(html string, opts readability.Options) string {
	h := blake3.New(32, nil)
	h.Write([]byte(html))
	h.Write([]byte{0})
	h.Write([]byte(opts.URL))
	h.Write([]byte{0})
	if opts.Fragment {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
