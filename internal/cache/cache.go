// Package cache stores solved answers keyed by day, part, puzzle settings
// and input digest.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/golang/groupcache/lru"
)

type Entry struct {
	Values []int `json:"values"`
	Answer int   `json:"answer"`
}

// AnswerCache reports a miss as (Entry{}, false, nil); errors are reserved for
// a broken backend.
type AnswerCache interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry) error
}

// Key derives the cache key for one part of one input. rules fingerprints
// the puzzle settings the answer was computed under, so processes with
// different settings never share entries.
func Key(rules string, day, part int, lines []string) string {
	sum := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return fmt.Sprintf("%d:%d:%s:%s", day, part, rules, hex.EncodeToString(sum[:]))
}

// DefaultMemoryEntries bounds a MemoryCache built with a non-positive size.
const DefaultMemoryEntries = 1024

// MemoryCache keeps the most recently used entries and evicts the oldest
// once it holds maxEntries.
type MemoryCache struct {
	mu      sync.Mutex
	entries *lru.Cache
}

func NewMemoryCache(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryEntries
	}
	return &MemoryCache{
		entries: lru.New(maxEntries),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (Entry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.entries.Get(key)
	if !ok {
		return Entry{}, false, nil
	}
	return value.(Entry), true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, entry Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Add(key, entry)
	return nil
}

func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries.Len()
}
