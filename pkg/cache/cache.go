package cache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"
)

// DefaultCapacity is the entry limit applied by NewDefault.
const DefaultCapacity = 1000

// Options carries the conversion flags that participate in the cache key.
// Results computed with different flags are distinct cache entries even for
// identical content.
type Options struct {
	Sanitize  bool
	CamelCase bool
}

// Entry is one cached optimization result. Entries are stored and returned
// by value; callers never share memory with the cache.
type Entry struct {
	Result        string
	OriginalSize  int
	OptimizedSize int
	InsertedAt    time.Time
}

// Stats is a point-in-time snapshot of the cache counters.
type Stats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Size    int    `json:"size"`
	MaxSize int    `json:"maxSize"`
	HitRate string `json:"hitRate"`
}

type cacheItem struct {
	key   string
	entry Entry
}

// ResultCache is a thread-safe LRU cache mapping (content, options) pairs to
// previously computed optimization results.
type ResultCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	hits     uint64
	misses   uint64
}

// New creates a ResultCache with the given capacity. It panics when capacity
// is not positive; a cache that can hold nothing is a configuration error.
func New(capacity int) *ResultCache {
	if capacity <= 0 {
		panic("cache: capacity must be positive")
	}
	return &ResultCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

// NewDefault creates a ResultCache with DefaultCapacity.
func NewDefault() *ResultCache {
	return New(DefaultCapacity)
}

// Key derives the deterministic cache key for a content/options pair.
func Key(content string, opts Options) string {
	h := sha256.New()
	io.WriteString(h, content)
	fmt.Fprintf(h, "|sanitize=%t|camelcase=%t", opts.Sanitize, opts.CamelCase)
	return hex.EncodeToString(h.Sum(nil))
}

// Get looks up the result for a content/options pair. A hit refreshes the
// entry's recency and increments the hit counter; a miss increments the miss
// counter and returns false.
func (c *ResultCache) Get(content string, opts Options) (Entry, bool) {
	key := Key(content, opts)

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.misses++
		return Entry{}, false
	}

	c.hits++
	c.eviction.MoveToFront(elem)
	return elem.Value.(*cacheItem).entry, true
}

// Set stores the result for a content/options pair, evicting the least
// recently used entry when the cache is full. Overwriting an existing key
// refreshes its recency and does not change the size.
func (c *ResultCache) Set(content string, opts Options, entry Entry) {
	key := Key(content, opts)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*cacheItem).entry = entry
		return
	}

	elem := c.eviction.PushFront(&cacheItem{key: key, entry: entry})
	c.items[key] = elem

	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		if oldest != nil {
			c.eviction.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheItem).key)
		}
	}
}

// Len reports the current number of cached entries.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Clear drops all entries. Counters are preserved; they describe lookups,
// not contents.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.eviction.Init()
}

// Stats returns a snapshot of the aggregate counters. HitRate is formatted
// as a percentage with one decimal place, "0%" before any lookup happened.
func (c *ResultCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Hits:    c.hits,
		Misses:  c.misses,
		Size:    c.eviction.Len(),
		MaxSize: c.capacity,
		HitRate: "0%",
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = fmt.Sprintf("%.1f%%", float64(c.hits)/float64(total)*100)
	}
	return s
}
