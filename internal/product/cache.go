package product

import (
	"sync"
)

// Cache lookup results reported to the observer passed to NewCached.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Cached wraps a Lookup with an in-memory LRU cache keyed by the normalized
// name/unit pair.
type Cached struct {
	inner   Lookup
	cache   *lruCache
	observe func(result string)
}

// NewCached creates a cache decorator around a lookup. observe may be nil.
func NewCached(inner Lookup, maxEntries int, observe func(result string)) *Cached {
	if maxEntries < 1 {
		maxEntries = 1
	}
	if observe == nil {
		observe = func(string) {}
	}
	return &Cached{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		observe: observe,
	}
}

func (c *Cached) Find(name, unit string) (Info, bool) {
	key := name + "|" + unit
	if info, ok := c.cache.get(key); ok {
		c.observe(CacheHit)
		return info, true
	}
	c.observe(CacheMiss)
	info, ok := c.inner.Find(name, unit)
	// Misses are not cached so a reloaded table is picked up.
	if ok {
		c.cache.put(key, info)
	}
	return info, ok
}

// Len returns the number of cached entries.
func (c *Cached) Len() int {
	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()
	return len(c.cache.entries)
}

// lruCache is a simple thread-safe LRU cache of product entries.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value Info
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (Info, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return Info{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value Info) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.unlink(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.unlink(c.tail)
}
