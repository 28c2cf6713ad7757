package saavn

import "container/list"

// lruCache is a bounded map with least-recently-used eviction. Front of the
// order list is the most recently used entry. Not safe for concurrent use;
// the Client guards it with its own mutex.
type lruCache struct {
	max   int
	order *list.List
	items map[string]*list.Element
}

type lruEntry struct {
	key   string
	value any
}

func newLRUCache(max int) *lruCache {
	if max < 1 {
		max = 1
	}
	return &lruCache{
		max:   max,
		order: list.New(),
		items: make(map[string]*list.Element),
	}
}

// Get returns the value for key and marks it most recently used.
func (c *lruCache) Get(key string) (any, bool) {
	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.Touch(key)
	return el.Value.(*lruEntry).value, true
}

// Put inserts or replaces the value for key, marks it most recently used,
// and evicts the least recently used entry once the cache exceeds its cap.
func (c *lruCache) Put(key string, value any) {
	if el, ok := c.items[key]; ok {
		el.Value.(*lruEntry).value = value
		c.order.MoveToFront(el)
		return
	}
	c.items[key] = c.order.PushFront(&lruEntry{key: key, value: value})
	if c.order.Len() > c.max {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*lruEntry).key)
	}
}

// Touch marks key as most recently used without reading it.
func (c *lruCache) Touch(key string) {
	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
	}
}

func (c *lruCache) Len() int {
	return c.order.Len()
}

// Contains reports membership without disturbing recency order.
func (c *lruCache) Contains(key string) bool {
	_, ok := c.items[key]
	return ok
}
