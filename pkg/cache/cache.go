package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

// LRU is a size bounded cache whose entries also expire after ttl.
type LRU[V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	ll       *list.List
	items    map[string]*list.Element
	now      func() time.Time

	hits, misses uint64
}

func NewLRU[V any](capacity int, ttl time.Duration) *LRU[V] {
	return &LRU[V]{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
		now:      time.Now,
	}
}

func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	ele, ok := c.items[key]
	if !ok {
		c.misses++
		return zero, false
	}
	ent := ele.Value.(*entry[V])
	if c.now().After(ent.expiresAt) {
		c.remove(ele)
		c.misses++
		return zero, false
	}
	c.ll.MoveToFront(ele)
	c.hits++
	return ent.value, true
}

func (c *LRU[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if ele, ok := c.items[key]; ok {
		ent := ele.Value.(*entry[V])
		ent.value = value
		ent.expiresAt = expiresAt
		c.ll.MoveToFront(ele)
		return
	}

	c.items[key] = c.ll.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt})
	for c.ll.Len() > c.capacity {
		c.remove(c.ll.Back())
	}
}

func (c *LRU[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ele, ok := c.items[key]; ok {
		c.remove(ele)
	}
}

func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Stats returns hit and miss counters since creation.
func (c *LRU[V]) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// RunJanitor drops expired entries every interval until ctx is done.
func (c *LRU[V]) RunJanitor(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.DeleteExpired()
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *LRU[V]) DeleteExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if now.After(e.Value.(*entry[V]).expiresAt) {
			c.remove(e)
			removed++
		}
		e = prev
	}
	return removed
}

func (c *LRU[V]) remove(e *list.Element) {
	c.ll.Remove(e)
	delete(c.items, e.Value.(*entry[V]).key)
}
