package solver

import (
	"container/list"
	"sync"

	"github.com/tamberg/sokosolve/pkg/grid"
)

// HeuristicCache memoizes Heuristic by Zobrist hash. It is a performance optimization only: a
// miss always falls back to a full recomputation, and an entry may be evicted at any time. It
// adapts the teacher's transposition-table replacement-on-overwrite idea to a bounded LRU,
// since unlike a search-result cache a heuristic score is cheap enough to not need an exact
// bound/depth-aware replacement policy.
type HeuristicCache struct {
	capacity int

	mu      sync.Mutex
	entries map[grid.ZobristHash]*list.Element
	order   *list.List // front = most recently used
}

type cacheEntry struct {
	key   grid.ZobristHash
	value int
}

// NewHeuristicCache builds a cache holding at most capacity entries.
func NewHeuristicCache(capacity int) *HeuristicCache {
	return &HeuristicCache{
		capacity: capacity,
		entries:  make(map[grid.ZobristHash]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the cached heuristic for hash, if present.
func (c *HeuristicCache) Get(hash grid.ZobristHash) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[hash]
	if !ok {
		return 0, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).value, true
}

// Put records the heuristic value for hash, evicting the least recently used entry if the
// cache is full.
func (c *HeuristicCache) Put(hash grid.ZobristHash, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[hash]; ok {
		el.Value.(*cacheEntry).value = value
		c.order.MoveToFront(el)
		return
	}

	if c.capacity > 0 && len(c.entries) >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	el := c.order.PushFront(&cacheEntry{key: hash, value: value})
	c.entries[hash] = el
}
