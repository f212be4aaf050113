// Package lru implements the baseline Least-Recently-Used engine: a
// recency list (MRU at head, LRU at tail) plus a key->node map. It is the
// building block the LRU part of ARC (policy/arc) generalizes with ghosts
// and access counting.
package lru

import (
	"sync"

	"github.com/Sythage/zp-cache/policy"
	"github.com/Sythage/zp-cache/policy/internal/dlist"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Engine is a capacity-bounded, self-contained LRU cache. The zero value
// is not usable; construct with New.
type Engine[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	m        map[K]*dlist.Elem[entry[K, V]]
	recency  *dlist.List[entry[K, V]]
}

var _ policy.Policy[string, int] = (*Engine[string, int])(nil)

// New constructs an LRU engine bounded to capacity entries. capacity <= 0
// disables writes: Put is a no-op and Get always misses.
func New[K comparable, V any](capacity int) *Engine[K, V] {
	return &Engine[K, V]{
		capacity: capacity,
		m:        make(map[K]*dlist.Elem[entry[K, V]]),
		recency:  dlist.New[entry[K, V]](),
	}
}

// Put inserts or overwrites key, promoting it to MRU. If the engine is at
// capacity and key is new, the LRU entry is evicted first; evicted reports
// it.
func (e *Engine[K, V]) Put(key K, value V) (evictedKey K, evictedValue V, evicted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.capacity <= 0 {
		return evictedKey, evictedValue, false
	}
	if el, ok := e.m[key]; ok {
		el.Value.value = value
		e.recency.MoveToFront(el)
		return evictedKey, evictedValue, false
	}
	if len(e.m) >= e.capacity {
		evictedKey, evictedValue, evicted = e.evictOldest()
	}
	el := e.recency.PushFront(entry[K, V]{key: key, value: value})
	e.m[key] = el
	return evictedKey, evictedValue, evicted
}

// Get returns the value for key, promoting it to MRU on a hit.
func (e *Engine[K, V]) Get(key K) (V, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	el, ok := e.m[key]
	if !ok {
		var zero V
		return zero, false
	}
	e.recency.MoveToFront(el)
	return el.Value.value, true
}

// Remove deletes key if present and reports whether it was resident.
func (e *Engine[K, V]) Remove(key K) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	el, ok := e.m[key]
	if !ok {
		return false
	}
	e.recency.Remove(el)
	delete(e.m, key)
	return true
}

// Purge drops every resident entry.
func (e *Engine[K, V]) Purge() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.m = make(map[K]*dlist.Elem[entry[K, V]])
	e.recency = dlist.New[entry[K, V]]()
}

// Len reports the number of resident entries.
func (e *Engine[K, V]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.m)
}

// evictOldest removes the current LRU tail. Caller must hold e.mu.
func (e *Engine[K, V]) evictOldest() (key K, value V, ok bool) {
	v, ok := e.recency.PopBack()
	if !ok {
		return key, value, false
	}
	delete(e.m, v.key)
	return v.key, v.value, true
}
