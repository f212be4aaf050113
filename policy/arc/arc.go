// Package arc implements the Adaptive Replacement Cache engine: a
// recency-tracking part and a frequency-tracking part, each with its own
// bounded ghost list of recently evicted keys. A hit in either ghost list
// shifts one unit of capacity from the other part into the part whose
// ghost was hit, adapting the split between "recency matters" and
// "frequency matters" workloads over time.
//
// Ghost capacity is fixed at each part's initial capacity and is never
// adapted when the main capacities shift. This is not classic ARC (which
// keeps B1/B2 sized off the live T1/T2); see DESIGN.md for the tradeoff.
package arc

import (
	"sync"

	"github.com/Sythage/zp-cache/policy"
)

// Engine composes an LRU part and an LFU part behind one lock, dispatching
// ghost checks and capacity rebalancing on every operation.
type Engine[K comparable, V any] struct {
	mu  sync.Mutex
	lru *lruPart[K, V]
	lfu *lfuPart[K, V]
}

var _ policy.Policy[string, int] = (*Engine[string, int])(nil)

// New constructs an ARC engine of configured capacity C. Both parts start
// with capacity C (not C/2): the sum of the two parts' capacities is 2C
// and stays there, since ghost-hit rebalancing only moves one unit from
// one part to the other (see DESIGN.md, verified against the
// ghost-rebalance test). Ghost capacity
// is fixed at each part's own starting capacity C and never adapts.
func New[K comparable, V any](capacity, transformThreshold int) *Engine[K, V] {
	if transformThreshold < 1 {
		transformThreshold = 1
	}
	return &Engine[K, V]{
		lru: newLRUPart[K, V](capacity, transformThreshold),
		lfu: newLFUPart[K, V](capacity),
	}
}

// Put inserts or overwrites key. If key is already resident in the LFU
// part, both parts are kept in sync; otherwise only the LRU part is
// written. Only the LRU part can report an eviction here: a key already
// resident in the LFU part hits lfuPart.put's existing-key branch, which
// only bumps frequency and never evicts; the LFU part evicts only on
// admitting a brand-new key, which never happens through this call site.
func (e *Engine[K, V]) Put(key K, value V) (evictedKey K, evictedValue V, evicted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rebalanceOnGhostHit(key)

	if e.lfu.contains(key) {
		e.lfu.put(key, value)
	}
	return e.lru.put(key, value)
}

// Get returns the value for key. A hit in the LRU part that reaches
// transformThreshold accesses admits the key into the LFU part; once
// admitted, subsequent reads are served from the LFU part, falling back
// to the LRU value if a stale LFU entry happens to miss right after
// promotion (Open Question 2: never spuriously miss a key the LRU part
// just confirmed present).
func (e *Engine[K, V]) Get(key K) (V, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rebalanceOnGhostHit(key)

	lruValue, ok, shouldPromote := e.lru.get(key)
	if !ok {
		var zero V
		return zero, false
	}
	if shouldPromote {
		e.lfu.put(key, lruValue)
	}
	if v, ok := e.lfu.get(key); ok {
		return v, true
	}
	return lruValue, true
}

// Remove deletes key from whichever part(s) hold it and reports whether
// it was resident in either. Ghost lists are left untouched.
func (e *Engine[K, V]) Remove(key K) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	inLRU := e.lru.remove(key)
	inLFU := e.lfu.remove(key)
	return inLRU || inLFU
}

// Purge drops all resident entries in both parts. Ghost lists are left
// untouched — an intentional exception to the plain-LRU/LFU Purge
// contract, since ghost entries carry no value payload to leak.
func (e *Engine[K, V]) Purge() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lru.purgeMain()
	e.lfu.purgeMain()
}

// Len reports the number of distinct keys resident in either part.
func (e *Engine[K, V]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := e.lru.mainLen()
	for _, k := range e.lfu.keys() {
		if !e.lru.contains(k) {
			n++
		}
	}
	return n
}

// rebalanceOnGhostHit: a key found in one part's ghost list shifts one
// unit of capacity from the other part into this one, then clears the
// ghost entry. Caller holds e.mu.
func (e *Engine[K, V]) rebalanceOnGhostHit(key K) {
	if e.lru.checkGhost(key) {
		if e.lfu.decreaseCapacity() {
			e.lru.increaseCapacity()
		}
		return
	}
	if e.lfu.checkGhost(key) {
		if e.lru.decreaseCapacity() {
			e.lfu.increaseCapacity()
		}
	}
}
