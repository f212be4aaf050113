package arc

import "github.com/Sythage/zp-cache/policy/internal/dlist"

type lruEntry[K comparable, V any] struct {
	key         K
	value       V
	accessCount int
}

// lruPart is the recency-tracking half of an ARC engine: a main recency
// list plus a bounded ghost list of evicted keys.
type lruPart[K comparable, V any] struct {
	capacity           int
	ghostCapacity      int
	transformThreshold int

	main    map[K]*dlist.Elem[lruEntry[K, V]]
	recency *dlist.List[lruEntry[K, V]]

	ghostMap map[K]*dlist.Elem[K]
	ghost    *dlist.List[K]
}

func newLRUPart[K comparable, V any](capacity, transformThreshold int) *lruPart[K, V] {
	return &lruPart[K, V]{
		capacity:           capacity,
		ghostCapacity:      capacity,
		transformThreshold: transformThreshold,
		main:               make(map[K]*dlist.Elem[lruEntry[K, V]]),
		recency:            dlist.New[lruEntry[K, V]](),
		ghostMap:           make(map[K]*dlist.Elem[K]),
		ghost:              dlist.New[K](),
	}
}

// put inserts or overwrites key at MRU. If key is new and the part is
// full, the LRU tail is evicted into the ghost list first; evicted
// reports it.
func (p *lruPart[K, V]) put(key K, value V) (evictedKey K, evictedValue V, evicted bool) {
	if p.capacity <= 0 {
		return evictedKey, evictedValue, false
	}
	if el, ok := p.main[key]; ok {
		el.Value.value = value
		p.recency.MoveToFront(el)
		return evictedKey, evictedValue, false
	}
	if len(p.main) >= p.capacity {
		evictedKey, evictedValue, evicted = p.evictLRU()
	}
	p.main[key] = p.recency.PushFront(lruEntry[K, V]{key: key, value: value, accessCount: 0})
	return evictedKey, evictedValue, evicted
}

// get promotes key to MRU and bumps its access count, reporting whether
// that count has reached transformThreshold (the key should be promoted
// into the LFU part).
func (p *lruPart[K, V]) get(key K) (value V, ok bool, shouldPromote bool) {
	el, found := p.main[key]
	if !found {
		return value, false, false
	}
	p.recency.MoveToFront(el)
	el.Value.accessCount++
	return el.Value.value, true, el.Value.accessCount >= p.transformThreshold
}

// checkGhost removes key from the ghost list if present and reports
// whether it was found.
func (p *lruPart[K, V]) checkGhost(key K) bool {
	el, ok := p.ghostMap[key]
	if !ok {
		return false
	}
	p.ghost.Remove(el)
	delete(p.ghostMap, key)
	return true
}

func (p *lruPart[K, V]) contains(key K) bool {
	_, ok := p.main[key]
	return ok
}

func (p *lruPart[K, V]) mainLen() int { return len(p.main) }

// remove deletes key from the main list without touching the ghost list
// (an explicit removal is not a recency-driven eviction).
func (p *lruPart[K, V]) remove(key K) bool {
	el, ok := p.main[key]
	if !ok {
		return false
	}
	p.recency.Remove(el)
	delete(p.main, key)
	return true
}

func (p *lruPart[K, V]) purgeMain() {
	p.main = make(map[K]*dlist.Elem[lruEntry[K, V]])
	p.recency = dlist.New[lruEntry[K, V]]()
}

// increaseCapacity grows capacity by one unit.
func (p *lruPart[K, V]) increaseCapacity() { p.capacity++ }

// decreaseCapacity shrinks capacity by one unit, evicting first if the
// part is currently full, and fails if capacity is already zero.
func (p *lruPart[K, V]) decreaseCapacity() bool {
	if p.capacity == 0 {
		return false
	}
	if len(p.main) >= p.capacity {
		p.evictLRU()
	}
	p.capacity--
	return true
}

// evictLRU moves the current LRU tail of the main list into the ghost
// list, evicting the oldest ghost first if the ghost list is full, and
// reports the evicted key/value.
func (p *lruPart[K, V]) evictLRU() (key K, value V, ok bool) {
	el := p.recency.Back()
	if el == nil {
		return key, value, false
	}
	key = el.Value.key
	value = el.Value.value
	p.recency.Remove(el)
	delete(p.main, key)

	if len(p.ghostMap) >= p.ghostCapacity {
		p.evictOldestGhost()
	}
	p.ghostMap[key] = p.ghost.PushFront(key)
	return key, value, true
}

func (p *lruPart[K, V]) evictOldestGhost() {
	el := p.ghost.Back()
	if el == nil {
		return
	}
	delete(p.ghostMap, el.Value)
	p.ghost.Remove(el)
}
