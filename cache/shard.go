package cache

import (
	"github.com/Sythage/zp-cache/internal/util"
	"github.com/Sythage/zp-cache/policy"
	"github.com/Sythage/zp-cache/policy/arc"
	"github.com/Sythage/zp-cache/policy/lfu"
	"github.com/Sythage/zp-cache/policy/lru"
)

const (
	defaultTransformThreshold = 2
	defaultMaxAverage         = 64
)

// shard is an independent partition of the cache: a single policy engine
// (which owns its own lock) plus the shard's own hit/miss/eviction
// counters and OnEvict/Metrics wiring.
type shard[K comparable, V any] struct {
	engine policy.Policy[K, V]
	opt    Options[K, V]

	hits   util.PaddedAtomicInt64
	misses util.PaddedAtomicInt64
	evicts util.PaddedAtomicUint64
}

// newShard builds the policy engine selected by opt.Kind, bounded to the
// given per-shard capacity.
func newShard[K comparable, V any](capacity int, opt Options[K, V]) *shard[K, V] {
	return &shard[K, V]{
		engine: newEngine[K, V](capacity, opt),
		opt:    opt,
	}
}

func newEngine[K comparable, V any](capacity int, opt Options[K, V]) policy.Policy[K, V] {
	switch opt.Kind {
	case policy.KindLFU:
		maxAverage := opt.MaxAverage
		if maxAverage <= 0 {
			maxAverage = defaultMaxAverage
		}
		return lfu.New[K, V](capacity, maxAverage)
	case policy.KindARC:
		threshold := opt.TransformThreshold
		if threshold <= 0 {
			threshold = defaultTransformThreshold
		}
		return arc.New[K, V](capacity, threshold)
	default:
		return lru.New[K, V](capacity)
	}
}

// Set inserts or updates an entry, routing any eviction the engine
// reports through the shard's counters, Options.OnEvict, and Metrics.
func (s *shard[K, V]) Set(k K, v V) {
	evK, evV, evicted := s.engine.Put(k, v)
	if evicted {
		s.evicts.Add(1)
		s.opt.Metrics.Evict(EvictPolicy)
		if cb := s.opt.OnEvict; cb != nil {
			cb(evK, evV, EvictPolicy)
		}
	}
	s.opt.Metrics.Size(s.engine.Len())
}

// Get returns the value for k, recording a hit or miss.
func (s *shard[K, V]) Get(k K) (V, bool) {
	v, ok := s.engine.Get(k)
	if ok {
		s.hits.Add(1)
		s.opt.Metrics.Hit()
	} else {
		s.misses.Add(1)
		s.opt.Metrics.Miss()
	}
	return v, ok
}

// Remove deletes k if present and returns true on success.
func (s *shard[K, V]) Remove(k K) bool {
	return s.engine.Remove(k)
}

// Len returns the number of resident entries in this shard.
func (s *shard[K, V]) Len() int { return s.engine.Len() }
