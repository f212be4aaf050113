package cache

import (
	"context"

	"github.com/Sythage/zp-cache/policy"
)

// EvictReason explains why an entry was removed.
type EvictReason int

const (
	// EvictPolicy — removed by the active eviction policy's own admission
	// logic (e.g. LRU tail eviction, LFU minFreq eviction, ARC ghost-list
	// bookkeeping).
	EvictPolicy EvictReason = iota
	// EvictCapacity — a reason label for removals that satisfy the
	// per-shard capacity split chosen by the host layer (ceil-divided from
	// Options.Capacity). The shards in this package report every eviction
	// as EvictPolicy and do not emit EvictCapacity.
	EvictCapacity
)

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	Size(entries int)
}

// Options configures the cache behavior. Capacity must be > 0 (New
// panics otherwise); for the other fields zero values are safe and
// sane defaults are applied in New():
//   - Kind          => policy.KindLRU
//   - Shards <= 0   => auto (rounded up to power of two)
//   - nil Metrics   => NoopMetrics
//   - TransformThreshold <= 0 (ARC only) => 2
//   - MaxAverage <= 0 (LFU only)         => 64
type Options[K comparable, V any] struct {
	// Capacity is the total entry count limit, split evenly (ceil) across
	// shards.
	Capacity int

	// Shards defines the number of shards. If 0, an automatic value is chosen
	// (≈ util.ReasonableShardCount) and rounded to the next power of two.
	Shards int

	// Kind selects the eviction strategy each shard runs. Zero value is
	// policy.KindLRU.
	Kind policy.Kind

	// TransformThreshold is the number of LRU-part hits that promotes a
	// key into the LFU part of an ARC engine. Only meaningful when
	// Kind == policy.KindARC.
	TransformThreshold int

	// MaxAverage bounds the running average access count before an LFU
	// engine ages every resident frequency (lowering it by MaxAverage/2,
	// never below 1). Only meaningful when
	// Kind == policy.KindLFU.
	MaxAverage int

	// Loader fetches a value on cache miss. Used by GetOrLoad.
	Loader func(ctx context.Context, k K) (V, error)

	// Observability
	// OnEvict is called on eviction from the Set that caused it, after the
	// engine's Put has returned (outside the engine's lock); keep callbacks
	// lightweight.
	OnEvict func(k K, v V, reason EvictReason)
	Metrics Metrics
}
