// Package cache provides a fast, generic, sharded in-memory cache whose
// eviction behavior is delegated entirely to a policy engine (LRU, LFU,
// or ARC) — see package policy.
//
// Design
//
//   - Concurrency: the cache is split into shards, each an independent
//     policy engine with its own lock. The default shard count is chosen
//     by a heuristic (util.ReasonableShardCount) and is a power of two.
//     Picking shards reduces contention while keeping memory overhead
//     small.
//
//   - Storage: each shard IS a policy.Policy[K,V] instance — there is no
//     separate map/list owned by the shard itself. The engine picked by
//     Options.Kind (LRU by default) owns its own map and list.
//
//   - GetOrLoad: coalesces concurrent loads for the same key using
//     golang.org/x/sync/singleflight. If Loader is nil, GetOrLoad returns
//     ErrNoLoader.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     By default NoopMetrics is used; plug a Prometheus adapter to export
//     metrics.
//
//   - Callbacks: Options.OnEvict(k, v, reason) is called for every
//     eviction the cache observes (the shards report these with reason
//     EvictPolicy).
//
// Basic usage
//
//	// Create an LRU cache with capacity for 10k entries.
//	c := cache.New[string, []byte](cache.Options[string, []byte]{Capacity: 10_000})
//	c.Set("a", []byte("1"))
//	if v, ok := c.Get("a"); ok {
//	    _ = v // use value
//	}
//	c.Remove("a")
//
// Using an alternative policy (LFU or ARC)
//
//	c := cache.New[string, string](cache.Options[string, string]{
//	    Capacity: 50_000,
//	    Kind:     policy.KindLFU,
//	    MaxAverage: 64,
//	})
//
// With GetOrLoad (singleflight)
//
//	c := cache.New[string, string](cache.Options[string, string]{
//	    Capacity: 1024,
//	    Loader: func(ctx context.Context, k string) (string, error) {
//	        // e.g. fetch from DB
//	        return "v:" + k, nil
//	    },
//	})
//	v, err := c.GetOrLoad(context.Background(), "key")
//
// Exporting metrics (example Prometheus adapter)
//
//	m := prom.New(nil, "cachex", "demo", nil) // implements Metrics
//	c := cache.New[string, []byte](cache.Options[string, []byte]{
//	    Capacity: 10_000,
//	    Metrics:  m,
//	})
//
// Thread-safety & complexity
//
// All methods on Cache are safe for concurrent use. Typical operation cost is
// amortized O(1): one shard lookup plus whatever the underlying policy
// engine costs for that operation (all three are O(1) expected).
//
// See package cache/options.go for all available Options fields and package
// policy for the Policy interface and Kind enum used to select a strategy.
package cache
