package lru

import "testing"

// Basic Put/Get round-trip.
func TestEngine_PutGetRoundTrip(t *testing.T) {
	t.Parallel()

	e := New[string, int](4)
	e.Put("a", 1)
	if v, ok := e.Get("a"); !ok || v != 1 {
		t.Fatalf("Get a: want (1,true), got (%v,%v)", v, ok)
	}
}

// Overwrite semantics.
func TestEngine_PutOverwrite(t *testing.T) {
	t.Parallel()

	e := New[string, int](4)
	e.Put("a", 1)
	e.Put("a", 2)
	if v, ok := e.Get("a"); !ok || v != 2 {
		t.Fatalf("Get a: want (2,true), got (%v,%v)", v, ok)
	}
	if e.Len() != 1 {
		t.Fatalf("Len want 1, got %d", e.Len())
	}
}

// Deterministic eviction: accessing "a" promotes it to MRU, so the
// overflow must evict "b" instead.
func TestEngine_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	e := New[string, int](2)
	e.Put("a", 1)
	e.Put("b", 2)
	if _, ok := e.Get("a"); !ok {
		t.Fatal("expect hit for a")
	}
	e.Put("c", 3)

	if _, ok := e.Get("b"); ok {
		t.Fatal("b must be evicted")
	}
	if _, ok := e.Get("a"); !ok {
		t.Fatal("a must survive (promoted)")
	}
	if v, ok := e.Get("c"); !ok || v != 3 {
		t.Fatal("c must be present")
	}
}

// Capacity=0 silently rejects writes.
func TestEngine_ZeroCapacityNeverAdmits(t *testing.T) {
	t.Parallel()

	e := New[string, int](0)
	e.Put("a", 1)
	if _, ok := e.Get("a"); ok {
		t.Fatal("capacity=0 must always miss")
	}
	if e.Len() != 0 {
		t.Fatalf("Len want 0, got %d", e.Len())
	}
}

// Purge drops every resident entry.
func TestEngine_PurgeDropsEverything(t *testing.T) {
	t.Parallel()

	e := New[string, int](4)
	e.Put("a", 1)
	e.Put("b", 2)
	e.Purge()

	if e.Len() != 0 {
		t.Fatalf("Len want 0 after purge, got %d", e.Len())
	}
	if _, ok := e.Get("a"); ok {
		t.Fatal("a must miss after purge")
	}
}
