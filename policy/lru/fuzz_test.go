//go:build go1.18

package lru

import "testing"

// FuzzEngine_Invariants replays a short random operation sequence and
// checks the engine's map/list bookkeeping stays consistent after every
// step.
func FuzzEngine_Invariants(f *testing.F) {
	f.Add(uint8(3), []byte{0, 1, 2, 0, 1, 3, 2, 1})
	f.Add(uint8(1), []byte{0, 0, 0, 1})
	f.Add(uint8(0), []byte{0, 1, 2, 3})

	f.Fuzz(func(t *testing.T, capacityByte uint8, ops []byte) {
		capacity := int(capacityByte % 8)
		if len(ops) > 256 {
			ops = ops[:256]
		}

		e := New[int, int](capacity)

		for i, op := range ops {
			key := int(op % 16)
			if op%3 == 0 {
				e.Get(key)
			} else {
				e.Put(key, i)
			}

			// Resident count never exceeds capacity.
			if len(e.m) > capacity && capacity > 0 {
				t.Fatalf("resident count exceeded capacity: len=%d capacity=%d", len(e.m), capacity)
			}
			if capacity == 0 && len(e.m) != 0 {
				t.Fatalf("capacity=0 must never admit, got len=%d", len(e.m))
			}

			// The map and the recency list must agree on size.
			if got := e.recency.Len(); got != len(e.m) {
				t.Fatalf("map/list size mismatch: map=%d recency=%d", len(e.m), got)
			}
		}
	})
}
