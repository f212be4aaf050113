//go:build go1.18

package lfu

import "testing"

// FuzzEngine_Invariants replays a short random operation sequence and
// checks the engine's bucket bookkeeping stays consistent after every step.
func FuzzEngine_Invariants(f *testing.F) {
	f.Add(uint8(3), 4, []byte{0, 1, 2, 0, 1, 3, 2, 1})
	f.Add(uint8(1), 10, []byte{0, 0, 0, 1})
	f.Add(uint8(0), 2, []byte{0, 1, 2, 3})

	f.Fuzz(func(t *testing.T, capacityByte uint8, maxAverage int, ops []byte) {
		capacity := int(capacityByte % 8)
		if maxAverage < 0 {
			maxAverage = -maxAverage
		}
		maxAverage = maxAverage%32 + 1
		if len(ops) > 256 {
			ops = ops[:256]
		}

		e := New[int, int](capacity, maxAverage)

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

			// Sum of bucket sizes must equal the main map's size.
			sum := 0
			for _, b := range e.buckets {
				sum += b.Len()
			}
			if sum != len(e.m) {
				t.Fatalf("bucket/map size mismatch: sum(buckets)=%d len(mainMap)=%d", sum, len(e.m))
			}

			// The bucket at minFreq must be non-empty iff the map is non-empty.
			if len(e.m) > 0 {
				b, ok := e.buckets[e.minFreq]
				if !ok || b.IsEmpty() {
					t.Fatalf("minFreq bucket empty while map non-empty: minFreq=%d", e.minFreq)
				}
			}
		}
	})
}
