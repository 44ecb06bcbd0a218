package l2table

import "sync/atomic"

// findInBucketScalar scans bucket (a slice of B entries read as
// naturally-aligned atomics) for a slot that is occupied and whose
// address field equals addr. It returns the slot index and true on a
// match, or -1 and false on a miss. This is the fallback path and the
// reference behavior that any SIMD path must match exactly.
func findInBucketScalar(bucket []atomic.Uint64, addr uint64) (int, bool) {
	for i := range bucket {
		e := bucket[i].Load()
		if isOccupied(e) && addrField(e) == addr {
			return i, true
		}
	}
	return -1, false
}
