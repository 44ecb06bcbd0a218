//go:build !(goexperiment.simd && amd64)

package l2table

import "sync/atomic"

// useAVX2 is always false outside goexperiment.simd/amd64 builds; the
// vectorized path does not exist in this build, so dispatch always
// lands on the scalar search.
const useAVX2 = false

// findInBucketSIMD is unavailable without GOEXPERIMENT=simd on amd64;
// it aliases the scalar search so callers never need a build-tagged
// call site.
func findInBucketSIMD(bucket []atomic.Uint64, addr uint64) (int, bool) {
	return findInBucketScalar(bucket, addr)
}
