package l2table

import "sync/atomic"

// findInBucket locates a matching occupied entry in bucket, dispatching
// to the vectorized search when it is available and the bucket is the
// high-performance width of 4, and to the scalar search otherwise. Both
// paths are required to agree on every input; see bucket_search_test.go.
func findInBucket(bucket []atomic.Uint64, addr uint64) (int, bool) {
	if useAVX2 && len(bucket) == 4 {
		return findInBucketSIMD(bucket, addr)
	}
	return findInBucketScalar(bucket, addr)
}

// ActiveBucketSearch reports which bucket search implementation this
// build/runtime dispatches to for full-width (B=4) buckets: "simd" if
// the vectorized path is live (goexperiment.simd+amd64 build, AVX2
// detected at runtime), "scalar" otherwise.
func ActiveBucketSearch() string {
	if useAVX2 {
		return "simd"
	}
	return "scalar"
}
