//go:build goexperiment.simd && amd64

package l2table

import (
	"math/bits"
	"simd/archsimd"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// NOTE: simd/archsimd is the experimental AMD64 SIMD package enabled via
// GOEXPERIMENT=simd (see https://github.com/golang/go/issues/73787). It
// ships no CPU feature detection of its own, so golang.org/x/sys/cpu is
// used to gate use of it; issuing an AVX2 vector instruction on a CPU
// that lacks AVX2 is a SIGILL, not a graceful fallback.

// useAVX2 is set once at init and gates the vectorized bucket search.
var useAVX2 bool

func init() {
	useAVX2 = cpu.X86.HasAVX2
}

// findInBucketSIMD compares a 4-entry bucket against addr in a single
// 256-bit vector operation: form four copies of (addr | occupied-bit),
// mask each loaded entry down to address+occupied, compare for
// equality, and take the position of the lowest set lane. It falls
// back to the scalar path for any bucket width other than 4, or when
// AVX2 is unavailable at runtime.
func findInBucketSIMD(bucket []atomic.Uint64, addr uint64) (int, bool) {
	if len(bucket) != 4 || !useAVX2 {
		return findInBucketScalar(bucket, addr)
	}

	var raw [4]int64
	for i := range raw {
		raw[i] = int64(bucket[i].Load())
	}

	needle := int64(addr | occupiedBit)
	mask := int64(addrOccMask)

	needleVec := archsimd.BroadcastInt64x4(needle)
	maskVec := archsimd.BroadcastInt64x4(mask)
	tableVec := archsimd.LoadInt64x4((*[4]int64)(unsafe.Pointer(&raw[0])))
	tableVec = tableVec.And(maskVec)

	bitsSet := tableVec.Equal(needleVec).ToBits()
	if bitsSet == 0 {
		return -1, false
	}

	return bits.TrailingZeros8(bitsSet), true
}
