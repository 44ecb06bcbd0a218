package l2table

import (
	"encoding/binary"
	"hash/crc32"
)

// castagnoliTable is the CRC-32C (Castagnoli) polynomial table used by
// hashAddr. The choice of hash is part of the external contract insofar
// as the capacity/collision test vectors assume a fixed, reproducible
// hash; implementers may substitute a different one, but may not vary
// it across runs of the same binary.
var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// hashAddr computes CRC-32C, seed 0, over the 8-byte little-endian
// encoding of the canonical MAC word (upper 16 bits zero, contributing
// deterministically to the checksum).
func hashAddr(addr uint64) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], addr)
	return crc32.Checksum(buf[:], castagnoliTable)
}

// primaryIndex computes the primary bucket index from a hash and the
// table's bucket count (a power of two).
func primaryIndex(hash uint32, size uint64) uint64 {
	return uint64(hash) & (size - 1)
}

// alternateIndex computes the alternate bucket index from a hash, the
// table's log2(size), and an already-computed primary (or resident)
// index. The final mask restricts the result to the lower half of the
// table ([0, size/2)); this is a documented, preserved asymmetry of the
// algorithm, not something to "fix" — the upper half of the table is
// reachable only via primaryIndex.
//
// sizePower must be >= 1 (size >= 2); callers with a single-bucket
// table never call this, since displacement and lookup of an alternate
// bucket are meaningless when there is only one bucket.
func alternateIndex(hash uint32, sizePower uint64, index uint64) uint64 {
	tag := (uint64(hash>>sizePower) + 1) * 0x5BD1E995
	lowerHalfMask := (uint64(1) << (sizePower - 1)) - 1
	return (index ^ tag) & lowerHalfMask
}
