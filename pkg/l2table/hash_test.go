package l2table

import "testing"

// hashAddr must be deterministic across calls within the same binary:
// the capacity/collision properties in table_test.go depend on it.
func Test_HashAddr_Is_Deterministic(t *testing.T) {
	t.Parallel()

	addr := uint64(0x0123456701234567) & MaxMAC
	h1 := hashAddr(addr)
	h2 := hashAddr(addr)

	if h1 != h2 {
		t.Fatalf("hashAddr not deterministic: %x != %x", h1, h2)
	}
}

func Test_AlternateIndex_Masks_To_Lower_Half(t *testing.T) {
	t.Parallel()

	const sizePower = 10 // size = 1024
	const size = uint64(1) << sizePower

	for addr := uint64(0); addr < 4096; addr++ {
		hash := hashAddr(addr)
		idx := primaryIndex(hash, size)
		alt := alternateIndex(hash, sizePower, idx)

		if alt >= size/2 {
			t.Fatalf("alternate index %d not confined to lower half (size/2=%d) for addr %x", alt, size/2, addr)
		}
	}
}

func Test_PrimaryIndex_Stays_Within_Table_Bounds(t *testing.T) {
	t.Parallel()

	const size = uint64(1) << 16

	for addr := uint64(0); addr < 4096; addr++ {
		idx := primaryIndex(hashAddr(addr), size)
		if idx >= size {
			t.Fatalf("primary index %d out of bounds for size %d", idx, size)
		}
	}
}
