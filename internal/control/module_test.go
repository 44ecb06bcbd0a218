package control

import (
	"testing"

	"github.com/l2fwd/l2fwd/pkg/l2table"
)

func Test_Init_Defaults_Size_And_Bucket_When_Zero(t *testing.T) {
	t.Parallel()

	m, err := Init(0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer m.Deinit()

	if m.table.Size() != l2table.DefaultTableSize {
		t.Fatalf("size = %d, want %d", m.table.Size(), l2table.DefaultTableSize)
	}
	if m.table.Bucket() != l2table.DefaultBucketSize {
		t.Fatalf("bucket = %d, want %d", m.table.Bucket(), l2table.DefaultBucketSize)
	}
}

func Test_Deinit_Closes_Underlying_Table(t *testing.T) {
	t.Parallel()

	m, err := Init(4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Deinit(); err != nil {
		t.Fatalf("Deinit: %v", err)
	}
	if _, err := m.table.Find(0); err != l2table.ErrClosed {
		t.Fatalf("expected ErrClosed after Deinit, got %v", err)
	}
}
