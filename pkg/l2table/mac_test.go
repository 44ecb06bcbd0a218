package l2table

import (
	"errors"
	"testing"
)

func Test_ParseMAC_Returns_Canonical_Form_When_Valid(t *testing.T) {
	t.Parallel()

	addr, err := ParseMAC("01:23:45:67:01:23")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := octetsToCanonical([6]byte{0x01, 0x23, 0x45, 0x67, 0x01, 0x23})
	if addr != want {
		t.Fatalf("addr = %x, want %x", addr, want)
	}
}

func Test_ParseMAC_Returns_Invalid_When_Shape_Wrong(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"01:23:45:67:01",
		"01:23:45:67:01:23:45",
		"gg:23:45:67:01:23",
		"01-23-45-67-01-23",
		"01:23:45:67:01:2",
	}

	for _, s := range cases {
		if _, err := ParseMAC(s); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("ParseMAC(%q) = %v, want ErrInvalidArgument", s, err)
		}
	}
}

func Test_FormatMAC_Inverts_ParseMAC(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"00:00:00:00:00:00", "ff:ff:ff:ff:ff:ff", "de:ad:be:ef:00:01"} {
		addr, err := ParseMAC(s)
		if err != nil {
			t.Fatalf("ParseMAC(%q): %v", s, err)
		}
		if got := FormatMAC(addr); got != s {
			t.Fatalf("FormatMAC(ParseMAC(%q)) = %q, want %q", s, got, s)
		}
	}
}

func Test_CanonicalFromFrame_Matches_ParseMAC(t *testing.T) {
	t.Parallel()

	frame := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0xaa, 0xbb}
	addr := CanonicalFromFrame(frame)

	want, err := ParseMAC("de:ad:be:ef:00:01")
	if err != nil {
		t.Fatalf("ParseMAC: %v", err)
	}
	if addr != want {
		t.Fatalf("CanonicalFromFrame = %x, want %x", addr, want)
	}
}
