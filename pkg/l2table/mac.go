package l2table

import "fmt"

// ParseMAC parses a MAC address string of the form "hh:hh:hh:hh:hh:hh"
// (six two-hex-digit octets, big-endian: the first pair is byte 0) into
// its canonical 48-bit internal form, where byte 0 occupies the
// least-significant byte of the returned word.
func ParseMAC(s string) (uint64, error) {
	if len(s) != 17 {
		return 0, fmt.Errorf("%w: %q is not a mac address", ErrInvalidArgument, s)
	}

	var octets [6]byte
	for i := range octets {
		pos := i * 3
		if i < 5 && s[pos+2] != ':' {
			return 0, fmt.Errorf("%w: %q is not a mac address", ErrInvalidArgument, s)
		}
		hi, ok1 := hexVal(s[pos])
		lo, ok2 := hexVal(s[pos+1])
		if !ok1 || !ok2 {
			return 0, fmt.Errorf("%w: %q is not a mac address", ErrInvalidArgument, s)
		}
		octets[i] = hi<<4 | lo
	}

	return octetsToCanonical(octets), nil
}

// FormatMAC renders a canonical 48-bit MAC as "hh:hh:hh:hh:hh:hh".
func FormatMAC(addr uint64) string {
	octets := canonicalToOctets(addr)
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		octets[0], octets[1], octets[2], octets[3], octets[4], octets[5])
}

// octetsToCanonical places b[0] in the least-significant byte of the
// returned word, matching a little-endian load of the first six bytes
// of a frame.
func octetsToCanonical(b [6]byte) uint64 {
	var addr uint64
	for i := 5; i >= 0; i-- {
		addr = addr<<8 | uint64(b[i])
	}
	return addr
}

func canonicalToOctets(addr uint64) [6]byte {
	var b [6]byte
	for i := range b {
		b[i] = byte(addr)
		addr >>= 8
	}
	return b
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Octets returns addr's six MAC octets in transmission order (b0 first).
func Octets(addr uint64) [6]byte { return canonicalToOctets(addr) }

// FromOctets builds the canonical 48-bit form from six MAC octets given
// in transmission order (b0 first).
func FromOctets(b [6]byte) uint64 { return octetsToCanonical(b) }

// CanonicalFromFrame reads the first six bytes of frame (the
// destination MAC in network/transmission order) and converts them to
// canonical 48-bit internal form. It panics if frame has fewer than six
// bytes; callers on the fast path must guarantee a full Ethernet header
// is present.
func CanonicalFromFrame(frame []byte) uint64 {
	var octets [6]byte
	copy(octets[:], frame[:6])
	return octetsToCanonical(octets)
}
