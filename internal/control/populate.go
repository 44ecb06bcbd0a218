package control

import (
	"fmt"

	"github.com/l2fwd/l2fwd/pkg/l2table"
)

// Populate bulk-inserts count sequential MACs starting at base, with
// gate i%gate_count for the i-th entry. It is best-effort: a failed
// insertion inside the loop is silently skipped rather than aborting
// the command, a documented quirk kept for benchmarking convenience.
//
// The sequence is generated by reading base's six octets as a 48-bit
// big-endian integer (octet 0 most significant) and incrementing that
// integer, so consecutive generated MACs differ first in their last
// transmitted octet, carrying into earlier ones — matching a
// hardware-generated sweep on the wire rather than a little-endian
// counter over the canonical in-memory form.
func (m *Module) Populate(arg Value) error {
	if arg.Kind() != KindMap {
		return fmt.Errorf("%w: populate argument must be a map", ErrMalformedCommand)
	}

	baseVal, ok := arg.MapGet("base")
	if !ok {
		return fmt.Errorf("%w: populate base must exist and be a string", ErrMalformedCommand)
	}
	baseStr, ok := baseVal.Str()
	if !ok {
		return fmt.Errorf("%w: populate base must exist and be a string", ErrMalformedCommand)
	}

	countVal, ok := arg.MapGet("count")
	if !ok {
		return fmt.Errorf("%w: populate count must exist and be an integer", ErrMalformedCommand)
	}
	count, ok := countVal.Int()
	if !ok {
		return fmt.Errorf("%w: populate count must exist and be an integer", ErrMalformedCommand)
	}

	gateCountVal, ok := arg.MapGet("gate_count")
	if !ok {
		return fmt.Errorf("%w: populate gate_count must exist and be an integer", ErrMalformedCommand)
	}
	gateCount, ok := gateCountVal.Int()
	if !ok || gateCount <= 0 {
		return fmt.Errorf("%w: populate gate_count must exist and be a positive integer", ErrMalformedCommand)
	}

	base, err := l2table.ParseMAC(baseStr)
	if err != nil {
		return fmt.Errorf("%q is not a proper mac address: %w", baseStr, err)
	}

	counter := macToBigEndianCounter(base)

	for i := int64(0); i < count; i++ {
		addr := bigEndianCounterToMAC(counter)
		_ = m.table.Add(addr, uint32(i%gateCount))
		counter++
	}

	return nil
}

func macToBigEndianCounter(addr uint64) uint64 {
	octets := l2table.Octets(addr)
	var v uint64
	for _, b := range octets {
		v = v<<8 | uint64(b)
	}
	return v
}

func bigEndianCounterToMAC(v uint64) uint64 {
	var octets [6]byte
	for i := 5; i >= 0; i-- {
		octets[i] = byte(v)
		v >>= 8
	}
	return l2table.FromOctets(octets)
}
