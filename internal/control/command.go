package control

import (
	"fmt"

	"github.com/l2fwd/l2fwd/pkg/l2table"
)

// Add inserts every {addr, gate} entry of arg (a list of maps). It
// propagates the first failure and stops processing the remaining
// entries.
func (m *Module) Add(arg Value) error {
	items, ok := arg.List()
	if !ok {
		return fmt.Errorf("%w: add argument must be a list", ErrMalformedCommand)
	}

	for _, item := range items {
		addr, gate, err := parseAddrGateEntry(item)
		if err != nil {
			return err
		}
		if err := m.table.Add(addr, gate); err != nil {
			return err
		}
	}

	return nil
}

func parseAddrGateEntry(item Value) (addr uint64, gate uint32, err error) {
	if item.Kind() != KindMap {
		return 0, 0, fmt.Errorf("%w: add list item must be a map", ErrMalformedCommand)
	}

	addrVal, ok := item.MapGet("addr")
	if !ok {
		return 0, 0, fmt.Errorf("%w: add list item map must contain addr as a string", ErrMalformedCommand)
	}
	addrStr, ok := addrVal.Str()
	if !ok {
		return 0, 0, fmt.Errorf("%w: add list item map must contain addr as a string", ErrMalformedCommand)
	}

	gateVal, ok := item.MapGet("gate")
	if !ok {
		return 0, 0, fmt.Errorf("%w: add list item map must contain gate as an integer", ErrMalformedCommand)
	}
	gateInt, ok := gateVal.Int()
	if !ok {
		return 0, 0, fmt.Errorf("%w: add list item map must contain gate as an integer", ErrMalformedCommand)
	}

	addr, err = l2table.ParseMAC(addrStr)
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a proper mac address: %w", addrStr, err)
	}

	return addr, uint32(gateInt), nil
}

// Delete removes every MAC in arg (a list of strings). It propagates
// the first failure and stops processing the remaining entries.
func (m *Module) Delete(arg Value) error {
	addrs, err := parseAddrList(arg, "delete")
	if err != nil {
		return err
	}

	for _, addr := range addrs {
		if err := m.table.Delete(addr); err != nil {
			return err
		}
	}

	return nil
}

// Lookup resolves every MAC in arg (a list of strings) to a gate
// index, in order. A miss aborts the whole command with ErrNotFound.
// Lookup only calls l2table.Table.Find, which readers may call
// concurrently with classifier.Classifier.ProcessBatch; it needs no
// extra synchronization of its own.
func (m *Module) Lookup(arg Value) ([]uint32, error) {
	addrs, err := parseAddrList(arg, "lookup")
	if err != nil {
		return nil, err
	}

	gates := make([]uint32, 0, len(addrs))
	for _, addr := range addrs {
		gate, err := m.table.Find(addr)
		if err != nil {
			return nil, err
		}
		gates = append(gates, gate)
	}

	return gates, nil
}

func parseAddrList(arg Value, command string) ([]uint64, error) {
	items, ok := arg.List()
	if !ok {
		return nil, fmt.Errorf("%w: %s must be given as a list", ErrMalformedCommand, command)
	}

	addrs := make([]uint64, 0, len(items))
	for _, item := range items {
		str, ok := item.Str()
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a list of strings", ErrMalformedCommand, command)
		}
		addr, err := l2table.ParseMAC(str)
		if err != nil {
			return nil, fmt.Errorf("%q is not a proper mac address: %w", str, err)
		}
		addrs = append(addrs, addr)
	}

	return addrs, nil
}

// SetDefaultGate atomically updates the classifier's default gate. It
// is mt-safe: it may be called concurrently with Lookup and with
// classifier.Classifier.ProcessBatch.
func (m *Module) SetDefaultGate(arg Value) error {
	gate, ok := arg.Int()
	if !ok {
		return fmt.Errorf("%w: set_default_gate argument must be an integer", ErrMalformedCommand)
	}

	m.classifier.SetDefaultGate(uint32(gate))
	return nil
}
