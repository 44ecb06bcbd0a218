package control

import (
	"os"

	"github.com/l2fwd/l2fwd/internal/classifier"
	"github.com/l2fwd/l2fwd/pkg/l2table"
)

// Module owns the table and classifier for one instance of the L2
// forwarding component and is the receiver for every command.
type Module struct {
	table      *l2table.Table
	classifier *classifier.Classifier
}

// Init creates a Module. size == 0 defaults to l2table.DefaultTableSize
// and bucket == 0 defaults to l2table.DefaultBucketSize, matching the
// module-init argument's documented defaults. The classifier's default
// gate starts at l2table.DropGate until set_default_gate runs.
func Init(size, bucket uint64) (*Module, error) {
	if size == 0 {
		size = l2table.DefaultTableSize
	}
	if bucket == 0 {
		bucket = l2table.DefaultBucketSize
	}

	table, err := l2table.New(size, bucket)
	if err != nil {
		return nil, err
	}

	return &Module{
		table:      table,
		classifier: classifier.New(table, l2table.DropGate, os.Stderr),
	}, nil
}

// Deinit tears down the module's table.
func (m *Module) Deinit() error {
	return m.table.Close()
}

// Table returns the module's table engine, e.g. for wiring into a
// classifier.Batch processing loop owned by the caller.
func (m *Module) Table() *l2table.Table {
	return m.table
}

// Classifier returns the module's classifier front-end.
func (m *Module) Classifier() *classifier.Classifier {
	return m.classifier
}
