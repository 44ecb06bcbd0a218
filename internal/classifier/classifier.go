// Package classifier implements the per-batch destination-MAC dispatch
// that sits in front of an l2table.Table: for every frame in a batch,
// look up its destination MAC and hand the batch, together with the
// resolved per-frame output gates, to an external splitter.
package classifier

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/l2fwd/l2fwd/pkg/l2table"
)

// Frame is the minimal view of a packet buffer (snbuf in the host
// framework) the classifier needs: its head data, starting with the
// destination MAC.
type Frame interface {
	HeadData() []byte
}

// Batch is the minimal view of a packet batch the classifier needs.
type Batch interface {
	Frames() []Frame
}

// Splitter is the external collaborator that routes a batch onward
// using the resolved per-frame gates. gates has exactly len(batch.Frames())
// entries, in the same order.
type Splitter interface {
	Split(batch Batch, gates []uint32)
}

// Classifier reads each frame's destination MAC, looks it up in a
// table, and falls back to a configurable default gate on a miss.
//
// A Classifier is not safe for concurrent ProcessBatch calls on the
// same instance: the scheduling model is one classifier per
// run-to-completion worker. SetDefaultGate and DefaultGate ARE safe to
// call concurrently with ProcessBatch from another worker, since they
// go through a single atomic cell.
type Classifier struct {
	table       *l2table.Table
	defaultGate atomic.Uint32
	scratch     []uint32
}

// New creates a classifier over table, with its default gate
// initialized to defaultGate. If diag is non-nil, New writes one line
// to it reporting which bucket-search path (l2table.ActiveBucketSearch)
// is active for this build/runtime — no global logger, following the
// injected-writer convention used throughout this codebase.
func New(table *l2table.Table, defaultGate uint32, diag io.Writer) *Classifier {
	c := &Classifier{table: table}
	c.defaultGate.Store(defaultGate)
	if diag != nil {
		fmt.Fprintf(diag, "classifier: bucket search path = %s\n", l2table.ActiveBucketSearch())
	}
	return c
}

// SetDefaultGate atomically updates the gate used when a lookup misses.
func (c *Classifier) SetDefaultGate(gate uint32) {
	c.defaultGate.Store(gate)
}

// DefaultGate returns the current default gate.
func (c *Classifier) DefaultGate() uint32 {
	return c.defaultGate.Load()
}

// ProcessBatch resolves an output gate for every frame in batch and
// hands the result to splitter. default_gate is snapshotted once at
// entry so that every frame in the batch sees a consistent value even
// if set_default_gate runs concurrently on the control path.
func (c *Classifier) ProcessBatch(batch Batch, splitter Splitter) {
	defaultGate := c.defaultGate.Load()

	frames := batch.Frames()
	if cap(c.scratch) < len(frames) {
		c.scratch = make([]uint32, len(frames))
	}
	gates := c.scratch[:len(frames)]

	for i, f := range frames {
		gates[i] = defaultGate

		addr := l2table.CanonicalFromFrame(f.HeadData())
		if gate, err := c.table.Find(addr); err == nil {
			gates[i] = gate
		}
	}

	splitter.Split(batch, gates)
}
