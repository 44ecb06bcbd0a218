// l2bench measures Find and Add throughput on an l2table.Table after a
// populate-driven fill, and writes a text report.
//
// Usage:
//
//	l2bench [--size N] [--bucket N] [--entries N] [--gates N] [--lookups N] [--seed N] [--out path]
package main

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"

	"github.com/l2fwd/l2fwd/internal/control"
	"github.com/l2fwd/l2fwd/pkg/l2table"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("l2bench", flag.ExitOnError)
	size := fs.Uint64("size", l2table.DefaultTableSize, "number of buckets (power of two)")
	bucket := fs.Uint64("bucket", l2table.DefaultBucketSize, "entries per bucket (power of two, <= 4)")
	entries := fs.Int64("entries", 10_000, "number of MACs to populate")
	gates := fs.Int64("gates", 8, "number of distinct gates to spread across populated entries")
	lookups := fs.Int("lookups", 1_000_000, "number of Find calls to time")
	out := fs.String("out", "", "if set, write the report atomically to this path instead of stdout")
	seed := fs.Uint64("seed", 1, "PRNG seed for lookup sampling and Add micro-benchmark MACs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := control.Init(*size, *bucket)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer m.Deinit()

	populateArg := control.Map(map[string]control.Value{
		"base":       control.Str("02:00:00:00:00:00"),
		"count":      control.Int(*entries),
		"gate_count": control.Int(*gates),
	})
	populateStart := time.Now()
	if err := m.Populate(populateArg); err != nil {
		return fmt.Errorf("populate: %w", err)
	}
	populateElapsed := time.Since(populateStart)

	table := m.Table()
	report := &bytes.Buffer{}
	fmt.Fprintf(report, "l2bench report\n")
	fmt.Fprintf(report, "table: size=%d bucket=%d\n", table.Size(), table.Bucket())
	fmt.Fprintf(report, "populate: requested=%d actual=%d elapsed=%s\n", *entries, table.Count(), populateElapsed)

	rng := rand.New(rand.NewPCG(*seed, *seed^0xdeadbeef))

	findElapsed, findHits := benchmarkFind(table, *entries, *lookups, rng)
	fmt.Fprintf(report, "find: n=%d hits=%d elapsed=%s avg=%s\n",
		*lookups, findHits, findElapsed, findElapsed/time.Duration(max64(int64(*lookups), 1)))

	addElapsed, addOK := benchmarkAdd(table, *entries, rng)
	fmt.Fprintf(report, "add: n=%d ok=%d elapsed=%s avg=%s\n",
		*entries, addOK, addElapsed, addElapsed/time.Duration(max64(*entries, 1)))

	if *out == "" {
		_, err := os.Stdout.Write(report.Bytes())
		return err
	}
	return atomic.WriteFile(*out, report)
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// benchmarkFind times lookups distributed uniformly over [0, entries),
// regenerating each sampled address the same way Populate derived it.
func benchmarkFind(table *l2table.Table, entries int64, n int, rng *rand.Rand) (time.Duration, int) {
	base, _ := l2table.ParseMAC("02:00:00:00:00:00")
	counter := macCounter(base)

	hits := 0
	start := time.Now()
	for i := 0; i < n; i++ {
		idx := rng.Int64N(max64(entries, 1))
		addr := counterToMAC(counter + uint64(idx))
		if _, err := table.Find(addr); err == nil {
			hits++
		}
	}
	return time.Since(start), hits
}

// benchmarkAdd times inserting a disjoint run of entries-many freshly
// generated MACs into the already-populated table, to measure
// displacement cost once load factor is non-trivial.
func benchmarkAdd(table *l2table.Table, entries int64, rng *rand.Rand) (time.Duration, int) {
	base, _ := l2table.ParseMAC("04:00:00:00:00:00")
	counter := macCounter(base)

	ok := 0
	start := time.Now()
	for i := int64(0); i < entries; i++ {
		addr := counterToMAC(counter + uint64(i))
		gate := uint32(rng.Int32N(int32(l2table.MaxGate)))
		if err := table.Add(addr, gate); err == nil {
			ok++
		}
	}
	return time.Since(start), ok
}

func macCounter(addr uint64) uint64 {
	octets := l2table.Octets(addr)
	var v uint64
	for _, b := range octets {
		v = v<<8 | uint64(b)
	}
	return v
}

func counterToMAC(v uint64) uint64 {
	var octets [6]byte
	for i := 5; i >= 0; i-- {
		octets[i] = byte(v)
		v >>= 8
	}
	return l2table.FromOctets(octets)
}
