// l2ctl is an interactive CLI for driving an l2fwd control surface:
// add, delete, lookup, set_default_gate, populate, flush.
//
// Usage:
//
//	l2ctl [--config path] [--size N] [--bucket N]
//
// --config names a JSONC (JSON with comments and trailing commas)
// document with "size"/"bucket" fields, parsed the same way the
// module-init argument is (internal/control.ParseInitArg). --size and
// --bucket, when given explicitly, override the config file's values.
//
// Commands (in REPL):
//
//	add <mac> <gate>                 Insert addr -> gate
//	delete <mac>                     Remove addr
//	lookup <mac> [mac...]            Resolve one or more MACs
//	set-default-gate <gate>          Update the fallback gate
//	populate <base> <count> <gates>  Bulk-insert a sequential MAC run
//	flush                            Clear the table
//	info                             Show table size/bucket/count
//	help                             Show this help
//	exit / quit / q                  Exit
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
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
	fs := flag.NewFlagSet("l2ctl", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a JSONC table-config file ({size, bucket}); --size/--bucket override it")
	size := fs.Uint64("size", l2table.DefaultTableSize, "number of buckets (power of two)")
	bucket := fs.Uint64("bucket", l2table.DefaultBucketSize, "entries per bucket (power of two, <= 4)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tableSize, tableBucket, err := resolveTableShape(*configPath, *size, *bucket, fs)
	if err != nil {
		return err
	}

	m, err := control.Init(tableSize, tableBucket)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer m.Deinit()

	repl := &REPL{module: m}
	return repl.Run()
}

// resolveTableShape layers the --config file's size/bucket under the
// --size/--bucket flag values, following the teacher's defaults-then-
// config-then-explicit-overrides precedence: an explicit flag always
// wins over the config file, and a non-zero config value always wins
// over the flag's built-in default (DefaultTableSize /
// DefaultBucketSize); a zero or omitted config value keeps the flag's
// value.
func resolveTableShape(configPath string, size, bucket uint64, fs *flag.FlagSet) (uint64, uint64, error) {
	if configPath == "" {
		return size, bucket, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return 0, 0, fmt.Errorf("reading config %s: %w", configPath, err)
	}

	arg, err := control.ParseInitArg(data)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing config %s: %w", configPath, err)
	}

	if arg.Size != 0 && !fs.Changed("size") {
		size = arg.Size
	}
	if arg.Bucket != 0 && !fs.Changed("bucket") {
		bucket = arg.Bucket
	}

	return size, bucket, nil
}

// REPL is the interactive command loop over a control.Module.
type REPL struct {
	module *control.Module
	liner  *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".l2ctl_history")
}

// Run starts the REPL loop.
func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("l2ctl - l2 forwarding table CLI (size=%d, bucket=%d)\n", r.module.Table().Size(), r.module.Table().Bucket())
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := r.liner.Prompt("l2ctl> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Println("\nBye!")
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			r.saveHistory()
			return nil

		case "help", "?":
			r.printHelp()

		case "add":
			r.cmdAdd(args)

		case "delete", "del":
			r.cmdDelete(args)

		case "lookup":
			r.cmdLookup(args)

		case "set-default-gate":
			r.cmdSetDefaultGate(args)

		case "populate":
			r.cmdPopulate(args)

		case "flush":
			r.cmdFlush()

		case "info":
			r.cmdInfo()

		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()
	return nil
}

func (r *REPL) saveHistory() {
	path := historyFile()
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	r.liner.WriteHistory(f)
}

func (r *REPL) printHelp() {
	fmt.Println(`commands:
  add <mac> <gate>                 insert addr -> gate
  delete <mac>                     remove addr
  lookup <mac> [mac...]            resolve one or more MACs
  set-default-gate <gate>          update the fallback gate
  populate <base> <count> <gates>  bulk-insert a sequential MAC run
  flush                            clear the table
  info                             show table size/bucket/count
  help                              show this help
  exit / quit / q                  exit`)
}

func (r *REPL) cmdAdd(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: add <mac> <gate>")
		return
	}
	gate, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("error: invalid gate %q\n", args[1])
		return
	}

	entry := control.Map(map[string]control.Value{"addr": control.Str(args[0]), "gate": control.Int(int64(gate))})
	if err := r.module.Add(control.List(entry)); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("ok")
}

func (r *REPL) cmdDelete(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: delete <mac>")
		return
	}
	if err := r.module.Delete(control.List(control.Str(args[0]))); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("ok")
}

func (r *REPL) cmdLookup(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: lookup <mac> [mac...]")
		return
	}
	values := make([]control.Value, len(args))
	for i, a := range args {
		values[i] = control.Str(a)
	}
	gates, err := r.module.Lookup(control.List(values...))
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	for i, mac := range args {
		fmt.Printf("%s -> %d\n", mac, gates[i])
	}
}

func (r *REPL) cmdSetDefaultGate(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: set-default-gate <gate>")
		return
	}
	gate, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("error: invalid gate %q\n", args[0])
		return
	}
	if err := r.module.SetDefaultGate(control.Int(int64(gate))); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("ok")
}

func (r *REPL) cmdPopulate(args []string) {
	if len(args) != 3 {
		fmt.Println("usage: populate <base> <count> <gate-count>")
		return
	}
	count, err1 := strconv.Atoi(args[1])
	gateCount, err2 := strconv.Atoi(args[2])
	if err1 != nil || err2 != nil {
		fmt.Println("error: count and gate-count must be integers")
		return
	}

	arg := control.Map(map[string]control.Value{
		"base":       control.Str(args[0]),
		"count":      control.Int(int64(count)),
		"gate_count": control.Int(int64(gateCount)),
	})
	if err := r.module.Populate(arg); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("ok")
}

func (r *REPL) cmdFlush() {
	if err := r.module.Table().Flush(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("ok")
}

func (r *REPL) cmdInfo() {
	t := r.module.Table()
	fmt.Printf("size=%d bucket=%d count=%d default_gate=%d\n",
		t.Size(), t.Bucket(), t.Count(), r.module.Classifier().DefaultGate())
}
