package control

import "errors"

// ErrMalformedCommand marks a command argument whose shape doesn't
// match its contract (wrong value kind, missing map key) before it
// ever reaches the table engine. The table engine's own sentinels
// (l2table.ErrInvalidArgument, ErrNotFound, ErrAlreadyExists,
// ErrOutOfSpace, ErrOutOfMemory) propagate through command handlers
// unwrapped-further, aside from adding the offending argument.
var ErrMalformedCommand = errors.New("control: malformed command")
