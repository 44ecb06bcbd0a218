package l2table

import "errors"

// Error classification for table operations.
//
// Callers MUST classify errors using errors.Is; concrete errors
// returned by this package wrap these sentinels with the offending
// address or argument.
var (
	// ErrInvalidArgument marks a malformed init argument: a non-power-of-two
	// size or bucket count, or one outside its allowed range.
	ErrInvalidArgument = errors.New("l2table: invalid argument")

	// ErrNotFound marks a lookup or delete for an address not present
	// in the table.
	ErrNotFound = errors.New("l2table: not found")

	// ErrAlreadyExists marks an add for an address already present.
	ErrAlreadyExists = errors.New("l2table: already exists")

	// ErrOutOfSpace marks an add that failed because no free slot was
	// found in the primary bucket, and single-level displacement also
	// failed to free one.
	ErrOutOfSpace = errors.New("l2table: out of space")

	// ErrOutOfMemory marks an init whose entry array could not be
	// allocated.
	ErrOutOfMemory = errors.New("l2table: out of memory")

	// ErrClosed marks an operation on a table that has already been
	// torn down with Close.
	ErrClosed = errors.New("l2table: closed")
)
