// Package moonerr defines the error-kind sentinels shared across the
// moonlight packages. Callers wrap a sentinel with context using
// fmt.Errorf("%w: ...", moonerr.ErrIO) and match it back with errors.Is.
package moonerr

import "errors"

var (
	// ErrIO marks a failure reading or writing a corpus file, weight
	// file, or cache blob. Fatal to the run that hit it.
	ErrIO = errors.New("moonlight: io error")

	// ErrFormat marks a malformed weight file, corpus pattern, or cache
	// blob. Fatal.
	ErrFormat = errors.New("moonlight: format error")

	// ErrIndex marks an out-of-range row or column argument passed to
	// the matrix. Indicates a bug in the caller, not bad input data.
	ErrIndex = errors.New("moonlight: index error")

	// ErrInvariant marks a post-condition check failing inside the
	// matrix or solver (e.g. row_sum disagreeing with the column list).
	// Fatal; indicates a bug.
	ErrInvariant = errors.New("moonlight: invariant violation")
)
