package matrix

import (
	"errors"
	"fmt"

	"github.com/liyansong2018/moonlight/moonerr"
)

// ErrRowIndex is returned when a row index falls outside [0, NumRows()).
var ErrRowIndex = fmt.Errorf("%w: row index out of range", moonerr.ErrIndex)

// ErrColIndex is returned when a column index falls outside [0, NumCols()).
var ErrColIndex = fmt.Errorf("%w: column index out of range", moonerr.ErrIndex)

// ErrRowSumMismatch is returned by AssertInvariants when a row's RowSum
// field disagrees with the number of non-tombstone entries in its Column.
var ErrRowSumMismatch = fmt.Errorf("%w: row_sum does not match column contents", moonerr.ErrInvariant)

func indexErr(base error, idx, bound int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", base, idx, bound)
}

// IsIndexError reports whether err is a matrix index error.
func IsIndexError(err error) bool {
	return errors.Is(err, moonerr.ErrIndex)
}
