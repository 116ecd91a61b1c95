package matrix

import (
	"sort"

	"github.com/prysmaticlabs/go-bitfield"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("pkg", "matrix")

// Matrix is a row-major, list-of-lists sparse logical matrix: it stores
// only the positions where an entry is one, and supports deleting rows
// and columns after construction but never inserting them once solving
// has begun.
type Matrix struct {
	numCols     int
	numColsOrig int
	numElems    int64
	rows        []RowElem
}

// New returns an empty matrix over a column universe of numColsOrig
// columns (8 * the largest exemplar file).
func New(numColsOrig int) *Matrix {
	return &Matrix{numCols: numColsOrig, numColsOrig: numColsOrig}
}

// Restore rebuilds a matrix from previously-persisted state — the
// cache package's collaborator hook. numCols may be less than
// numColsOrig when the cached matrix already had columns dropped;
// rows must carry tombstones consistent with that numCols.
func Restore(numCols, numColsOrig int, rows []RowElem) *Matrix {
	var elems int64
	for i := range rows {
		elems += int64(rows[i].RowSum)
	}
	return &Matrix{numCols: numCols, numColsOrig: numColsOrig, numElems: elems, rows: rows}
}

// NumRows is the current row count.
func (m *Matrix) NumRows() int { return len(m.rows) }

// NumCols is the current column count, after any RemoveCol(s) calls.
func (m *Matrix) NumCols() int { return m.numCols }

// NumColsOrig is the column count as constructed, before any columns
// were ever dropped.
func (m *Matrix) NumColsOrig() int { return m.numColsOrig }

// NumElements is the total number of ones currently in the matrix.
func (m *Matrix) NumElements() int64 { return m.numElems }

// InsertRow appends row to the matrix. Only valid during initial
// construction; the matrix does not support insertion once rows or
// columns have been removed.
func (m *Matrix) InsertRow(row RowElem) {
	m.rows = append(m.rows, row)
	m.numElems += int64(row.RowSum)
}

// row returns a reference to the row at index r without bounds checking;
// exported accessors go through checked wrappers below.
func (m *Matrix) row(r int) *RowElem { return &m.rows[r] }

func (m *Matrix) checkRow(r int) error {
	if r < 0 || r >= len(m.rows) {
		return indexErr(ErrRowIndex, r, len(m.rows))
	}
	return nil
}

func (m *Matrix) checkCol(c int) error {
	if c < 0 || c >= m.numCols {
		return indexErr(ErrColIndex, c, m.numCols)
	}
	return nil
}

// GetRowExemplar returns the source file path of row r.
func (m *Matrix) GetRowExemplar(r int) (string, error) {
	if err := m.checkRow(r); err != nil {
		return "", err
	}
	return m.rows[r].FilePath, nil
}

// GetRowFileSize returns the byte size of row r's source file.
func (m *Matrix) GetRowFileSize(r int) (int, error) {
	if err := m.checkRow(r); err != nil {
		return 0, err
	}
	return m.rows[r].FileSize, nil
}

// GetRowWeight returns row r's weight.
func (m *Matrix) GetRowWeight(r int) (float64, error) {
	if err := m.checkRow(r); err != nil {
		return 0, err
	}
	return m.rows[r].Weight, nil
}

// RowColumns exposes row r's raw, tombstone-including column sequence.
// Callers must not retain a reference across a mutating call.
func (m *Matrix) RowColumns(r int) ([]int32, error) {
	if err := m.checkRow(r); err != nil {
		return nil, err
	}
	return m.rows[r].Column, nil
}

// GetRow returns a dense bit-vector of width NumCols() for row r.
func (m *Matrix) GetRow(r int) (bitfield.Bitlist, error) {
	if err := m.checkRow(r); err != nil {
		return nil, err
	}
	b := bitfield.NewBitlist(uint64(m.numCols))
	for _, c := range m.rows[r].Column {
		if c != Deleted {
			b.SetBitAt(uint64(c), true)
		}
	}
	return b, nil
}

// GetCol returns a dense bit-vector of length NumRows() for column c,
// built by binary-searching each row's column sequence.
func (m *Matrix) GetCol(c int) (bitfield.Bitlist, error) {
	if err := m.checkCol(c); err != nil {
		return nil, err
	}
	b := bitfield.NewBitlist(uint64(len(m.rows)))
	target := int32(c)
	for r := range m.rows {
		if rowHasSorted(m.rows[r].Column, target) {
			b.SetBitAt(uint64(r), true)
		}
	}
	return b, nil
}

// rowHasSorted binary-searches col (which may contain Deleted tombstones
// interleaved among strictly increasing live entries) for target.
func rowHasSorted(col []int32, target int32) bool {
	lo, hi := 0, len(col)
	for lo < hi {
		mid := (lo + hi) / 2
		v := col[mid]
		if v == Deleted {
			// Tombstones don't participate in ordering guarantees for
			// binary search across the whole slice, so fall back to a
			// linear scan once we hit one.
			return linearHas(col, target)
		}
		switch {
		case v == target:
			return true
		case v < target:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}

func linearHas(col []int32, target int32) bool {
	for _, v := range col {
		if v == Deleted {
			continue
		}
		if v == target {
			return true
		}
		if v > target {
			return false
		}
	}
	return false
}

// IsRowColumnSet reports whether Matrix[r,c] == 1, via a bounded scan of
// row r's column sequence that stops once an entry >= c is found.
func (m *Matrix) IsRowColumnSet(r, c int) (bool, error) {
	if err := m.checkRow(r); err != nil {
		return false, err
	}
	if err := m.checkCol(c); err != nil {
		return false, err
	}
	return m.rows[r].has(int32(c)), nil
}

// GetRowSum returns row r's current non-tombstone entry count.
func (m *Matrix) GetRowSum(r int) (int, error) {
	if err := m.checkRow(r); err != nil {
		return 0, err
	}
	return m.rows[r].RowSum, nil
}

// GetRowSums returns the row-sum vector for every row.
func (m *Matrix) GetRowSums() []int {
	out := make([]int, len(m.rows))
	for i := range m.rows {
		out[i] = m.rows[i].RowSum
	}
	return out
}

// GetColumnSums returns the column-sum vector for every column.
func (m *Matrix) GetColumnSums() []int {
	out := make([]int, m.numCols)
	for i := range m.rows {
		for _, c := range m.rows[i].Column {
			if c != Deleted {
				out[c]++
			}
		}
	}
	return out
}

// GetOverlap returns the number of columns set in both r1 and r2, via a
// two-pointer merge over the sorted (tombstone-skipping) column
// sequences. Guaranteed overlap <= min(RowSum(r1), RowSum(r2)).
func (m *Matrix) GetOverlap(r1, r2 int) (int, error) {
	if err := m.checkRow(r1); err != nil {
		return 0, err
	}
	if err := m.checkRow(r2); err != nil {
		return 0, err
	}
	a, b := m.rows[r1].Column, m.rows[r2].Column
	i, j, overlap := 0, 0, 0
	for i < len(a) && j < len(b) {
		if a[i] == Deleted {
			i++
			continue
		}
		if b[j] == Deleted {
			j++
			continue
		}
		switch {
		case a[i] == b[j]:
			overlap++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return overlap, nil
}

// RemoveRow deletes the row at index r (interpreted against the current,
// pre-call row numbering — see RemoveRows for the multi-row contract).
func (m *Matrix) RemoveRow(r int) error {
	if err := m.checkRow(r); err != nil {
		return err
	}
	m.numElems -= int64(m.rows[r].RowSum)
	m.rows = append(m.rows[:r], m.rows[r+1:]...)
	return nil
}

// RemoveRows deletes every row whose index appears in delList, where all
// indices refer to the row numbering as of entry to this call (not
// renumbered as earlier deletions happen). Implemented by sorting
// descending and deleting from the back so earlier indices stay valid.
func (m *Matrix) RemoveRows(delList []int) error {
	if len(delList) == 0 {
		return nil
	}
	sorted := append([]int(nil), delList...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for i, r := range sorted {
		if i > 0 && r == sorted[i-1] {
			continue // dedup
		}
		if err := m.RemoveRow(r); err != nil {
			return err
		}
	}
	return nil
}

// RemoveCol deletes column c (pre-call indexing).
func (m *Matrix) RemoveCol(c int) error {
	return m.RemoveCols([]int{c})
}

// RemoveCols deletes every column whose index appears in delList, where
// all indices refer to the pre-call column numbering. Every row's
// Column sequence is rewritten in place through the transform derived
// from delList: dropped entries become Deleted, surviving entries are
// relocated. RowSum is decremented for every entry newly tombstoned.
func (m *Matrix) RemoveCols(delList []int) error {
	if len(delList) == 0 {
		return nil
	}
	sorted := dedupSortedInts(delList)
	for _, c := range sorted {
		if c < 0 || c >= m.numCols {
			return indexErr(ErrColIndex, c, m.numCols)
		}
	}
	t := NewColumnTransform(m.numCols, sorted)
	var removed int64
	for i := range m.rows {
		before := m.rows[i].RowSum
		m.rows[i].applyTransform(t)
		removed += int64(before - m.rows[i].RowSum)
	}
	m.numElems -= removed
	m.numCols -= len(sorted)
	log.WithFields(logrus.Fields{"dropped": len(sorted), "cols": m.numCols}).Debug("removed columns")
	return nil
}

func dedupSortedInts(in []int) []int {
	sorted := append([]int(nil), in...)
	sort.Ints(sorted)
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// AssertInvariants validates the matrix's row_sum and column-range
// invariants: row_sum agrees with the live entry count, and every live
// entry is in [0, NumCols()). Intended for tests and debug builds, not
// the hot path.
func (m *Matrix) AssertInvariants() error {
	var elems int64
	for r := range m.rows {
		live := 0
		last := int32(-1)
		hadLive := false
		for _, c := range m.rows[r].Column {
			if c == Deleted {
				continue
			}
			if hadLive && c <= last {
				return ErrRowSumMismatch
			}
			last = c
			hadLive = true
			if c < 0 || int(c) >= m.numCols {
				return indexErr(ErrColIndex, int(c), m.numCols)
			}
			live++
		}
		if live != m.rows[r].RowSum {
			return ErrRowSumMismatch
		}
		elems += int64(live)
	}
	if elems != m.numElems {
		return ErrRowSumMismatch
	}
	return nil
}

// CloneRow returns a deep copy of row r's metadata, used by the Solution
// accumulator to snapshot a selected exemplar.
func (m *Matrix) CloneRow(r int) (RowElem, error) {
	if err := m.checkRow(r); err != nil {
		return RowElem{}, err
	}
	return m.rows[r].clone(), nil
}
