package matrix

// Deleted is the sentinel column-index value marking a tombstoned entry:
// a position whose slot in a row's Column slice must be preserved (so
// later entries keep their position) but which no longer represents a
// one in the matrix. It is never a valid column index.
const Deleted int32 = -1

// ColumnTransform maps an original column index to its compacted index.
// transform[i] == Deleted means column i has been dropped; otherwise
// transform[i] is the new index of column i after the drop set has been
// removed. A ColumnTransform is monotonically non-decreasing on its
// non-Deleted outputs.
type ColumnTransform []int32

// NewColumnTransform builds the transform for dropping the columns in
// drop (which must be sorted ascending and free of duplicates) out of a
// universe of width original columns.
func NewColumnTransform(width int, drop []int) ColumnTransform {
	t := make(ColumnTransform, width)
	di, dropped := 0, int32(0)
	for i := 0; i < width; i++ {
		if di < len(drop) && drop[di] == i {
			t[i] = Deleted
			dropped++
			di++
			continue
		}
		t[i] = int32(i) - dropped
	}
	return t
}

// Apply returns the transformed index for the original column i, or
// Deleted if i is in the drop set. i must be a valid index into t.
func (t ColumnTransform) Apply(i int32) int32 {
	if i == Deleted {
		return Deleted
	}
	return t[i]
}
