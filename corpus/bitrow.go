package corpus

import (
	"fmt"
	"os"

	"github.com/liyansong2018/moonlight/matrix"
	"github.com/liyansong2018/moonlight/moonerr"
)

// BitRow reads path's bytes and expands them MSB-first into a
// matrix.RowElem: for every set bit whose original column index i has
// transform[i] != matrix.Deleted, transform[i] is appended to the row's
// column sequence. Since original indices are visited ascending and the
// transform is monotonically non-decreasing on live inputs, the
// resulting sequence is strictly increasing. requireNonEmpty controls
// whether a zero-byte file is a FormatError or an accepted empty row.
func BitRow(path string, weight float64, t matrix.ColumnTransform, requireNonEmpty bool) (matrix.RowElem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return matrix.RowElem{}, fmt.Errorf("%w: cannot read %s: %v", moonerr.ErrIO, path, err)
	}
	if requireNonEmpty && len(data) == 0 {
		return matrix.RowElem{}, fmt.Errorf("%w: empty exemplar file %s", moonerr.ErrFormat, path)
	}
	column := make([]int32, 0, len(data)*8/4)
	col := 0
	for _, b := range data {
		mask := byte(0x80)
		for i := 0; i < 8; i++ {
			if b&mask != 0 {
				if t == nil {
					column = append(column, int32(col))
				} else if nv := t.Apply(int32(col)); nv != matrix.Deleted {
					column = append(column, nv)
				}
			}
			mask >>= 1
			col++
		}
	}
	return matrix.NewRowElem(path, len(data), weight, column), nil
}
