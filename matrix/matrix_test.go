package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(cols ...[]int32) []RowElem {
	out := make([]RowElem, len(cols))
	for i, c := range cols {
		out[i] = NewRowElem("f", 1, 1.0, c)
	}
	return out
}

func TestInsertAndSums(t *testing.T) {
	m := New(8)
	for _, r := range rows([]int32{0, 1, 2}, []int32{1, 2}, []int32{7}) {
		m.InsertRow(r)
	}
	assert.Equal(t, 3, m.NumRows())
	assert.EqualValues(t, 6, m.NumElements())
	assert.Equal(t, []int{3, 2, 1}, m.GetRowSums())
	sums := m.GetColumnSums()
	assert.Equal(t, []int{1, 2, 2, 0, 0, 0, 0, 1}, sums)
}

func TestOverlapSelfEqualsRowSum(t *testing.T) {
	m := New(8)
	m.InsertRow(NewRowElem("a", 1, 1, []int32{0, 3, 5}))
	m.InsertRow(NewRowElem("b", 1, 1, []int32{3, 5, 7}))
	require.NoError(t, m.AssertInvariants())

	self, err := m.GetOverlap(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, self)

	ov, err := m.GetOverlap(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, ov)
}

func TestRemoveColsTombstonesInPlace(t *testing.T) {
	m := New(4)
	m.InsertRow(NewRowElem("a", 1, 1, []int32{0, 1, 2, 3}))
	require.NoError(t, m.RemoveCols([]int{1, 2}))
	assert.Equal(t, 2, m.NumCols())
	col, err := m.RowColumns(0)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, Deleted, Deleted, 1}, col)
	sum, err := m.GetRowSum(0)
	require.NoError(t, err)
	assert.Equal(t, 2, sum)
	require.NoError(t, m.AssertInvariants())
}

func TestRemoveRowsPreCallIndexing(t *testing.T) {
	m := New(2)
	m.InsertRow(NewRowElem("a", 1, 1, []int32{0}))
	m.InsertRow(NewRowElem("b", 1, 1, []int32{1}))
	m.InsertRow(NewRowElem("c", 1, 1, []int32{0, 1}))
	require.NoError(t, m.RemoveRows([]int{0, 2}))
	assert.Equal(t, 1, m.NumRows())
	path, err := m.GetRowExemplar(0)
	require.NoError(t, err)
	assert.Equal(t, "b", path)
}

func TestGetRowDense(t *testing.T) {
	m := New(4)
	m.InsertRow(NewRowElem("a", 1, 1, []int32{0, 2}))
	row, err := m.GetRow(0)
	require.NoError(t, err)
	assert.True(t, row.BitAt(0))
	assert.False(t, row.BitAt(1))
	assert.True(t, row.BitAt(2))
	assert.False(t, row.BitAt(3))
}

func TestIndexErrors(t *testing.T) {
	m := New(1)
	m.InsertRow(NewRowElem("a", 1, 1, []int32{0}))
	_, err := m.GetRowSum(5)
	assert.True(t, IsIndexError(err))
	assert.Error(t, m.RemoveRow(-1))
}

func TestColumnTransform(t *testing.T) {
	tr := NewColumnTransform(6, []int{1, 3})
	assert.Equal(t, ColumnTransform{0, Deleted, 1, Deleted, 2, 3}, tr)
}
