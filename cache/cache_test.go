package cache

import (
	"path/filepath"
	"testing"

	"github.com/liyansong2018/moonlight/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMatrix() *matrix.Matrix {
	m := matrix.New(8)
	m.InsertRow(matrix.NewRowElem("/c/exemplar_a", 1, 1, []int32{0, 1}))
	m.InsertRow(matrix.NewRowElem("/c/exemplar_b", 1, 1, []int32{2}))
	return m
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := buildMatrix()
	path := filepath.Join(t.TempDir(), "matrix.cache")
	require.NoError(t, Save(path, "/c", "exemplar_", m))

	loaded, err := Load(path, "/c", "exemplar_")
	require.NoError(t, err)
	assert.Equal(t, m.NumRows(), loaded.NumRows())
	assert.Equal(t, m.NumCols(), loaded.NumCols())
	assert.Equal(t, m.NumColsOrig(), loaded.NumColsOrig())
	assert.Equal(t, m.NumElements(), loaded.NumElements())

	path0, err := loaded.GetRowExemplar(0)
	require.NoError(t, err)
	assert.Equal(t, "/c/exemplar_a", path0)
}

func TestLoadRejectsMismatchedCorpus(t *testing.T) {
	m := buildMatrix()
	path := filepath.Join(t.TempDir(), "matrix.cache")
	require.NoError(t, Save(path, "/c", "exemplar_", m))

	_, err := Load(path, "/other", "exemplar_")
	assert.Error(t, err)
}
