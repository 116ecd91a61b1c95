package largedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/liyansong2018/moonlight/corpus"
	"github.com/liyansong2018/moonlight/solution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, b byte) corpus.File {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte{b}, 0o644))
	return corpus.File{Path: path, Size: 1}
}

func TestCalcColsToIgnoreFoldsUnitariansAndSingularities(t *testing.T) {
	dir := t.TempDir()
	files := []corpus.File{
		writeFile(t, dir, "exemplar_a", 0b10000000),
		writeFile(t, dir, "exemplar_b", 0b01000000),
	}
	sol := solution.New("c", "row_sum", 2, 8)

	res, err := CalcColsToIgnore(files, nil, 8, sol)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, res.ColsToIgnore)
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7}, res.InitialSingularities)
	assert.Len(t, sol.Entries, 2)
	assert.Equal(t, float64(2), sol.Weight)
	for _, e := range sol.Entries {
		assert.True(t, e.Optimal)
	}
}

func TestCalcColsToIgnoreSkipsExcludedWeights(t *testing.T) {
	dir := t.TempDir()
	files := []corpus.File{
		writeFile(t, dir, "exemplar_a", 0b10000000),
		writeFile(t, dir, "exemplar_b", 0b01000000),
	}
	weights := corpus.WeightFile{"exemplar_b": 0}
	sol := solution.New("c", "row_sum", 2, 8)

	res, err := CalcColsToIgnore(files, weights, 8, sol)
	require.NoError(t, err)

	assert.Len(t, sol.Entries, 1)
	assert.Equal(t, "exemplar_a", filepath.Base(sol.Entries[0].FilePath))
	assert.Contains(t, res.InitialSingularities, 1)
}
