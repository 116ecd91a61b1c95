package oscp

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/liyansong2018/moonlight/analytics"
	"github.com/liyansong2018/moonlight/corpus"
	"github.com/liyansong2018/moonlight/matrix"
	"github.com/liyansong2018/moonlight/solution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSolver writes files (name -> single byte) to a temp corpus
// directory, ingests them the way the CLI would, and returns a
// ready-to-run Solver plus its Solution.
func buildSolver(t *testing.T, files map[string]byte, weightFile corpus.WeightFile) (*Solver, *solution.Solution) {
	t.Helper()
	dir := t.TempDir()
	var listed []corpus.File
	for name, b := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte{b}, 0o644))
		listed = append(listed, corpus.File{Path: path, Size: 1})
	}
	sort.Sort(corpus.ByDescendingSize(listed))

	rows, err := corpus.Ingest(listed, weightFile, nil, false)
	require.NoError(t, err)

	m := matrix.New(8)
	for _, r := range rows {
		m.InsertRow(r)
	}

	an, err := analytics.New(m)
	require.NoError(t, err)

	sol := solution.New("test-corpus", "row_sum", m.NumRows(), m.NumCols())
	solver := New(m, sol, an, m.NumColsOrig(), false, weightFile)
	return solver, sol
}

func TestS1TrivialSingleRow(t *testing.T) {
	solver, sol := buildSolver(t, map[string]byte{"exemplar_a": 0b10000000}, nil)
	sol.SetInitialSingularities([]int{1, 2, 3, 4, 5, 6, 7})

	verified, err := solver.Solve()
	require.NoError(t, err)

	assert.Equal(t, []string{"exemplar_a"}, sol.FileNames())
	assert.Equal(t, 0, sol.NumNonOptimal)
	assert.Len(t, sol.InitialSingularities, 7)
	assert.True(t, verified)
}

func TestS2TwoDuplicates(t *testing.T) {
	solver, sol := buildSolver(t, map[string]byte{
		"exemplar_a": 0b11000000,
		"exemplar_b": 0b11000000,
	}, nil)
	sol.SetInitialSingularities([]int{2, 3, 4, 5, 6, 7})

	verified, err := solver.Solve()
	require.NoError(t, err)
	assert.True(t, verified)

	assert.Equal(t, []string{"exemplar_a"}, sol.FileNames())
	assert.Equal(t, float64(1), sol.Weight)
	assert.Equal(t, 0, sol.NumNonOptimal)
}

func TestS3DominatedRow(t *testing.T) {
	solver, sol := buildSolver(t, map[string]byte{
		"exemplar_a": 0b11100000,
		"exemplar_b": 0b01100000,
		"exemplar_c": 0b00010000,
	}, nil)
	sol.SetInitialSingularities([]int{4, 5, 6, 7})

	verified, err := solver.Solve()
	require.NoError(t, err)
	assert.True(t, verified)

	assert.Equal(t, []string{"exemplar_a", "exemplar_c"}, sol.FileNames())
}

// TestS4SupersetDominates covers a superset-domination case: z's
// column set is a strict superset of both x's and y's at equal weight,
// so rule 1 removes x and y and keeps z alone, which is also the
// cheaper cover (weight 1 vs 2). See DESIGN.md for the reasoning
// behind this outcome.
func TestS4SupersetDominates(t *testing.T) {
	solver, sol := buildSolver(t, map[string]byte{
		"exemplar_x": 0b10000000,
		"exemplar_y": 0b01000000,
		"exemplar_z": 0b11000000,
	}, nil)
	sol.SetInitialSingularities([]int{2, 3, 4, 5, 6, 7})

	verified, err := solver.Solve()
	require.NoError(t, err)
	assert.True(t, verified)

	assert.Equal(t, []string{"exemplar_z"}, sol.FileNames())
	assert.Equal(t, float64(1), sol.Weight)
}

func TestS5GreedyTieBreak(t *testing.T) {
	solver, sol := buildSolver(t, map[string]byte{
		"exemplar_a": 0b11000000,
		"exemplar_b": 0b00110000,
		"exemplar_c": 0b11110000,
	}, nil)
	sol.SetInitialSingularities([]int{4, 5, 6, 7})

	verified, err := solver.Solve()
	require.NoError(t, err)
	assert.True(t, verified)

	assert.Equal(t, []string{"exemplar_c"}, sol.FileNames())
}

func TestS6WeightedPreference(t *testing.T) {
	weights := corpus.WeightFile{"exemplar_a": 1, "exemplar_b": 1, "exemplar_c": 10}
	solver, sol := buildSolver(t, map[string]byte{
		"exemplar_a": 0b11000000,
		"exemplar_b": 0b00110000,
		"exemplar_c": 0b11110000,
	}, weights)
	sol.SetInitialSingularities([]int{4, 5, 6, 7})

	verified, err := solver.Solve()
	require.NoError(t, err)
	assert.True(t, verified)

	assert.Equal(t, []string{"exemplar_a", "exemplar_b"}, sol.FileNames())
	assert.Equal(t, float64(2), sol.Weight)
}

func TestVerifyCatchesUncoveredColumn(t *testing.T) {
	sol := solution.New("c", "row_sum", 1, 4)
	assert.False(t, Verify(sol, nil))
}
