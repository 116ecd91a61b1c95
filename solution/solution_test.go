package solution

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/prysmaticlabs/go-bitfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowWith(width int, bits ...int) bitfield.Bitlist {
	b := bitfield.NewBitlist(uint64(width))
	for _, i := range bits {
		b.SetBitAt(uint64(i), true)
	}
	return b
}

func TestAddAccumulatesWeightAndOptimality(t *testing.T) {
	s := New("corpus", "rowsum", 3, 8)
	s.Add("/c/exemplar_a", 1, rowWith(8, 0, 1), true)
	s.Add("/c/exemplar_b", 10, rowWith(8, 2), false)

	assert.Equal(t, float64(11), s.Weight)
	assert.Equal(t, 1, s.NumNonOptimal)
	assert.Equal(t, float64(10), s.WeightNonOptimal)
	assert.Equal(t, []string{"exemplar_a", "exemplar_b"}, s.FileNames())
}

func TestRemoveUnwindsTotals(t *testing.T) {
	s := New("corpus", "rowsum", 3, 8)
	s.Add("/c/exemplar_a", 1, rowWith(8, 0), true)
	s.Add("/c/exemplar_b", 5, rowWith(8, 1), false)

	s.Remove([]int{1})

	require.Len(t, s.Entries, 1)
	assert.Equal(t, float64(1), s.Weight)
	assert.Equal(t, 0, s.NumNonOptimal)
	assert.Equal(t, float64(0), s.WeightNonOptimal)
}

func TestFileNamesSortedLexicographically(t *testing.T) {
	s := New("corpus", "rowsum", 2, 8)
	s.Add("/c/exemplar_z", 1, rowWith(8, 0), true)
	s.Add("/c/exemplar_a", 1, rowWith(8, 1), true)

	assert.Equal(t, []string{"exemplar_a", "exemplar_z"}, s.FileNames())
}

func TestCovers(t *testing.T) {
	s := New("corpus", "rowsum", 2, 4)
	s.Add("/c/exemplar_a", 1, rowWith(4, 0, 1), true)
	assert.False(t, s.Covers(4))

	s.Add("/c/exemplar_b", 1, rowWith(4, 2, 3), true)
	assert.True(t, s.Covers(4))
}

func TestWriteJSONMatchesSchema(t *testing.T) {
	s := New("my-corpus", "row-sum", 3, 8)
	s.SetInitialSingularities([]int{4, 5, 6, 7})
	s.Add("/c/exemplar_a", 1, rowWith(8, 0), true)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, s))

	var doc Doc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "my-corpus", doc.Corpus)
	assert.Equal(t, 3, doc.CorpusSize)
	assert.Equal(t, 1, doc.SolutionSize)
	assert.Equal(t, float64(1), doc.SolutionWeight)
	assert.Equal(t, 8, doc.NumBasicBlocks)
	assert.Equal(t, 4, doc.InitialSingularities)
	assert.Equal(t, 0, doc.NumNonOptimal)
	assert.Equal(t, []string{"exemplar_a"}, doc.Solution)
}
