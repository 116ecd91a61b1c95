package analytics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/liyansong2018/moonlight/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMatrix() *matrix.Matrix {
	m := matrix.New(4)
	m.InsertRow(matrix.NewRowElem("/c/exemplar_a", 1, 1, []int32{0, 1}))
	m.InsertRow(matrix.NewRowElem("/c/exemplar_b", 1, 1, []int32{2}))
	return m
}

func TestNewSeedsFromMatrix(t *testing.T) {
	c, err := New(buildMatrix())
	require.NoError(t, err)
	require.Len(t, c, 2)
	assert.Equal(t, 2, c[0].ScoreRowSum)
	assert.Equal(t, 1, c[1].ScoreRowSum)
}

func TestBumpUnitarianAndHistogram(t *testing.T) {
	c, err := New(buildMatrix())
	require.NoError(t, err)
	c.BumpUnitarian(0)
	c.BumpUnitarian(0)
	assert.Equal(t, 2, c[0].ScoreUnitarian)

	h := c.Histogram()
	assert.Equal(t, 1, h[2])
	assert.Equal(t, 1, h[1])
}

func TestWriteCSV(t *testing.T) {
	c, err := New(buildMatrix())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, c))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "index,file,trace_file_size,selected_greedy,score_rowsum,score_unitarian,score_block_target", lines[0])
	assert.Contains(t, lines[1], "exemplar_a")
}
