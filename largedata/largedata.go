package largedata

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/liyansong2018/moonlight/corpus"
	"github.com/liyansong2018/moonlight/matrix"
	"github.com/liyansong2018/moonlight/moonerr"
	"github.com/liyansong2018/moonlight/solution"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("pkg", "largedata")

// Result is calc_cols_to_ignore's output.
type Result struct {
	// ColsToIgnore is the sorted, deduplicated union of initial
	// singularities and columns covered by any row-unitarian row.
	ColsToIgnore []int
	// InitialSingularities holds the frequency-0 columns alone.
	InitialSingularities []int
}

// CalcColsToIgnore runs two streaming passes over files without
// materializing a matrix: pass one tallies per-column
// frequency across every positively-weighted exemplar; pass two finds
// row-unitarian rows (rows touching a frequency-1 column), folds each
// straight into sol as an optimal pick, and records the union of their
// covered columns for removal. width is 8 * the largest file size.
func CalcColsToIgnore(files []corpus.File, weights corpus.WeightFile, width int, sol *solution.Solution) (Result, error) {
	freq := make([]int, width)
	for _, f := range files {
		if weights.Excluded(filepath.Base(f.Path)) {
			continue
		}
		if err := scanFile(f.Path, func(col int) { freq[col]++ }); err != nil {
			return Result{}, err
		}
	}

	var singular []int
	for c, n := range freq {
		if n == 0 {
			singular = append(singular, c)
		}
	}
	ignore := make(map[int]bool, len(singular))
	for _, c := range singular {
		ignore[c] = true
	}

	for _, f := range files {
		name := filepath.Base(f.Path)
		if weights.Excluded(name) {
			continue
		}
		var cols []int
		unitarian := false
		if err := scanFile(f.Path, func(col int) {
			cols = append(cols, col)
			if freq[col] == 1 {
				unitarian = true
			}
		}); err != nil {
			return Result{}, err
		}
		if !unitarian {
			continue
		}
		for _, c := range cols {
			ignore[c] = true
		}

		weight := weights.WeightOf(name)
		row, err := corpus.BitRow(f.Path, weight, nil, false)
		if err != nil {
			return Result{}, err
		}
		b := bitfield.NewBitlist(uint64(width))
		for _, c := range row.Column {
			if c != matrix.Deleted && int(c) < width {
				b.SetBitAt(uint64(c), true)
			}
		}
		sol.Add(f.Path, weight, b, true)
		log.WithField("file", f.Path).Debug("large-data: row unitarian folded in before matrix build")
	}

	cols := make([]int, 0, len(ignore))
	for c := range ignore {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	return Result{ColsToIgnore: cols, InitialSingularities: singular}, nil
}

// scanFile expands path's bytes MSB-first, calling fn once per set bit
// with its column index, mirroring corpus.BitRow's bit order without
// building a matrix.RowElem.
func scanFile(path string, fn func(col int)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: cannot read %s: %v", moonerr.ErrIO, path, err)
	}
	col := 0
	for _, b := range data {
		mask := byte(0x80)
		for i := 0; i < 8; i++ {
			if b&mask != 0 {
				fn(col)
			}
			mask >>= 1
			col++
		}
	}
	return nil
}
