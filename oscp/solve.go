package oscp

import (
	"sort"

	"github.com/liyansong2018/moonlight/analytics"
	"github.com/liyansong2018/moonlight/corpus"
	"github.com/liyansong2018/moonlight/matrix"
	"github.com/liyansong2018/moonlight/solution"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("pkg", "oscp")

// Solver drives one matrix through the reduction/greedy loop,
// recording every selection into a solution.Solution and updating an
// analytics.Corpus in step.
type Solver struct {
	Matrix      *matrix.Matrix
	Solution    *solution.Solution
	Analytics   analytics.Corpus
	NumColsOrig int
	GreedyOnly  bool
	Weights     corpus.WeightFile

	// rowOrig[r] is the analytics-table index of the exemplar currently
	// occupying matrix row r; kept in lock-step with every row removal
	// so analytics updates stay addressed correctly as rows shift.
	rowOrig []int
}

// New builds a solver over m. analyticsTable may be nil when the caller
// does not want per-exemplar scoring (e.g. CLI runs without --analytics
// or --summary).
// weights is threaded through to the verifier Solve runs once the
// reduction loop completes.
func New(m *matrix.Matrix, sol *solution.Solution, analyticsTable analytics.Corpus, numColsOrig int, greedyOnly bool, weights corpus.WeightFile) *Solver {
	rowOrig := make([]int, m.NumRows())
	for i := range rowOrig {
		rowOrig[i] = i
	}
	return &Solver{
		Matrix:      m,
		Solution:    sol,
		Analytics:   analyticsTable,
		NumColsOrig: numColsOrig,
		GreedyOnly:  greedyOnly,
		Weights:     weights,
		rowOrig:     rowOrig,
	}
}

type ruleFlags struct {
	unitarians, subsetRows, supersetCols bool
}

// Solve drives the matrix to completion: the 3-bit rule schedule in
// priority order, falling back to one greedy pick whenever all three
// rules are exhausted, until the matrix has zero rows or zero columns.
// Once the loop settles, it verifies the resulting Solution and, only
// when verification passes, runs primality pruning over it — a solution
// that failed verification is untrustworthy input for pruning's
// column-coverage assumptions, so pruning never runs against one.
// Returns the verification verdict alongside any error from the loop
// itself.
func (s *Solver) Solve() (bool, error) {
	if err := s.solveLoop(); err != nil {
		return false, err
	}

	verified := Verify(s.Solution, s.Weights)
	if !verified {
		log.Warn("solution failed verification")
		return false, nil
	}

	if n := Prune(s.Solution); n > 0 {
		log.WithField("count", n).Info("primality check removed redundant selections")
	}
	return true, nil
}

func (s *Solver) solveLoop() error {
	if s.GreedyOnly {
		for s.Matrix.NumRows() > 0 && s.Matrix.NumCols() > 0 {
			if err := s.greedyStep(); err != nil {
				return err
			}
		}
		return nil
	}

	flags := ruleFlags{true, true, true}
	for s.Matrix.NumRows() > 0 && s.Matrix.NumCols() > 0 {
		switch {
		case flags.unitarians:
			applied, err := s.rule0()
			if err != nil {
				return err
			}
			flags.unitarians = false
			if applied {
				flags.subsetRows = true
			}
		case flags.subsetRows:
			applied, err := s.rule1()
			if err != nil {
				return err
			}
			flags.subsetRows = false
			if applied {
				flags.unitarians = true
				flags.supersetCols = true
			}
		case flags.supersetCols:
			applied, err := s.rule2()
			if err != nil {
				return err
			}
			flags.supersetCols = false
			if applied {
				flags.subsetRows = true
			}
		default:
			if err := s.greedyStep(); err != nil {
				return err
			}
			flags.subsetRows = true
		}
	}
	return nil
}

// removeRows deletes rows at the given pre-call positions, mirroring
// matrix.Matrix.RemoveRows' dedup-and-descend order so rowOrig always
// stays addressed to the same live rows as the underlying matrix.
func (s *Solver) removeRows(rows []int) error {
	if len(rows) == 0 {
		return nil
	}
	sorted := append([]int(nil), rows...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for i, r := range sorted {
		if i > 0 && r == sorted[i-1] {
			continue
		}
		s.rowOrig = append(s.rowOrig[:r], s.rowOrig[r+1:]...)
	}
	return s.Matrix.RemoveRows(rows)
}

// reduce is the shared "project, drop, sweep" helper:
// remove every column covered by any row in selected, remove selected
// itself, then remove any row left all-zero by the column drop.
func (s *Solver) reduce(selected []int) error {
	colSet := make(map[int]bool)
	for _, r := range selected {
		cols, err := s.Matrix.RowColumns(r)
		if err != nil {
			return err
		}
		for _, c := range cols {
			if c != matrix.Deleted {
				colSet[int(c)] = true
			}
		}
	}
	if len(colSet) > 0 {
		cols := make([]int, 0, len(colSet))
		for c := range colSet {
			cols = append(cols, c)
		}
		if err := s.Matrix.RemoveCols(cols); err != nil {
			return err
		}
	}
	if err := s.removeRows(selected); err != nil {
		return err
	}
	var zero []int
	for r := 0; r < s.Matrix.NumRows(); r++ {
		sum, err := s.Matrix.GetRowSum(r)
		if err != nil {
			return err
		}
		if sum == 0 {
			zero = append(zero, r)
		}
	}
	return s.removeRows(zero)
}

// captureSelection snapshots row r's raw, untransformed bit pattern
// (read straight from its source file, ignoring any column drops made
// so far) into the solution before the row is removed from the matrix.
func (s *Solver) captureSelection(r int, optimal bool) error {
	path, err := s.Matrix.GetRowExemplar(r)
	if err != nil {
		return err
	}
	weight, err := s.Matrix.GetRowWeight(r)
	if err != nil {
		return err
	}
	raw, err := corpus.BitRow(path, weight, nil, false)
	if err != nil {
		return err
	}
	b := bitfield.NewBitlist(uint64(s.NumColsOrig))
	for _, c := range raw.Column {
		if c != matrix.Deleted && int(c) < s.NumColsOrig {
			b.SetBitAt(uint64(c), true)
		}
	}
	s.Solution.Add(path, weight, b, optimal)
	return nil
}

type rowMeta struct {
	idx    int
	path   string
	weight float64
	rowSum int
	bits   bitfield.Bitlist
}

func (s *Solver) collectRowMeta() ([]rowMeta, error) {
	n := s.Matrix.NumRows()
	metas := make([]rowMeta, n)
	for r := 0; r < n; r++ {
		path, err := s.Matrix.GetRowExemplar(r)
		if err != nil {
			return nil, err
		}
		weight, err := s.Matrix.GetRowWeight(r)
		if err != nil {
			return nil, err
		}
		sum, err := s.Matrix.GetRowSum(r)
		if err != nil {
			return nil, err
		}
		bits, err := s.Matrix.GetRow(r)
		if err != nil {
			return nil, err
		}
		metas[r] = rowMeta{idx: r, path: path, weight: weight, rowSum: sum, bits: bits}
	}
	return metas, nil
}
