package solution

import (
	"path/filepath"
	"sort"

	"github.com/prysmaticlabs/go-bitfield"
)

// Entry is one exemplar chosen into a Solution.
type Entry struct {
	FilePath string
	Row      bitfield.Bitlist
	Weight   float64
	Optimal  bool
}

// Solution accumulates the exemplars chosen for an OSCP cover, in
// selection order, together with the running totals the JSON exporter
// and the verifier both need.
type Solution struct {
	CorpusName string
	ScoreLabel string
	NumRows    int
	NumColumns int

	Entries []Entry

	Weight           float64
	NumNonOptimal    int
	WeightNonOptimal float64

	// InitialSingularities holds the columns whose sum was zero across
	// the whole corpus before any reduction ran, sorted ascending. Reported as a count in the
	// JSON output; kept as the full list here so the verifier can cross
	// check them against the final cover.
	InitialSingularities []int
}

// New starts an empty accumulator for a corpus of the given shape.
func New(corpusName, scoreLabel string, numRows, numColumns int) *Solution {
	return &Solution{
		CorpusName: corpusName,
		ScoreLabel: scoreLabel,
		NumRows:    numRows,
		NumColumns: numColumns,
	}
}

// SetInitialSingularities records the pre-reduction zero-sum columns.
func (s *Solution) SetInitialSingularities(cols []int) {
	sorted := append([]int(nil), cols...)
	sort.Ints(sorted)
	s.InitialSingularities = sorted
}

// Add appends a chosen exemplar. row must be the exemplar's raw,
// untransformed bit-vector, captured before any RemoveCols call folds
// dropped columns out of the live numbering. optimal is false when the
// exemplar was picked by the greedy heuristic rather than an exact
// reduction rule.
func (s *Solution) Add(filePath string, weight float64, row bitfield.Bitlist, optimal bool) {
	s.Entries = append(s.Entries, Entry{FilePath: filePath, Row: row, Weight: weight, Optimal: optimal})
	s.Weight += weight
	if !optimal {
		s.NumNonOptimal++
		s.WeightNonOptimal += weight
	}
}

// Remove drops the entries at the given positions (indices into
// Entries, pre-call numbering) and unwinds their contribution to the
// running totals. Used by the primality-pruning pass to retract greedy
// picks that turned out to be redundant once later picks were made.
func (s *Solution) Remove(positions []int) {
	if len(positions) == 0 {
		return
	}
	drop := make(map[int]bool, len(positions))
	for _, p := range positions {
		drop[p] = true
	}
	kept := s.Entries[:0]
	for i, e := range s.Entries {
		if drop[i] {
			s.Weight -= e.Weight
			if !e.Optimal {
				s.NumNonOptimal--
				s.WeightNonOptimal -= e.Weight
			}
			continue
		}
		kept = append(kept, e)
	}
	s.Entries = kept
}

// FileNames returns the chosen exemplars' base file names, in the
// order the JSON exporter wants: sorted lexicographically, not
// selection order.
func (s *Solution) FileNames() []string {
	names := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		names[i] = filepath.Base(e.FilePath)
	}
	sort.Strings(names)
	return names
}

// CoveredColumns returns a width-length slice where index c is true iff
// some chosen entry's row has bit c set. Shared by Covers and by the
// verifier, which additionally exempts initial singularities.
func (s *Solution) CoveredColumns(width int) []bool {
	covered := make([]bool, width)
	for _, e := range s.Entries {
		for c := 0; c < width; c++ {
			if e.Row.BitAt(uint64(c)) {
				covered[c] = true
			}
		}
	}
	return covered
}

// Covers reports whether the union of every chosen row's live bits
// covers every column in [0, width).
func (s *Solution) Covers(width int) bool {
	for _, ok := range s.CoveredColumns(width) {
		if !ok {
			return false
		}
	}
	return true
}
