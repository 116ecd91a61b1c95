package analytics

import "github.com/liyansong2018/moonlight/matrix"

// Exemplar records the analytics tracked for one exemplar, indexed
// parallel to the matrix's initial (pre-reduction) row order.
type Exemplar struct {
	FilePath             string
	FileSize             int
	ScoreRowSum          int
	ScoreUnitarian       int
	ScoreBlockTarget     int  // reserved, always 0 in the current pipeline
	SelectedGreedyRowSum bool // reserved flag, always false in the current flow
}

// Corpus is the analytics table for an entire matrix, one entry per row
// in the matrix's original construction order.
type Corpus []Exemplar

// New builds the initial analytics table from m, before any reduction
// has taken place: FileSize and ScoreRowSum are seeded, everything else
// starts zero.
func New(m *matrix.Matrix) (Corpus, error) {
	c := make(Corpus, m.NumRows())
	for i := range c {
		size, err := m.GetRowFileSize(i)
		if err != nil {
			return nil, err
		}
		path, err := m.GetRowExemplar(i)
		if err != nil {
			return nil, err
		}
		sum, err := m.GetRowSum(i)
		if err != nil {
			return nil, err
		}
		c[i] = Exemplar{FilePath: path, FileSize: size, ScoreRowSum: sum}
	}
	return c, nil
}

// BumpUnitarian increments row i's unitarian score by one. Rule 0 calls
// this at most once per row per invocation, on the first unitarian
// column it finds while scanning that row.
func (c Corpus) BumpUnitarian(i int) {
	c[i].ScoreUnitarian++
}

// Histogram returns the distribution of ScoreRowSum values across the
// corpus, bucketed by exact value: histogram[s] is the number of
// exemplars whose initial row sum was s. Supplements the C++
// implementation's `occurances` helper (OSCPSolver.h) for the CSV
// exporter's --summary flag.
func (c Corpus) Histogram() map[int]int {
	h := make(map[int]int)
	for _, e := range c {
		h[e.ScoreRowSum]++
	}
	return h
}
