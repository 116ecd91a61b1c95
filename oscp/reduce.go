package oscp

import (
	"bytes"

	"github.com/liyansong2018/moonlight/matrix"
)

// rule0 applies row-unitarian selection: a column with column-sum 1 is
// unitarian, and any row covering one must be in every cover. Returns
// whether it selected anything.
func (s *Solver) rule0() (bool, error) {
	colSums := s.Matrix.GetColumnSums()
	unit := make(map[int]bool)
	for c, sum := range colSums {
		if sum == 1 {
			unit[c] = true
		}
	}
	if len(unit) == 0 {
		return false, nil
	}

	var selected []int
	for r := 0; r < s.Matrix.NumRows(); r++ {
		cols, err := s.Matrix.RowColumns(r)
		if err != nil {
			return false, err
		}
		for _, c := range cols {
			if c == matrix.Deleted {
				continue
			}
			if unit[int(c)] {
				selected = append(selected, r)
				break
			}
		}
	}
	if len(selected) == 0 {
		return false, nil
	}

	for _, r := range selected {
		if err := s.captureSelection(r, true); err != nil {
			return false, err
		}
		if s.Analytics != nil && r < len(s.rowOrig) {
			s.Analytics.BumpUnitarian(s.rowOrig[r])
		}
	}
	if err := s.reduce(selected); err != nil {
		return false, err
	}
	return true, nil
}

// rule1 applies subset-row domination: exact-duplicate coalescing
// within each rowsum band, then strict-subset detection across
// survivors.
func (s *Solver) rule1() (bool, error) {
	metas, err := s.collectRowMeta()
	if err != nil {
		return false, err
	}
	if len(metas) == 0 {
		return false, nil
	}

	sortRowMeta(metas)

	dead := make(map[int]bool)

	start := 0
	for start < len(metas) {
		end := start
		for end < len(metas) && metas[end].rowSum == metas[start].rowSum {
			end++
		}
		coalesceDuplicates(metas[start:end], dead)
		start = end
	}

	survivors := make([]rowMeta, 0, len(metas))
	for _, m := range metas {
		if !dead[m.idx] {
			survivors = append(survivors, m)
		}
	}
	for i := range survivors {
		a := survivors[i]
		if dead[a.idx] {
			continue
		}
		for j := i + 1; j < len(survivors); j++ {
			b := survivors[j]
			if dead[b.idx] || a.weight > b.weight {
				continue
			}
			overlap, err := s.Matrix.GetOverlap(a.idx, b.idx)
			if err != nil {
				return false, err
			}
			if overlap == b.rowSum {
				dead[b.idx] = true
			}
		}
	}

	if len(dead) == 0 {
		return false, nil
	}
	toRemove := make([]int, 0, len(dead))
	for idx := range dead {
		toRemove = append(toRemove, idx)
	}
	if err := s.removeRows(toRemove); err != nil {
		return false, err
	}
	return true, nil
}

// coalesceDuplicates groups band by identical dense bit pattern and
// keeps exactly one row per group: the lower-weight row, breaking ties
// on the lexicographically smaller exemplar path.
func coalesceDuplicates(band []rowMeta, dead map[int]bool) {
	used := make([]bool, len(band))
	for i := range band {
		if used[i] {
			continue
		}
		group := []int{i}
		for j := i + 1; j < len(band); j++ {
			if used[j] {
				continue
			}
			if bytes.Equal([]byte(band[i].bits), []byte(band[j].bits)) {
				group = append(group, j)
				used[j] = true
			}
		}
		used[i] = true
		if len(group) == 1 {
			continue
		}
		keep := group[0]
		for _, g := range group[1:] {
			switch {
			case band[g].weight < band[keep].weight:
				keep = g
			case band[g].weight == band[keep].weight && band[g].path < band[keep].path:
				keep = g
			}
		}
		for _, g := range group {
			if g != keep {
				dead[band[g].idx] = true
			}
		}
	}
}

// rule2 applies superset-column domination: c1 >= c2 (in row coverage)
// makes c1 redundant for the cover (any row covering c2 also covers
// c1), so c1 is removed; equality deterministically drops the
// lower-indexed column.
func (s *Solver) rule2() (bool, error) {
	n := s.Matrix.NumCols()
	colRows := make([][]int, n)
	for r := 0; r < s.Matrix.NumRows(); r++ {
		cols, err := s.Matrix.RowColumns(r)
		if err != nil {
			return false, err
		}
		for _, c := range cols {
			if c != matrix.Deleted {
				colRows[c] = append(colRows[c], r)
			}
		}
	}

	dead := make(map[int]bool)
	for c1 := 0; c1 < n; c1++ {
		if dead[c1] || len(colRows[c1]) == 0 {
			continue
		}
		for c2 := c1 + 1; c2 < n; c2++ {
			if dead[c2] || len(colRows[c2]) == 0 {
				continue
			}
			if supersetOf(colRows[c1], colRows[c2]) {
				dead[c1] = true
				break
			}
			if supersetOf(colRows[c2], colRows[c1]) {
				dead[c2] = true
			}
		}
	}

	if len(dead) == 0 {
		return false, nil
	}
	toRemove := make([]int, 0, len(dead))
	for c := range dead {
		toRemove = append(toRemove, c)
	}
	if err := s.Matrix.RemoveCols(toRemove); err != nil {
		return false, err
	}
	return true, nil
}

// supersetOf reports whether every row index in b also appears in a.
// Both slices are sorted ascending.
func supersetOf(a, b []int) bool {
	i := 0
	for _, x := range b {
		for i < len(a) && a[i] < x {
			i++
		}
		if i >= len(a) || a[i] != x {
			return false
		}
	}
	return true
}

// greedyStep applies eliminate_max_score: pick the row with the
// highest row_sum/weight score, tie-broken on the smallest exemplar
// path, add it as a non-optimal pick, and reduce.
func (s *Solver) greedyStep() error {
	metas, err := s.collectRowMeta()
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		return nil
	}
	best := metas[0]
	bestScore := float64(best.rowSum) / best.weight
	for _, m := range metas[1:] {
		score := float64(m.rowSum) / m.weight
		if score > bestScore || (score == bestScore && m.path < best.path) {
			best, bestScore = m, score
		}
	}
	if err := s.captureSelection(best.idx, false); err != nil {
		return err
	}
	return s.reduce([]int{best.idx})
}
