package oscp

import "github.com/liyansong2018/moonlight/solution"

// Prune finds and removes solution entries that turned out to be
// unnecessary once every other entry was chosen: a row is unnecessary
// if it holds no column where it is the row's sole remaining
// contributor to that column's coverage. Assumes initial singularities
// have already been excluded from consideration and sol has passed
// Verify. Supplements the reduction/greedy pipeline, which can leave
// a later greedy pick's coverage subsuming an earlier one's.
func Prune(sol *solution.Solution) int {
	colSum := make([]int, sol.NumColumns)
	for _, e := range sol.Entries {
		for c := 0; c < sol.NumColumns; c++ {
			if e.Row.BitAt(uint64(c)) {
				colSum[c]++
			}
		}
	}

	var unnecessary []int
	for r, e := range sol.Entries {
		needed := false
		for c := 0; c < sol.NumColumns; c++ {
			if e.Row.BitAt(uint64(c)) && colSum[c] == 1 {
				needed = true
				break
			}
		}
		if !needed {
			for c := 0; c < sol.NumColumns; c++ {
				if e.Row.BitAt(uint64(c)) {
					colSum[c]--
				}
			}
			unnecessary = append(unnecessary, r)
			log.WithField("file", e.FilePath).Info("primality check: unnecessary exemplar")
		}
	}

	if len(unnecessary) > 0 {
		sol.Remove(unnecessary)
	}
	return len(unnecessary)
}
