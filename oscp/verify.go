package oscp

import (
	"path/filepath"

	"github.com/liyansong2018/moonlight/corpus"
	"github.com/liyansong2018/moonlight/solution"
)

// Verify checks that every column of the original width
// is covered by the selected rows' raw bit patterns, or is a
// recorded initial singularity; when weights is non-nil the recomputed
// total must match Solution.Weight, otherwise Weight must equal the
// number of chosen exemplars. Returns false (a VerificationFailure, not
// a fatal error) rather than aborting the run.
func Verify(sol *solution.Solution, weights corpus.WeightFile) bool {
	covered := sol.CoveredColumns(sol.NumColumns)
	singular := make(map[int]bool, len(sol.InitialSingularities))
	for _, c := range sol.InitialSingularities {
		singular[c] = true
	}
	for c, ok := range covered {
		if !ok && !singular[c] {
			log.WithField("column", c).Warn("verification failure: uncovered column")
			return false
		}
	}

	if weights != nil {
		var total float64
		for _, e := range sol.Entries {
			total += weights.WeightOf(filepath.Base(e.FilePath))
		}
		if total != sol.Weight {
			log.WithFields(map[string]interface{}{
				"recomputed": total,
				"recorded":   sol.Weight,
			}).Warn("verification failure: weight mismatch")
			return false
		}
		return true
	}

	if sol.Weight != float64(len(sol.Entries)) {
		log.WithFields(map[string]interface{}{
			"weight":         sol.Weight,
			"solution_count": len(sol.Entries),
		}).Warn("verification failure: unweighted weight law violated")
		return false
	}
	return true
}
