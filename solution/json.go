package solution

import (
	"encoding/json"
	"io"
)

// Doc is the exported shape of the solution JSON document: corpus
// name, dimensions, and the sorted list of chosen exemplar file names.
type Doc struct {
	Corpus               string   `json:"corpus"`
	CorpusSize           int      `json:"corpus_size"`
	SolutionSize         int      `json:"solution_size"`
	SolutionWeight       float64  `json:"solution_weight"`
	NumBasicBlocks       int      `json:"num_basic_blocks"`
	InitialSingularities int      `json:"initial_singularities"`
	NumNonOptimal        int      `json:"num_non_optimal"`
	WeightNonOptimal     float64  `json:"weight_non_optimal"`
	ScoreLabel           string   `json:"score_label"`
	Solution             []string `json:"solution"`
}

// ToDoc projects the accumulator into the exported JSON shape.
func (s *Solution) ToDoc() Doc {
	return Doc{
		Corpus:               s.CorpusName,
		CorpusSize:           s.NumRows,
		SolutionSize:         len(s.Entries),
		SolutionWeight:       s.Weight,
		NumBasicBlocks:       s.NumColumns,
		InitialSingularities: len(s.InitialSingularities),
		NumNonOptimal:        s.NumNonOptimal,
		WeightNonOptimal:     s.WeightNonOptimal,
		ScoreLabel:           s.ScoreLabel,
		Solution:             s.FileNames(),
	}
}

// WriteJSON marshals the solution document to w. Two byte-identical
// runs must produce byte-identical output, so this writes with fixed
// field order and no surprises from map iteration: Doc's fields are
// already in a stable, explicit order and Solution is pre-sorted.
func WriteJSON(w io.Writer, s *Solution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.ToDoc())
}
