package main

import (
	"fmt"

	"github.com/liyansong2018/moonlight/analytics"
	"github.com/liyansong2018/moonlight/cache"
	"github.com/liyansong2018/moonlight/corpus"
	"github.com/liyansong2018/moonlight/largedata"
	"github.com/liyansong2018/moonlight/matrix"
	"github.com/liyansong2018/moonlight/moonerr"
	"github.com/liyansong2018/moonlight/oscp"
	"github.com/liyansong2018/moonlight/solution"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runSolve(cmd *cobra.Command, args []string) error {
	if f.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if f.manifest != "" {
		m, err := loadManifest(f.manifest)
		if err != nil {
			return err
		}
		f.applyManifest(cmd, m)
	}

	var weights corpus.WeightFile
	if f.weighted != "" {
		w, err := corpus.LoadWeightFile(f.weighted)
		if err != nil {
			return err
		}
		weights = w
	}

	files, err := corpus.ListFiles(f.directory, f.pattern)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no exemplar files matched %q under %s", moonerr.ErrFormat, f.pattern, f.directory)
	}
	width := 8 * corpus.MaxSize(files)

	scoreLabel := "row_sum"
	if f.greedy {
		scoreLabel = "greedy_only"
	}
	sol := solution.New(f.name, scoreLabel, len(files), width)

	m, err := buildMatrix(files, weights, width, sol)
	if err != nil {
		return err
	}
	// corpus_size reflects the matrix actually built, after weight-based
	// exclusion (weight <= 0 exemplars never reach a row), not the raw
	// pattern-matched file count.
	sol.NumRows = m.NumRows()

	var an analytics.Corpus
	if f.analytics != "" || f.summary {
		a, err := analytics.New(m)
		if err != nil {
			return err
		}
		an = a
	}

	solver := oscp.New(m, sol, an, width, f.greedy, weights)
	if _, err := solver.Solve(); err != nil {
		return err
	}

	return writeOutputs(sol, an)
}

// buildMatrix runs the (optional) large-data preprocessor or a plain
// ingest-and-cache path, then drops zero-sum columns before the
// reduce loop ever sees them.
func buildMatrix(files []corpus.File, weights corpus.WeightFile, width int, sol *solution.Solution) (*matrix.Matrix, error) {
	if f.largeData {
		res, err := largedata.CalcColsToIgnore(files, weights, width, sol)
		if err != nil {
			return nil, err
		}
		sol.SetInitialSingularities(res.InitialSingularities)

		rows, err := corpus.IngestParallel(files, weights, nil, false, f.workers)
		if err != nil {
			return nil, err
		}
		m := matrix.New(width)
		for _, r := range rows {
			m.InsertRow(r)
		}
		if len(res.ColsToIgnore) > 0 {
			if err := m.RemoveCols(res.ColsToIgnore); err != nil {
				return nil, err
			}
		}
		return m, nil
	}

	var m *matrix.Matrix
	if f.matrixCache != "" && !f.ignoreMatrix {
		if loaded, err := cache.Load(f.matrixCache, f.directory, f.pattern); err == nil {
			m = loaded
		} else {
			log.WithError(err).Debug("matrix cache miss, rebuilding")
		}
	}

	if m == nil {
		rows, err := corpus.IngestParallel(files, weights, nil, false, f.workers)
		if err != nil {
			return nil, err
		}
		m = matrix.New(width)
		for _, r := range rows {
			m.InsertRow(r)
		}
		if f.matrixCache != "" {
			if err := cache.Save(f.matrixCache, f.directory, f.pattern, m); err != nil {
				return nil, err
			}
		}
	}

	singular := zeroSumColumns(m)
	sol.SetInitialSingularities(singular)
	if len(singular) > 0 {
		if err := m.RemoveCols(singular); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func zeroSumColumns(m *matrix.Matrix) []int {
	sums := m.GetColumnSums()
	var out []int
	for c, s := range sums {
		if s == 0 {
			out = append(out, c)
		}
	}
	return out
}
