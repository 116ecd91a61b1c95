package main

import (
	"fmt"
	"os"

	"github.com/liyansong2018/moonlight/analytics"
	"github.com/liyansong2018/moonlight/moonerr"
	"github.com/liyansong2018/moonlight/solution"
)

func writeOutputs(sol *solution.Solution, an analytics.Corpus) error {
	jsonPath := f.name + ".json"
	jf, err := os.Create(jsonPath)
	if err != nil {
		return fmt.Errorf("%w: cannot create %s: %v", moonerr.ErrIO, jsonPath, err)
	}
	defer jf.Close()
	if err := solution.WriteJSON(jf, sol); err != nil {
		return err
	}
	log.WithField("path", jsonPath).Info("wrote solution")

	if f.analytics != "" && an != nil {
		af, err := os.Create(f.analytics)
		if err != nil {
			return fmt.Errorf("%w: cannot create %s: %v", moonerr.ErrIO, f.analytics, err)
		}
		defer af.Close()
		if err := analytics.WriteCSV(af, an); err != nil {
			return err
		}
		log.WithField("path", f.analytics).Info("wrote analytics")
	}

	if f.summary && an != nil {
		sumPath := f.name + ".summary.csv"
		sf, err := os.Create(sumPath)
		if err != nil {
			return fmt.Errorf("%w: cannot create %s: %v", moonerr.ErrIO, sumPath, err)
		}
		defer sf.Close()
		if err := analytics.WriteHistogramSummary(sf, an.Histogram()); err != nil {
			return err
		}
		log.WithField("path", sumPath).Info("wrote row-sum histogram summary")
	}
	return nil
}
