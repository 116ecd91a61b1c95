package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.WithField("pkg", "cmd")

type flagSet struct {
	directory    string
	name         string
	pattern      string
	matrixCache  string
	ignoreMatrix bool
	analytics    string
	weighted     string
	largeData    bool
	greedy       bool
	manifest     string
	workers      int
	summary      bool
	verbose      bool
}

var f flagSet

var rootCmd = &cobra.Command{
	Use:          "moonlight",
	Short:        "moonlight computes a minimum-weight set cover over a corpus of exemplar files",
	SilenceUsage: true,
	RunE:         runSolve,
}

func init() {
	rootCmd.Flags().StringVar(&f.directory, "directory", ".", "corpus root directory")
	rootCmd.Flags().StringVar(&f.name, "name", "moonlight", "run label; seeds output filenames")
	rootCmd.Flags().StringVar(&f.pattern, "pattern", "exemplar_", "regex selecting corpus files")
	rootCmd.Flags().StringVar(&f.matrixCache, "matrix", "", "matrix cache path to load or save")
	rootCmd.Flags().BoolVar(&f.ignoreMatrix, "ignore-matrix", false, "rebuild the matrix even if a cache is present")
	rootCmd.Flags().StringVar(&f.analytics, "analytics", "", "analytics CSV output path")
	rootCmd.Flags().StringVar(&f.weighted, "weighted", "", "weight file path")
	rootCmd.Flags().BoolVar(&f.largeData, "large-data", false, "enable the streaming large-corpus preprocessor")
	rootCmd.Flags().BoolVar(&f.greedy, "greedy", false, "skip reduction rules, run only the greedy selector")
	rootCmd.Flags().StringVar(&f.manifest, "manifest", "", "optional YAML run manifest to seed unset flags from")
	rootCmd.Flags().IntVar(&f.workers, "workers", 1, "parallel ingest worker count (1 = sequential)")
	rootCmd.Flags().BoolVar(&f.summary, "summary", false, "also write a row-sum histogram summary CSV")
	rootCmd.Flags().BoolVar(&f.verbose, "verbose", false, "enable debug logging")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
