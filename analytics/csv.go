package analytics

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
)

// WriteCSV writes the analytics table with header
// "index,file,trace_file_size,selected_greedy,score_rowsum,score_unitarian,score_block_target",
// one row per original exemplar in original matrix order.
func WriteCSV(w io.Writer, c Corpus) error {
	cw := csv.NewWriter(w)
	header := []string{"index", "file", "trace_file_size", "selected_greedy", "score_rowsum", "score_unitarian", "score_block_target"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write analytics header: %w", err)
	}
	for i, e := range c {
		record := []string{
			strconv.Itoa(i),
			filepath.Base(e.FilePath),
			strconv.Itoa(e.FileSize),
			strconv.FormatBool(e.SelectedGreedyRowSum),
			strconv.Itoa(e.ScoreRowSum),
			strconv.Itoa(e.ScoreUnitarian),
			strconv.Itoa(e.ScoreBlockTarget),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write analytics row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHistogramSummary writes the row-sum histogram as a two-column CSV
// (score_rowsum, count), sorted by score ascending. Backs the CLI's
// optional --summary flag.
func WriteHistogramSummary(w io.Writer, h map[int]int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"score_rowsum", "count"}); err != nil {
		return fmt.Errorf("write histogram header: %w", err)
	}
	keys := make([]int, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		if err := cw.Write([]string{strconv.Itoa(k), strconv.Itoa(h[k])}); err != nil {
			return fmt.Errorf("write histogram row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
