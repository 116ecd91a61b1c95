package corpus

import (
	"path/filepath"
	"sync"

	"github.com/liyansong2018/moonlight/matrix"
)

// Ingest reads every file in files (already in the deterministic order
// callers want rows inserted) into a matrix.RowElem, applying t and
// skipping any file the weight file excludes (weight <= 0).
func Ingest(files []File, weights WeightFile, t matrix.ColumnTransform, requireNonEmpty bool) ([]matrix.RowElem, error) {
	var out []matrix.RowElem
	for _, f := range files {
		name := filepath.Base(f.Path)
		if weights.Excluded(name) {
			continue
		}
		row, err := BitRow(f.Path, weights.WeightOf(name), t, requireNonEmpty)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

// IngestParallel is the bounded-worker-pool ingest path: it reads
// files concurrently but always produces the same row ordering Ingest
// would — descending file size, then path — by
// establishing that order up front via fileHeap and having each worker
// write its result into a pre-sized slice by position, never by
// completion order. workers <= 1 falls back to sequential Ingest.
func IngestParallel(files []File, weights WeightFile, t matrix.ColumnTransform, requireNonEmpty bool, workers int) ([]matrix.RowElem, error) {
	if workers <= 1 {
		return Ingest(files, weights, t, requireNonEmpty)
	}

	ordered := orderedFiles(newFileHeap(files))
	kept := make([]File, 0, len(ordered))
	for _, f := range ordered {
		if !weights.Excluded(filepath.Base(f.Path)) {
			kept = append(kept, f)
		}
	}

	results := make([]matrix.RowElem, len(kept))
	errs := make([]error, len(kept))
	var idx int64Counter
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := idx.next(len(kept))
				if i < 0 {
					return
				}
				f := kept[i]
				name := filepath.Base(f.Path)
				row, err := BitRow(f.Path, weights.WeightOf(name), t, requireNonEmpty)
				if err != nil {
					errs[i] = err
					continue
				}
				results[i] = row
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// int64Counter hands out sequential slice indices to worker goroutines,
// guarding the shared cursor with a mutex.
type int64Counter struct {
	mu  sync.Mutex
	cur int
}

func (c *int64Counter) next(bound int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cur >= bound {
		return -1
	}
	i := c.cur
	c.cur++
	return i
}
