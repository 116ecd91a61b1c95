package cache

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/liyansong2018/moonlight/matrix"
	"github.com/liyansong2018/moonlight/moonerr"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("pkg", "cache")

// Blob is the on-disk shape of a cached matrix: everything needed to
// restore a matrix.Matrix without re-reading the corpus, with path
// fields kept as plain strings rather than native path objects.
type Blob struct {
	Directory   string
	Pattern     string
	NumRows     int
	NumCols     int
	NumColsOrig int
	NumElems    int64
	Rows        []matrix.RowElem
}

// Save writes m to path as a gob-encoded Blob tagged with the
// directory/pattern the caller built it from, so Load can refuse a
// cache that no longer matches the requested corpus.
func Save(path, directory, pattern string, m *matrix.Matrix) error {
	rows := make([]matrix.RowElem, m.NumRows())
	for r := range rows {
		row, err := m.CloneRow(r)
		if err != nil {
			return err
		}
		rows[r] = row
	}
	blob := Blob{
		Directory:   directory,
		Pattern:     pattern,
		NumRows:     m.NumRows(),
		NumCols:     m.NumCols(),
		NumColsOrig: m.NumColsOrig(),
		NumElems:    m.NumElements(),
		Rows:        rows,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: cannot create matrix cache %s: %v", moonerr.ErrIO, path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(blob); err != nil {
		return fmt.Errorf("%w: cannot encode matrix cache %s: %v", moonerr.ErrIO, path, err)
	}
	log.WithFields(logrus.Fields{"path": path, "rows": blob.NumRows}).Debug("wrote matrix cache")
	return nil
}

// Load reads path back into a matrix.Matrix, refusing to reuse it if
// directory or pattern no longer match what the caller is running
// against.
func Load(path, directory, pattern string) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open matrix cache %s: %v", moonerr.ErrIO, path, err)
	}
	defer f.Close()

	var blob Blob
	if err := gob.NewDecoder(f).Decode(&blob); err != nil {
		return nil, fmt.Errorf("%w: cannot decode matrix cache %s: %v", moonerr.ErrFormat, path, err)
	}
	if blob.Directory != directory || blob.Pattern != pattern {
		return nil, fmt.Errorf("%w: matrix cache %s was built for %s/%q, not %s/%q",
			moonerr.ErrFormat, path, blob.Directory, blob.Pattern, directory, pattern)
	}
	log.WithFields(logrus.Fields{"path": path, "rows": blob.NumRows}).Debug("loaded matrix cache")
	return matrix.Restore(blob.NumCols, blob.NumColsOrig, blob.Rows), nil
}
