package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/liyansong2018/moonlight/moonerr"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("pkg", "corpus")

// File is a corpus exemplar: an absolute path and its byte size.
type File struct {
	Path string
	Size int
}

// ByDescendingSize orders files largest-first, then by path ascending
// for a stable, deterministic tie-break — the ordering ingest uses.
type ByDescendingSize []File

func (b ByDescendingSize) Len() int      { return len(b) }
func (b ByDescendingSize) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
func (b ByDescendingSize) Less(i, j int) bool {
	if b[i].Size != b[j].Size {
		return b[i].Size > b[j].Size
	}
	return b[i].Path < b[j].Path
}

// ListFiles returns every regular file directly under dir whose name
// matches pattern, sorted by descending file size then path.
func ListFiles(dir, pattern string) ([]File, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: corpus directory does not exist: %s", moonerr.ErrIO, dir)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid corpus pattern %q: %v", moonerr.ErrFormat, pattern, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot list %s: %v", moonerr.ErrIO, dir, err)
	}
	var files []File
	for _, e := range entries {
		if e.IsDir() || !re.MatchString(e.Name()) {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("%w: cannot stat %s: %v", moonerr.ErrIO, e.Name(), err)
		}
		abs, err := filepath.Abs(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: cannot resolve %s: %v", moonerr.ErrIO, e.Name(), err)
		}
		files = append(files, File{Path: abs, Size: int(fi.Size())})
	}
	sort.Sort(ByDescendingSize(files))
	log.WithField("count", len(files)).Debug("listed corpus files")
	return files, nil
}

// MaxSize returns the largest file size in files, or 0 if files is empty.
func MaxSize(files []File) int {
	max := 0
	for _, f := range files {
		if f.Size > max {
			max = f.Size
		}
	}
	return max
}
