package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/liyansong2018/moonlight/moonerr"
)

// WeightFile maps exemplar file names (not full paths) to their weight.
type WeightFile map[string]float64

// LoadWeightFile parses a weight file: one "<filename> <weight>" record
// per line, whitespace-separated, weight a real number. A malformed
// line is a fatal FormatError.
func LoadWeightFile(path string) (WeightFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open weight file %s: %v", moonerr.ErrIO, path, err)
	}
	defer f.Close()

	weights := make(WeightFile)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: weight file %s line %d: expected \"<name> <weight>\"", moonerr.ErrFormat, path, lineNo)
		}
		w, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: weight file %s line %d: invalid weight %q", moonerr.ErrFormat, path, lineNo, fields[1])
		}
		weights[fields[0]] = w
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: cannot read weight file %s: %v", moonerr.ErrIO, path, err)
	}
	return weights, nil
}

// WeightOf returns the weight for a file name (the base name, no
// directory), defaulting to 1.0 when unweighted or the file is not
// listed in the weight file.
func (w WeightFile) WeightOf(name string) float64 {
	if w == nil {
		return 1.0
	}
	if v, ok := w[name]; ok {
		return v
	}
	return 1.0
}

// Excluded reports whether name should be dropped from consideration
// entirely: it has an explicit weight file entry with weight <= 0.
func (w WeightFile) Excluded(name string) bool {
	if w == nil {
		return false
	}
	v, ok := w[name]
	return ok && v <= 0
}
