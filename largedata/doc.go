// Package largedata implements the two-pass streaming preprocessor
// used when the full sparse matrix would not fit in memory: it scans
// raw exemplar files directly, without ever building a matrix.Matrix,
// to compute which columns can be dropped before matrix construction
// even begins.
package largedata
