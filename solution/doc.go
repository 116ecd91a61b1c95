// Package solution accumulates the chosen exemplars of an OSCP run: the
// selected file paths, their raw uncompressed rows (captured at
// selection time for later verification), running weight totals, and
// the bookkeeping the JSON exporter needs.
package solution
