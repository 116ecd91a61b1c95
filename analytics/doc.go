// Package analytics tracks per-exemplar metadata parallel to a matrix's
// initial row list: the row-sum and unitarian scores collected while the
// reducer runs, plus a CSV exporter for the resulting analytics table.
package analytics
