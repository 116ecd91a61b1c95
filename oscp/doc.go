// Package oscp implements the reduction-rule and greedy heuristic
// solver for the optimised set cover problem: given a matrix.Matrix of
// exemplar rows over basic-block columns, it drives the matrix to a
// minimum-weight cover, accumulating the chosen exemplars into a
// solution.Solution and updating an analytics.Corpus as it goes.
package oscp
