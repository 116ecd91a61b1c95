// Command moonlight computes a minimum-weight cover of a corpus of
// code-coverage exemplar files: it builds a sparse matrix over their
// basic-block bits, reduces it to a kernel with exact rules, and picks
// a greedy residual, emitting a solution JSON and optional analytics.
package main

func main() {
	Execute()
}
