// Package cache persists a built matrix.Matrix to a binary blob keyed
// by corpus directory and file pattern, so a re-run against the same
// corpus can skip re-ingesting every exemplar file. The blob is opaque
// on disk: encoding/gob, chosen because none of the reference corpus
// pulls in a third-party binary codec and gob is the standard,
// idiomatic choice for a Go-to-Go private cache format (see DESIGN.md).
package cache
