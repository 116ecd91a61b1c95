/*
Package corpus turns a directory of exemplar files into matrix.RowElem
values: it lists the files matching a naming pattern, reads each file's
bytes as an MSB-first bit-packed row, and (optionally) reads a weight
file assigning a non-default weight to some exemplars.

Ingest is single-threaded by default, in file-size order (a Matrix built
from a large-file-first ordering tends to hit the singularity and
subset-row reductions sooner). IngestParallel offers a bounded worker
pool for callers who want to overlap file I/O, while still guaranteeing
byte-for-byte identical row ordering to the sequential path.
*/
package corpus
