/*
Package matrix implements the sparse logical matrix at the core of the OSCP
engine: a row-major list-of-lists representation, in the manner of a
List-of-Lists sparse matrix, specialised for two operations that dense or
column-major layouts make expensive at corpus scale: deleting an arbitrary
row, and deleting an arbitrary column without reallocating every row.

Each row (RowElem) records only the column indices where it holds a one,
in strictly increasing order. Deleting a column does not shrink any row's
column slice; the removed entries are overwritten in place with the
DELETED sentinel and never revisited. This trades memory (row slices never
shrink) for speed (every column-removal batch costs O(sum of row
lengths), not O(sum of row lengths) plus a reallocation per row).

Dense materialisation (GetRow, GetCol) is provided for the call sites
that need it — the Verifier and the duplicate-detection step of Rule 1 —
using bitfield.Bitlist rather than a []bool, since a real corpus's column
universe can run into the millions.
*/
package matrix
