// Package symbol holds the annotation record for one music-notation symbol
// within a scanned page: its shape, the interline it was measured at, an
// optional stable id, its bounding box, and the inner symbols of a composite
// glyph.
//
// Records are built bottom-up. Inner symbols are attached with AddInner before
// the parent is handed to any other component; from then on the record and its
// subtree are treated as immutable and may be shared by concurrent readers.
package symbol
