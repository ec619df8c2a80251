// Package shape defines the closed vocabulary of music-notation shapes used to
// classify annotated symbols, and the codec that maps shapes to and from their
// persisted text tokens.
//
// Shape names follow SMuFL glyph naming (noteheadBlack, gClef, restQuarter).
// The vocabulary evolves between dataset versions, so decoding never fails:
// an unrecognized token yields None and the caller decides how to report it.
// A Vocabulary may also carry legacy aliases so renamed shapes keep resolving
// without touching older annotation files.
package shape
