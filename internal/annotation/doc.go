// Package annotation converts between persisted annotation element trees and
// symbol.Record trees.
//
// A Node is one <Symbol> element: interline, optional id and shape
// attributes, a <Bounds> child, and nested <Symbol> children. Codec.Decode
// builds records bottom-up, delegating shape tokens to shape.Codec and
// coordinates to the geometry package. Two error classes exist:
//
//   - an unknown or absent shape keeps the record (shape.None) and reports a
//     Diagnostic to the Sink, exactly once per record;
//   - a structural problem (missing bounds, malformed number, bad XML) fails
//     the node with a *DecodeError naming its path in the file.
//
// Document and Page add the file layer: an <Annotations> root holding the
// top-level symbols of one page image.
package annotation
