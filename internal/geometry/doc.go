// Package geometry encodes symbol bounding boxes as fixed-precision text.
//
// Coordinates are page-image pixels. Anything finer than 1/1000 pixel is
// measurement noise, so encoding keeps at most three fractional digits and
// always uses '.' as the decimal point. Decoding keeps full float64
// precision; a field that does not parse is corruption, not drift, and fails.
package geometry
