package geometry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Precision is the number of fractional digits kept on encode.
const Precision = 3

// ErrMalformedNumber reports a coordinate whose text is not a decimal number.
var ErrMalformedNumber = errors.New("malformed number")

// Rect is a bounding box in page-image pixel coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) String() string {
	return fmt.Sprintf("[x=%s,y=%s,w=%s,h=%s]",
		FormatCoord(r.X), FormatCoord(r.Y), FormatCoord(r.Width), FormatCoord(r.Height))
}

// Fields holds the persisted text of each rectangle field.
type Fields struct {
	X string
	Y string
	W string
	H string
}

// NumberError identifies the field that failed to parse.
type NumberError struct {
	Field string
	Text  string
	Err   error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("bounds attribute %q: %v %q", e.Field, ErrMalformedNumber, e.Text)
}

func (e *NumberError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedNumber}
	}
	return []error{ErrMalformedNumber, e.Err}
}

// FormatCoord renders v with at most Precision fractional digits, trailing
// zeros removed and no grouping separators.
func FormatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', Precision, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// ParseCoord parses text as a decimal number at full precision.
func ParseCoord(field, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &NumberError{Field: field, Text: text, Err: err}
	}
	return v, nil
}

// Encode formats each field of r independently.
func Encode(r Rect) Fields {
	return Fields{
		X: FormatCoord(r.X),
		Y: FormatCoord(r.Y),
		W: FormatCoord(r.Width),
		H: FormatCoord(r.Height),
	}
}

// Decode parses every field of f, failing on the first malformed one.
func Decode(f Fields) (Rect, error) {
	var (
		r   Rect
		err error
	)
	if r.X, err = ParseCoord("x", f.X); err != nil {
		return Rect{}, err
	}
	if r.Y, err = ParseCoord("y", f.Y); err != nil {
		return Rect{}, err
	}
	if r.Width, err = ParseCoord("w", f.W); err != nil {
		return Rect{}, err
	}
	if r.Height, err = ParseCoord("h", f.H); err != nil {
		return Rect{}, err
	}
	return r, nil
}

// Quantize returns r as it would read back after an encode/decode cycle.
func Quantize(r Rect) Rect {
	return Rect{
		X:      quantize(r.X),
		Y:      quantize(r.Y),
		Width:  quantize(r.Width),
		Height: quantize(r.Height),
	}
}

func quantize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	q, err := strconv.ParseFloat(FormatCoord(v), 64)
	if err != nil {
		return v
	}
	return q
}
