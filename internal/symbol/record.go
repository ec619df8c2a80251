package symbol

import (
	"fmt"
	"strconv"
	"strings"

	"omrdata/internal/geometry"
	"omrdata/internal/shape"
)

// Record describes one annotated symbol.
type Record struct {
	shape     shape.Shape
	interline int32
	id        uint32
	hasID     bool
	bounds    geometry.Rect
	inner     []*Record
}

// Option customizes a Record at construction.
type Option func(*Record)

// WithID assigns the stable identifier of the symbol.
func WithID(id uint32) Option {
	return func(r *Record) {
		r.id = id
		r.hasID = true
	}
}

// New creates a record. Pass shape.None when the symbol could not be
// classified; interline 0 means the bounds are not normalized.
func New(s shape.Shape, interline int32, bounds geometry.Rect, opts ...Option) *Record {
	if !s.Valid() {
		s = shape.None
	}
	r := &Record{shape: s, interline: interline, bounds: bounds}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// AddInner appends child to the inner symbols, preserving insertion order.
// Nil children and the record itself are ignored.
func (r *Record) AddInner(child *Record) {
	if child == nil || child == r {
		return
	}
	r.inner = append(r.inner, child)
}

// Shape reports the classified shape and whether one is present.
func (r *Record) Shape() (shape.Shape, bool) {
	return r.shape, r.shape.Valid()
}

// Interline returns the staff interline in pixels, 0 when unknown.
func (r *Record) Interline() int32 {
	return r.interline
}

// ID returns the symbol id, or 0 when unassigned.
func (r *Record) ID() uint32 {
	return r.id
}

// LookupID returns the symbol id and whether one was assigned.
func (r *Record) LookupID() (uint32, bool) {
	return r.id, r.hasID
}

// Bounds returns a copy of the bounding box.
func (r *Record) Bounds() geometry.Rect {
	return r.bounds
}

// InnerSymbols returns the inner symbols in authoring order. The returned
// slice is a copy and is never nil.
func (r *Record) InnerSymbols() []*Record {
	out := make([]*Record, len(r.inner))
	copy(out, r.inner)
	return out
}

// IsOuter reports whether the record contains inner symbols.
func (r *Record) IsOuter() bool {
	return len(r.inner) > 0
}

func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString("Symbol{")
	if s, ok := r.Shape(); ok {
		sb.WriteString(s.String())
	} else {
		sb.WriteString("null")
	}
	if r.IsOuter() {
		sb.WriteString(" OUTER")
	}
	sb.WriteString(" interline:")
	sb.WriteString(strconv.FormatInt(int64(r.interline), 10))
	if r.hasID {
		sb.WriteString(" id:")
		sb.WriteString(strconv.FormatUint(uint64(r.id), 10))
	}
	sb.WriteByte(' ')
	sb.WriteString(r.bounds.String())
	sb.WriteByte('}')
	return sb.String()
}

// WalkFunc is called for each record visited by Walk. depth is 0 for the root.
type WalkFunc func(path string, depth int, r *Record) error

// Walk visits r and its inner symbols depth-first, parents before children.
// Paths are slash separated and index inner symbols: "Symbol/Symbol[1]".
func Walk(r *Record, root string, fn WalkFunc) error {
	if r == nil {
		return nil
	}
	return walk(r, root, 0, fn)
}

func walk(r *Record, path string, depth int, fn WalkFunc) error {
	if err := fn(path, depth, r); err != nil {
		return err
	}
	for i, child := range r.inner {
		if err := walk(child, fmt.Sprintf("%s/Symbol[%d]", path, i), depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Equivalent reports whether a and b describe the same tree once geometry is
// reduced to its persisted precision.
func Equivalent(a, b *Record) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.shape != b.shape || a.interline != b.interline {
		return false
	}
	if a.hasID != b.hasID || a.id != b.id {
		return false
	}
	if geometry.Quantize(a.bounds) != geometry.Quantize(b.bounds) {
		return false
	}
	if len(a.inner) != len(b.inner) {
		return false
	}
	for i := range a.inner {
		if !Equivalent(a.inner[i], b.inner[i]) {
			return false
		}
	}
	return true
}
