package annotation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"omrdata/internal/geometry"
	"omrdata/internal/shape"
	"omrdata/internal/symbol"
)

var (
	// ErrNilNode reports a missing element where a symbol was expected.
	ErrNilNode = errors.New("nil symbol node")
	// ErrMissingBounds reports a symbol element without its Bounds child.
	ErrMissingBounds = errors.New("missing Bounds element")
	// ErrMalformedInterline reports an interline attribute that is not a 32-bit integer.
	ErrMalformedInterline = errors.New("malformed interline")
	// ErrMalformedID reports an id attribute that is not a non-negative 32-bit integer.
	ErrMalformedID = errors.New("malformed id")
	// ErrDuplicateBounds reports a symbol element with more than one Bounds child.
	ErrDuplicateBounds = errors.New("duplicate Bounds element")
	// ErrMalformedDocument reports a file that is not a well-formed annotation document.
	ErrMalformedDocument = errors.New("malformed annotation document")
)

// DecodeError locates a structural failure within an annotation tree.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Codec converts between Node and symbol.Record trees.
type Codec struct {
	shapes  *shape.Codec
	sink    Sink
	suggest bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithShapeCodec sets the shape codec, e.g. one carrying legacy aliases.
func WithShapeCodec(sc *shape.Codec) Option {
	return func(c *Codec) {
		if sc != nil {
			c.shapes = sc
		}
	}
}

// WithSink sets where shape diagnostics are reported.
func WithSink(s Sink) Option {
	return func(c *Codec) { c.sink = s }
}

// WithSuggestions toggles nearest-name hints on unknown shape diagnostics.
func WithSuggestions(enabled bool) Option {
	return func(c *Codec) { c.suggest = enabled }
}

// NewCodec returns a codec using the default vocabulary, no sink and
// suggestions enabled unless overridden.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{shapes: shape.NewCodec(nil), suggest: true}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Decode builds a record tree from node, naming the root "Symbol" in errors
// and diagnostics.
func (c *Codec) Decode(node *Node) (*symbol.Record, error) {
	return c.DecodeAt(node, "Symbol")
}

// DecodeAt is Decode with an explicit path for the root node.
func (c *Codec) DecodeAt(node *Node, path string) (*symbol.Record, error) {
	return c.decode(node, path)
}

// DecodeAll decodes sibling nodes independently. A node that fails does not
// affect the others; its error is returned alongside the records that decoded.
func (c *Codec) DecodeAll(nodes []*Node, parent string) ([]*symbol.Record, []error) {
	records := make([]*symbol.Record, 0, len(nodes))
	var errs []error
	for i, node := range nodes {
		record, err := c.decode(node, childPath(parent, i))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		records = append(records, record)
	}
	return records, errs
}

func (c *Codec) decode(node *Node, path string) (*symbol.Record, error) {
	if node == nil {
		return nil, &DecodeError{Path: path, Err: ErrNilNode}
	}

	interline, err := parseInterline(node.Interline)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	var opts []symbol.Option
	if node.ID != nil {
		id, err := parseID(*node.ID)
		if err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
		opts = append(opts, symbol.WithID(id))
	}

	s := shape.None
	if node.Shape != nil {
		s, _ = c.shapes.Decode(*node.Shape)
	}

	switch {
	case len(node.Bounds) == 0 || node.Bounds[0] == nil:
		return nil, &DecodeError{Path: path, Err: ErrMissingBounds}
	case len(node.Bounds) > 1:
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("%w: found %d", ErrDuplicateBounds, len(node.Bounds))}
	}
	box := node.Bounds[0]
	bounds, err := geometry.Decode(geometry.Fields{
		X: box.X,
		Y: box.Y,
		W: box.W,
		H: box.H,
	})
	if err != nil {
		return nil, &DecodeError{Path: path + "/Bounds", Err: err}
	}

	record := symbol.New(s, interline, bounds, opts...)
	for i, child := range node.Symbols {
		inner, err := c.decode(child, childPath(path, i))
		if err != nil {
			return nil, err
		}
		record.AddInner(inner)
	}

	c.afterDecode(record, node, path)
	return record, nil
}

// afterDecode runs once per record, after its inner symbols are attached and
// before the record is handed to its parent.
func (c *Codec) afterDecode(record *symbol.Record, node *Node, path string) {
	if _, ok := record.Shape(); ok || c.sink == nil {
		return
	}
	d := Diagnostic{
		Kind:      KindMissingShape,
		Path:      path,
		Interline: record.Interline(),
		Bounds:    record.Bounds(),
	}
	d.ID, d.HasID = record.LookupID()
	if node.Shape != nil {
		d.Kind = KindUnknownShape
		d.Token = *node.Shape
		if c.suggest {
			d.Suggestion = c.shapes.Suggest(d.Token)
		}
	}
	c.sink.Report(d)
}

// Encode converts record into its persisted form. Encoding is deterministic:
// the same record always yields the same node.
func (c *Codec) Encode(record *symbol.Record) *Node {
	if record == nil {
		return nil
	}
	node := &Node{Interline: textPtr(strconv.FormatInt(int64(record.Interline()), 10))}
	if id, ok := record.LookupID(); ok {
		node.ID = textPtr(strconv.FormatUint(uint64(id), 10))
	}
	if s, ok := record.Shape(); ok {
		node.Shape = textPtr(c.shapes.Encode(s))
	}
	f := geometry.Encode(record.Bounds())
	node.Bounds = []*BoundsNode{{X: f.X, Y: f.Y, W: f.W, H: f.H}}

	inner := record.InnerSymbols()
	if len(inner) > 0 {
		node.Symbols = make([]*Node, 0, len(inner))
		for _, child := range inner {
			node.Symbols = append(node.Symbols, c.Encode(child))
		}
	}
	return node
}

func parseInterline(text *string) (int32, error) {
	if text == nil {
		return 0, nil
	}
	trimmed := strings.TrimSpace(*text)
	if trimmed == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(trimmed, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrMalformedInterline, *text)
	}
	return int32(v), nil
}

func parseID(text string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrMalformedID, text)
	}
	return uint32(v), nil
}

func childPath(parent string, index int) string {
	if parent == "" {
		return fmt.Sprintf("Symbol[%d]", index)
	}
	return fmt.Sprintf("%s/Symbol[%d]", parent, index)
}
