package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"omrdata/internal/annotation"
	"omrdata/internal/geometry"
	"omrdata/internal/logging"
	"omrdata/internal/shape"
	"omrdata/internal/symbol"
)

// Format selects the serialization of a View.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat reports an export format other than json or yaml.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat resolves a user supplied format name.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q (want json or yaml)", ErrUnsupportedFormat, value)
	}
}

// Box is a bounding box rounded to the persisted precision.
type Box struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// Entry is one symbol of a page.
type Entry struct {
	Path      string  `json:"path" yaml:"path"`
	Parent    string  `json:"parent,omitempty" yaml:"parent,omitempty"`
	Depth     int     `json:"depth" yaml:"depth"`
	ID        *uint32 `json:"id,omitempty" yaml:"id,omitempty"`
	Shape     string  `json:"shape,omitempty" yaml:"shape,omitempty"`
	Label     string  `json:"label,omitempty" yaml:"label,omitempty"`
	Interline int32   `json:"interline" yaml:"interline"`
	Bounds    Box     `json:"bounds" yaml:"bounds"`
	Inner     int     `json:"inner,omitempty" yaml:"inner,omitempty"`
}

// View is the exported form of a page.
type View struct {
	Source  string  `json:"source,omitempty" yaml:"source,omitempty"`
	Version string  `json:"version,omitempty" yaml:"version,omitempty"`
	Total   int     `json:"total" yaml:"total"`
	Skipped int     `json:"skipped" yaml:"skipped"`
	Entries []Entry `json:"symbols" yaml:"symbols"`
}

// Options controls FromPage.
type Options struct {
	// SkipUnclassified drops symbols whose shape is absent.
	SkipUnclassified bool
	// Logger receives one warning per skipped symbol.
	Logger *slog.Logger
	// File names the page in log lines.
	File string
}

const rootPath = "Annotations"

// FromPage flattens page into a View, parents before children.
func FromPage(page *annotation.Page, opts Options) View {
	view := View{Entries: []Entry{}}
	if page == nil {
		return view
	}
	view.Source = page.Source
	view.Version = page.Version

	logger := logging.NewComponentLogger(opts.Logger, "export")
	for i, top := range page.Symbols {
		root := fmt.Sprintf("%s/Symbol[%d]", rootPath, i)
		_ = symbol.Walk(top, root, func(path string, depth int, r *symbol.Record) error {
			view.Total++
			s, ok := r.Shape()
			if !ok && opts.SkipUnclassified {
				view.Skipped++
				logging.WarnWithContext(logger, "skipping unclassified symbol", "export.skip_unclassified",
					logging.String(logging.FieldFile, opts.File),
					logging.String(logging.FieldSymbolPath, path),
					logging.String(logging.FieldBounds, r.Bounds().String()),
					logging.String(logging.FieldImpact, "symbol excluded from export"),
					logging.String(logging.FieldErrorHint, "assign a known shape in the annotation file"),
				)
				return nil
			}
			view.Entries = append(view.Entries, newEntry(path, depth, r, s, ok))
			return nil
		})
	}
	return view
}

func newEntry(path string, depth int, r *symbol.Record, s shape.Shape, classified bool) Entry {
	b := geometry.Quantize(r.Bounds())
	entry := Entry{
		Path:      path,
		Depth:     depth,
		Interline: r.Interline(),
		Bounds:    Box{X: b.X, Y: b.Y, W: b.Width, H: b.Height},
		Inner:     len(r.InnerSymbols()),
	}
	if depth > 0 {
		entry.Parent = path[:strings.LastIndex(path, "/")]
	}
	if id, ok := r.LookupID(); ok {
		entry.ID = &id
	}
	if classified {
		entry.Shape = s.String()
		entry.Label = shape.Label(s)
	}
	return entry
}

// Write serializes view to w in the given format.
func Write(w io.Writer, format Format, view View) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode json export: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode yaml export: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flush yaml export: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}
