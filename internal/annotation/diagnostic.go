package annotation

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"omrdata/internal/geometry"
	"omrdata/internal/logging"
)

// Kind classifies a per-symbol diagnostic.
type Kind string

const (
	// KindUnknownShape marks a shape token missing from the vocabulary.
	KindUnknownShape Kind = "unknown_shape"
	// KindMissingShape marks a symbol element without any shape attribute.
	KindMissingShape Kind = "missing_shape"
)

// Diagnostic describes a symbol that decoded without a usable shape.
type Diagnostic struct {
	Kind       Kind
	Path       string
	Token      string
	Suggestion string
	ID         uint32
	HasID      bool
	Interline  int32
	Bounds     geometry.Rect
}

func (d Diagnostic) String() string {
	var sb strings.Builder
	sb.WriteString(d.Path)
	sb.WriteString(": ")
	switch d.Kind {
	case KindUnknownShape:
		fmt.Fprintf(&sb, "unknown shape name %q", d.Token)
		if d.Suggestion != "" {
			fmt.Fprintf(&sb, " (did you mean %q?)", d.Suggestion)
		}
	default:
		sb.WriteString("null shape")
	}
	if d.HasID {
		fmt.Fprintf(&sb, " id:%d", d.ID)
	}
	sb.WriteByte(' ')
	sb.WriteString(d.Bounds.String())
	return sb.String()
}

// Sink receives diagnostics. Decoding never stops because of one.
type Sink interface {
	Report(Diagnostic)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Collector accumulates diagnostics. It is safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, d)
}

// Diagnostics returns a copy of everything reported so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of diagnostics reported so far.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Reset drops every collected diagnostic.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Tee forwards each diagnostic to every non-nil sink.
func Tee(sinks ...Sink) Sink {
	var live []Sink
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}
	return SinkFunc(func(d Diagnostic) {
		for _, s := range live {
			s.Report(d)
		}
	})
}

// NewLogSink returns a sink that logs each diagnostic as a warning.
func NewLogSink(logger *slog.Logger) Sink {
	logger = logging.NewComponentLogger(logger, "annotation")
	return SinkFunc(func(d Diagnostic) {
		attrs := []logging.Attr{
			logging.String(logging.FieldSymbolPath, d.Path),
			logging.String(logging.FieldBounds, d.Bounds.String()),
			logging.Int("interline", int(d.Interline)),
		}
		if d.HasID {
			attrs = append(attrs, logging.Uint64(logging.FieldSymbolID, uint64(d.ID)))
		}
		switch d.Kind {
		case KindUnknownShape:
			attrs = append(attrs,
				logging.String(logging.FieldShapeToken, d.Token),
				logging.String(logging.FieldImpact, "symbol kept without shape; unusable for training"),
			)
			hint := "rename the shape in the annotation file or add a vocabulary alias"
			if d.Suggestion != "" {
				attrs = append(attrs, logging.String(logging.FieldSuggestion, d.Suggestion))
				hint = fmt.Sprintf("did you mean %q? rename it or add a vocabulary alias", d.Suggestion)
			}
			attrs = append(attrs, logging.String(logging.FieldErrorHint, hint))
			logging.WarnWithContext(logger, "unknown shape name", "annotation."+string(d.Kind), attrs...)
		default:
			attrs = append(attrs,
				logging.String(logging.FieldImpact, "symbol kept without shape; unusable for training"),
				logging.String(logging.FieldErrorHint, "add a shape attribute to the symbol element"),
			)
			logging.WarnWithContext(logger, "null shape", "annotation."+string(d.Kind), attrs...)
		}
	})
}
