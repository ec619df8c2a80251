package annotation

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"omrdata/internal/geometry"
	"omrdata/internal/logging"
	"omrdata/internal/shape"
	"omrdata/internal/symbol"
)

func newTestLogger(t *testing.T, w io.Writer) *slog.Logger {
	t.Helper()
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: w})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	return logger
}

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<Annotations version="1.0" source="page-001.png">
  <Symbol interline="20" id="1" shape="gClef">
    <Bounds x="12" y="30.5" w="18" h="52"/>
  </Symbol>
  <Symbol interline="20" id="2" shape="beam">
    <Bounds x="100" y="40" w="60" h="8"/>
    <Symbol interline="20" id="3" shape="noteheadBlack">
      <Bounds x="100" y="60" w="12.75" h="10"/>
    </Symbol>
    <Symbol interline="20" id="4" shape="noteheadBlack">
      <Bounds x="148" y="62" w="12.75" h="10"/>
    </Symbol>
  </Symbol>
</Annotations>
`

func TestReadPage(t *testing.T) {
	page, err := NewCodec().ReadPage(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("ReadPage: %v", err)
	}
	if page.Version != "1.0" || page.Source != "page-001.png" {
		t.Fatalf("unexpected page header: %+v", page)
	}
	if len(page.Symbols) != 2 {
		t.Fatalf("expected 2 top-level symbols, got %d", len(page.Symbols))
	}
	clef := page.Symbols[0]
	if s, _ := clef.Shape(); s != shape.GClef || clef.Bounds().Y != 30.5 {
		t.Fatalf("unexpected first symbol: %s", clef)
	}
	if got := len(page.Symbols[1].InnerSymbols()); got != 2 {
		t.Fatalf("expected beam with 2 inner symbols, got %d", got)
	}
}

func TestWritePageIsByteStable(t *testing.T) {
	codec := NewCodec()
	page, err := codec.ReadPage(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("ReadPage: %v", err)
	}

	var first, second bytes.Buffer
	if err := codec.WritePage(&first, page, 4); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	if err := codec.WritePage(&second, page, 4); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("output not deterministic:\n%s\n%s", first.String(), second.String())
	}

	reread, err := codec.ReadPage(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	var third bytes.Buffer
	if err := codec.WritePage(&third, reread, 4); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	if third.String() != first.String() {
		t.Fatalf("format is not idempotent:\n%s\n%s", first.String(), third.String())
	}
	for i := range page.Symbols {
		if !symbol.Equivalent(page.Symbols[i], reread.Symbols[i]) {
			t.Fatalf("symbol %d changed across write/read", i)
		}
	}
}

func TestWritePageLayout(t *testing.T) {
	page := &Page{
		Source: "p.png",
		Symbols: []*symbol.Record{
			symbol.New(shape.Stem, 20, geometry.Rect{X: 1, Y: 2, Width: 0.5, Height: 30}, symbol.WithID(8)),
		},
	}
	var buf bytes.Buffer
	if err := NewCodec().WritePage(&buf, page, 2); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>
<Annotations version="1.0" source="p.png">
  <Symbol interline="20" id="8" shape="stem">
    <Bounds x="1" y="2" w="0.5" h="30"></Bounds>
  </Symbol>
</Annotations>
`
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWritePageKeepsVersion(t *testing.T) {
	codec := NewCodec()
	raw := `<Annotations version="2.5"><Symbol interline="20" shape="stem"><Bounds x="0" y="0" w="1" h="1"/></Symbol></Annotations>`
	page, err := codec.ReadPage(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadPage: %v", err)
	}
	var buf bytes.Buffer
	if err := codec.WritePage(&buf, page, 2); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	if !strings.Contains(buf.String(), `<Annotations version="2.5">`) {
		t.Fatalf("version not kept:\n%s", buf.String())
	}
}

func TestReadDocumentRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "syntax error", raw: `<Annotations><Symbol interline="20">`},
		{name: "wrong root", raw: `<Symbols><Symbol interline="20"/></Symbols>`},
		{name: "empty", raw: ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCodec().ReadPage(strings.NewReader(tt.raw))
			if !errors.Is(err, ErrMalformedDocument) {
				t.Fatalf("expected ErrMalformedDocument, got %v", err)
			}
		})
	}
}

func TestDecodeDocumentStopsAtFirstFailure(t *testing.T) {
	raw := `<Annotations>
  <Symbol interline="20" shape="stem"><Bounds x="0" y="0" w="1" h="1"/></Symbol>
  <Symbol interline="x" shape="stem"><Bounds x="0" y="0" w="1" h="1"/></Symbol>
</Annotations>`
	doc, err := ReadDocument(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	page, err := NewCodec().DecodeDocument(doc)
	if page != nil {
		t.Fatal("expected no page on structural failure")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Path != "Annotations/Symbol[1]" {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(err, ErrMalformedInterline) {
		t.Fatalf("expected ErrMalformedInterline, got %v", err)
	}
}

func TestDecodeDocumentLenient(t *testing.T) {
	raw := `<Annotations source="p.png">
  <Symbol interline="20" shape="stem"><Bounds x="0" y="0" w="1" h="1"/></Symbol>
  <Symbol interline="20" shape="stem"><Bounds x="0" y="0" w="?" h="1"/></Symbol>
  <Symbol interline="20" shape="mysteryShape"><Bounds x="5" y="0" w="1" h="1"/></Symbol>
</Annotations>`
	doc, err := ReadDocument(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	var collector Collector
	page, errs := NewCodec(WithSink(&collector)).DecodeDocumentLenient(doc)
	if len(page.Symbols) != 2 || len(errs) != 1 {
		t.Fatalf("expected 2 symbols and 1 error, got %d and %v", len(page.Symbols), errs)
	}
	if page.Source != "p.png" {
		t.Fatalf("expected source kept, got %q", page.Source)
	}
	if !errors.Is(errs[0], geometry.ErrMalformedNumber) || !strings.Contains(errs[0].Error(), "Annotations/Symbol[1]/Bounds") {
		t.Fatalf("unexpected error: %v", errs[0])
	}
	if collector.Len() != 1 || collector.Diagnostics()[0].Path != "Annotations/Symbol[2]" {
		t.Fatalf("unexpected diagnostics: %v", collector.Diagnostics())
	}
}

func TestEncodeDocumentNilPage(t *testing.T) {
	doc := NewCodec().EncodeDocument(nil)
	if doc.Version != DocumentVersion || len(doc.Symbols) != 0 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if _, err := NewCodec().DecodeDocument(nil); !errors.Is(err, ErrNilNode) {
		t.Fatalf("expected ErrNilNode, got %v", err)
	}
}
