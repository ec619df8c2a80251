package annotation

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"omrdata/internal/symbol"
)

// DocumentVersion is written on encoded documents whose page carries no version.
const DocumentVersion = "1.0"

// rootPath prefixes the path of every top-level symbol in a document.
const rootPath = "Annotations"

// Page is the decoded content of one annotation file.
type Page struct {
	Version string
	// Source names the page image the symbols were annotated on.
	Source  string
	Symbols []*symbol.Record
}

// ReadDocument parses an annotation document from r. Input must be UTF-8.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return &doc, nil
}

// WriteDocument writes doc with an XML header, indenting nested elements by
// indent spaces, and a trailing newline.
func WriteDocument(w io.Writer, doc *Document, indent int) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write xml header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", strings.Repeat(" ", max(indent, 0)))
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode annotations: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush annotations: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write trailing newline: %w", err)
	}
	return nil
}

// DecodeDocument decodes every top-level symbol of doc. The first structural
// failure aborts the page.
func (c *Codec) DecodeDocument(doc *Document) (*Page, error) {
	if doc == nil {
		return nil, &DecodeError{Path: rootPath, Err: ErrNilNode}
	}
	page := &Page{
		Version: doc.Version,
		Source:  doc.Source,
		Symbols: make([]*symbol.Record, 0, len(doc.Symbols)),
	}
	for i, node := range doc.Symbols {
		record, err := c.decode(node, childPath(rootPath, i))
		if err != nil {
			return nil, err
		}
		page.Symbols = append(page.Symbols, record)
	}
	return page, nil
}

// DecodeDocumentLenient decodes each top-level symbol independently and
// returns the page built from the symbols that decoded, plus one error per
// failed symbol.
func (c *Codec) DecodeDocumentLenient(doc *Document) (*Page, []error) {
	if doc == nil {
		return &Page{}, []error{&DecodeError{Path: rootPath, Err: ErrNilNode}}
	}
	records, errs := c.DecodeAll(doc.Symbols, rootPath)
	return &Page{Version: doc.Version, Source: doc.Source, Symbols: records}, errs
}

// EncodeDocument converts page into its persisted form.
func (c *Codec) EncodeDocument(page *Page) *Document {
	doc := &Document{Version: DocumentVersion}
	if page == nil {
		return doc
	}
	if page.Version != "" {
		doc.Version = page.Version
	}
	doc.Source = page.Source
	for _, record := range page.Symbols {
		if node := c.Encode(record); node != nil {
			doc.Symbols = append(doc.Symbols, node)
		}
	}
	return doc
}

// ReadPage reads and decodes an annotation document.
func (c *Codec) ReadPage(r io.Reader) (*Page, error) {
	doc, err := ReadDocument(r)
	if err != nil {
		return nil, err
	}
	return c.DecodeDocument(doc)
}

// WritePage encodes page and writes it as an annotation document.
func (c *Codec) WritePage(w io.Writer, page *Page, indent int) error {
	return WriteDocument(w, c.EncodeDocument(page), indent)
}
