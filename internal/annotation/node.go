package annotation

import "encoding/xml"

// Node is the persisted form of one symbol. Attribute values are kept as raw
// text so that Codec owns every parsing and formatting decision. Bounds keeps
// every Bounds child as read; a valid node has exactly one.
type Node struct {
	XMLName   xml.Name      `xml:"Symbol"`
	Interline *string       `xml:"interline,attr"`
	ID        *string       `xml:"id,attr,omitempty"`
	Shape     *string       `xml:"shape,attr,omitempty"`
	Bounds    []*BoundsNode `xml:"Bounds"`
	Symbols   []*Node       `xml:"Symbol"`
}

// BoundsNode is the persisted bounding box of a symbol.
type BoundsNode struct {
	X string `xml:"x,attr"`
	Y string `xml:"y,attr"`
	W string `xml:"w,attr"`
	H string `xml:"h,attr"`
}

// Document is the root element of an annotation file.
type Document struct {
	XMLName xml.Name `xml:"Annotations"`
	Version string   `xml:"version,attr,omitempty"`
	Source  string   `xml:"source,attr,omitempty"`
	Symbols []*Node  `xml:"Symbol"`
}

func textPtr(s string) *string {
	return &s
}
