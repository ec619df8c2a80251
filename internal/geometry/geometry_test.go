package geometry

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10.123456, "10.123"},
		{0, "0"},
		{5.0, "5"},
		{2.5, "2.5"},
		{1234567.0, "1234567"},
		{0.0004, "0"},
		{-0.0004, "0"},
		{-12.3456, "-12.346"},
		{0.1, "0.1"},
		{99.9999, "100"},
	}
	for _, tt := range tests {
		if got := FormatCoord(tt.in); got != tt.want {
			t.Errorf("FormatCoord(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrecisionRoundTrip(t *testing.T) {
	r := Rect{X: 10.123456, Y: 0, Width: 5.0, Height: 2.5}
	f := Encode(r)
	if f.X != "10.123" || f.Y != "0" || f.W != "5" || f.H != "2.5" {
		t.Fatalf("unexpected encoded fields: %+v", f)
	}
	back, err := Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.X != 10.123 {
		t.Fatalf("expected x to read back as 10.123, got %v", back.X)
	}
	if back != Quantize(r) {
		t.Fatalf("decoded %+v differs from quantized %+v", back, Quantize(r))
	}
}

func TestDecodeKeepsFullPrecision(t *testing.T) {
	r, err := Decode(Fields{X: "1.23456789", Y: " 2 ", W: "3e2", H: "-4.5"})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Rect{X: 1.23456789, Y: 2, Width: 300, Height: -4.5}
	if r != want {
		t.Fatalf("got %+v want %+v", r, want)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		in    Fields
		field string
	}{
		{"letters", Fields{X: "abc", Y: "1", W: "1", H: "1"}, "x"},
		{"comma decimal", Fields{X: "1", Y: "1,5", W: "1", H: "1"}, "y"},
		{"empty", Fields{X: "1", Y: "1", W: "", H: "1"}, "w"},
		{"grouping", Fields{X: "1", Y: "1", W: "1", H: "1 000"}, "h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			if !errors.Is(err, ErrMalformedNumber) {
				t.Fatalf("expected ErrMalformedNumber, got %v", err)
			}
			var numErr *NumberError
			if !errors.As(err, &numErr) {
				t.Fatalf("expected *NumberError, got %T", err)
			}
			if numErr.Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, numErr.Field)
			}
			if !errors.Is(err, strconv.ErrSyntax) {
				t.Fatalf("expected syntax cause, got %v", err)
			}
		})
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	r := Rect{X: 1.0005, Y: 1.0015, Width: math.Pi, Height: 1e6 / 3}
	first := Encode(r)
	for i := 0; i < 10; i++ {
		if got := Encode(r); got != first {
			t.Fatalf("encode not stable: %+v vs %+v", got, first)
		}
	}
	if first.W != "3.142" || first.H != "333333.333" {
		t.Fatalf("unexpected fields: %+v", first)
	}
}

func TestRectString(t *testing.T) {
	r := Rect{X: 1, Y: 2.5, Width: 3.25, Height: 4.125}
	if got := r.String(); got != "[x=1,y=2.5,w=3.25,h=4.125]" {
		t.Fatalf("unexpected string: %s", got)
	}
}
