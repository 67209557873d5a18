package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/palettekit/internal/color"
	"github.com/dshills/palettekit/internal/palette"
)

func TestJson_Decode(t *testing.T) {
	input := `{"name":"test","colors":["#FF0000","#00FF00","#80112233"]}`

	c, err := jsonCodec{}.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := []color.ARGB{0xFFFF0000, 0xFF00FF00, 0x80112233}
	if c.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", c.Len(), len(want))
	}
	for i, v := range want {
		if got, _ := c.At(i); got != v {
			t.Errorf("At(%d) = %v, want %v", i, got, v)
		}
	}
}

func TestJson_DecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid json", `{"colors": [`},
		{"missing colors", `{"name":"x"}`},
		{"colors not array", `{"colors": "#FF0000"}`},
		{"bad hex entry", `{"colors": ["#XYZZY9"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := (jsonCodec{}).Decode(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Decode(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestJson_EncodeShape(t *testing.T) {
	c := palette.New()
	c.Add(color.FromRGB(255, 0, 0))

	var buf bytes.Buffer
	if err := (jsonCodec{}).Encode(&buf, c); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	doc := buf.String()
	if !gjson.Valid(doc) {
		t.Fatalf("Encode produced invalid JSON: %q", doc)
	}
	if got := gjson.Get(doc, "colors.0").String(); got != "#FF0000" {
		t.Errorf("colors.0 = %q, want #FF0000", got)
	}
	if got := gjson.Get(doc, "name").String(); got != "palettekit" {
		t.Errorf("name = %q, want palettekit", got)
	}
}

func TestJson_EncodeEmptyKeepsColorsKey(t *testing.T) {
	var buf bytes.Buffer
	if err := (jsonCodec{}).Encode(&buf, palette.New()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	colors := gjson.Get(buf.String(), "colors")
	if !colors.Exists() || !colors.IsArray() {
		t.Errorf("empty palette should still carry a colors array: %q", buf.String())
	}
}
