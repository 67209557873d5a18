package format

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/dshills/palettekit/internal/color"
	"github.com/dshills/palettekit/internal/palette"
)

func init() {
	palette.RegisterCodec(tomlCodec{})
}

// tomlCodec reads and writes a TOML palette document:
//
//	name = "palettekit"
//	colors = ["#FF0000", "#8000FF00"]
type tomlCodec struct{}

// tomlPalette is the document schema.
type tomlPalette struct {
	Name   string   `toml:"name"`
	Colors []string `toml:"colors"`
}

func (tomlCodec) Name() string         { return "toml" }
func (tomlCodec) Extensions() []string { return []string{".toml"} }

func (tomlCodec) Encode(w io.Writer, c *palette.Collection) error {
	values := c.Values()
	doc := tomlPalette{
		Name:   "palettekit",
		Colors: make([]string, len(values)),
	}
	for i, v := range values {
		doc.Colors[i] = v.Hex()
	}

	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("toml: %w", err)
	}
	return nil
}

func (tomlCodec) Decode(r io.Reader) (*palette.Collection, error) {
	var doc tomlPalette
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}

	c := palette.New()
	for i, entry := range doc.Colors {
		v, err := color.ParseHex(entry)
		if err != nil {
			return nil, fmt.Errorf("toml: color %d: %w", i, err)
		}
		c.Add(v)
	}
	return c, nil
}
