package format

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/palettekit/internal/color"
	"github.com/dshills/palettekit/internal/palette"
)

func init() {
	palette.RegisterCodec(jsonCodec{})
}

// jsonCodec reads and writes a JSON palette document:
//
//	{"name": "palettekit", "colors": ["#FF0000", "#8000FF00", ...]}
//
// Colors are hex strings in the same forms ParseHex accepts.
type jsonCodec struct{}

func (jsonCodec) Name() string         { return "json" }
func (jsonCodec) Extensions() []string { return []string{".json"} }

func (jsonCodec) Encode(w io.Writer, c *palette.Collection) error {
	doc := []byte(`{}`)

	doc, err := sjson.SetBytes(doc, "name", "palettekit")
	if err != nil {
		return fmt.Errorf("json: %w", err)
	}
	// Force an empty array so zero-color palettes still carry the key.
	doc, err = sjson.SetRawBytes(doc, "colors", []byte(`[]`))
	if err != nil {
		return fmt.Errorf("json: %w", err)
	}
	for _, v := range c.Values() {
		doc, err = sjson.SetBytes(doc, "colors.-1", v.Hex())
		if err != nil {
			return fmt.Errorf("json: %w", err)
		}
	}

	_, err = w.Write(append(doc, '\n'))
	return err
}

func (jsonCodec) Decode(r io.Reader) (*palette.Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("json: invalid document")
	}

	colors := gjson.GetBytes(data, "colors")
	if !colors.Exists() || !colors.IsArray() {
		return nil, fmt.Errorf("json: missing colors array")
	}

	c := palette.New()
	var decodeErr error
	colors.ForEach(func(_, entry gjson.Result) bool {
		v, err := color.ParseHex(entry.String())
		if err != nil {
			decodeErr = fmt.Errorf("json: %w", err)
			return false
		}
		c.Add(v)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return c, nil
}
