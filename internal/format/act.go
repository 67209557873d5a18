package format

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dshills/palettekit/internal/color"
	"github.com/dshills/palettekit/internal/palette"
)

func init() {
	palette.RegisterCodec(actCodec{})
}

// actCodec reads and writes Adobe color tables: 256 raw RGB triples
// (768 bytes), optionally followed by a 4-byte footer holding the count
// of meaningful entries and a transparency index. Collections larger
// than 256 colors cannot be represented.
type actCodec struct{}

const (
	actEntries   = 256
	actBodySize  = actEntries * 3
	actTotalSize = actBodySize + 4
)

func (actCodec) Name() string         { return "act" }
func (actCodec) Extensions() []string { return []string{".act"} }

func (actCodec) Encode(w io.Writer, c *palette.Collection) error {
	values := c.Values()
	if len(values) > actEntries {
		return fmt.Errorf("act: %d colors exceed the %d-entry table", len(values), actEntries)
	}

	buf := make([]byte, actTotalSize)
	for i, v := range values {
		buf[i*3] = v.Red()
		buf[i*3+1] = v.Green()
		buf[i*3+2] = v.Blue()
	}
	binary.BigEndian.PutUint16(buf[actBodySize:], uint16(len(values)))
	binary.BigEndian.PutUint16(buf[actBodySize+2:], 0xFFFF) // no transparent index

	_, err := w.Write(buf)
	return err
}

func (actCodec) Decode(r io.Reader) (*palette.Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	count := actEntries
	switch len(data) {
	case actBodySize:
	case actTotalSize:
		count = int(binary.BigEndian.Uint16(data[actBodySize:]))
		if count > actEntries {
			return nil, fmt.Errorf("act: footer count %d exceeds table size", count)
		}
	default:
		return nil, fmt.Errorf("act: bad file size %d", len(data))
	}

	c := palette.New()
	for i := 0; i < count; i++ {
		c.Add(color.FromRGB(data[i*3], data[i*3+1], data[i*3+2]))
	}
	return c, nil
}
