package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/palettekit/internal/color"
	"github.com/dshills/palettekit/internal/palette"
)

func init() {
	palette.RegisterCodec(gplCodec{})
}

// gplCodec reads and writes GIMP palette files: a "GIMP Palette"
// header, optional Name/Columns lines, "#" comments, then one
// "R G B [name]" line per color. Entry names are tolerated on read and
// dropped; the hex value is written out as the name.
type gplCodec struct{}

const gplSignature = "GIMP Palette"

func (gplCodec) Name() string         { return "gimp" }
func (gplCodec) Extensions() []string { return []string{".gpl"} }

func (gplCodec) Encode(w io.Writer, c *palette.Collection) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, gplSignature)
	fmt.Fprintln(bw, "Name: palettekit")
	fmt.Fprintln(bw, "Columns: 16")
	fmt.Fprintln(bw, "#")
	for _, v := range c.Values() {
		fmt.Fprintf(bw, "%3d %3d %3d\t%s\n", v.Red(), v.Green(), v.Blue(), v.Hex())
	}
	return bw.Flush()
}

func (gplCodec) Decode(r io.Reader) (*palette.Collection, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != gplSignature {
		return nil, fmt.Errorf("gimp: missing %q header", gplSignature)
	}

	c := palette.New()
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "Name:") || strings.HasPrefix(line, "Columns:") {
			continue
		}

		var cr, cg, cb int
		if _, err := fmt.Sscanf(line, "%d %d %d", &cr, &cg, &cb); err != nil {
			return nil, fmt.Errorf("gimp: line %d: %q", lineNo, line)
		}
		if !channelInRange(cr) || !channelInRange(cg) || !channelInRange(cb) {
			return nil, fmt.Errorf("gimp: line %d out of range: %q", lineNo, line)
		}
		c.Add(color.FromRGB(uint8(cr), uint8(cg), uint8(cb)))
	}
	return c, scanner.Err()
}
