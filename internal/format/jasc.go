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
	palette.RegisterCodec(jascCodec{})
}

// jascCodec reads and writes the JASC-PAL text format used by Paint
// Shop Pro: a two-line header, an entry count, then one "R G B" line
// per color.
type jascCodec struct{}

const (
	jascSignature = "JASC-PAL"
	jascVersion   = "0100"
)

func (jascCodec) Name() string         { return "jasc" }
func (jascCodec) Extensions() []string { return []string{".pal"} }

func (jascCodec) Encode(w io.Writer, c *palette.Collection) error {
	bw := bufio.NewWriter(w)

	values := c.Values()
	fmt.Fprintln(bw, jascSignature)
	fmt.Fprintln(bw, jascVersion)
	fmt.Fprintln(bw, len(values))
	for _, v := range values {
		fmt.Fprintf(bw, "%d %d %d\n", v.Red(), v.Green(), v.Blue())
	}
	return bw.Flush()
}

func (jascCodec) Decode(r io.Reader) (*palette.Collection, error) {
	scanner := bufio.NewScanner(r)

	if line, ok := scanLine(scanner); !ok || line != jascSignature {
		return nil, fmt.Errorf("jasc: missing %s signature", jascSignature)
	}
	if line, ok := scanLine(scanner); !ok || line != jascVersion {
		return nil, fmt.Errorf("jasc: unsupported version")
	}

	countLine, ok := scanLine(scanner)
	if !ok {
		return nil, fmt.Errorf("jasc: missing entry count")
	}
	var count int
	if _, err := fmt.Sscanf(countLine, "%d", &count); err != nil || count < 0 {
		return nil, fmt.Errorf("jasc: bad entry count %q", countLine)
	}

	c := palette.New()
	for i := 0; i < count; i++ {
		line, ok := scanLine(scanner)
		if !ok {
			return nil, fmt.Errorf("jasc: expected %d entries, got %d", count, i)
		}
		var cr, cg, cb int
		if _, err := fmt.Sscanf(line, "%d %d %d", &cr, &cg, &cb); err != nil {
			return nil, fmt.Errorf("jasc: entry %d: %q", i, line)
		}
		if !channelInRange(cr) || !channelInRange(cg) || !channelInRange(cb) {
			return nil, fmt.Errorf("jasc: entry %d out of range: %q", i, line)
		}
		c.Add(color.FromRGB(uint8(cr), uint8(cg), uint8(cb)))
	}
	return c, scanner.Err()
}

// scanLine returns the next non-empty trimmed line.
func scanLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}

func channelInRange(v int) bool {
	return v >= 0 && v <= 255
}
