package palette

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/palettekit/internal/color"
)

// testCodec is a minimal line-per-hex-value codec for registry and
// file-IO tests.
type testCodec struct{}

func (testCodec) Name() string         { return "test" }
func (testCodec) Extensions() []string { return []string{".tpal"} }

func (testCodec) Encode(w io.Writer, c *Collection) error {
	for _, v := range c.Values() {
		if _, err := fmt.Fprintln(w, v.Hex()); err != nil {
			return err
		}
	}
	return nil
}

func (testCodec) Decode(r io.Reader) (*Collection, error) {
	c := New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := color.ParseHex(line)
		if err != nil {
			return nil, err
		}
		c.Add(v)
	}
	return c, scanner.Err()
}

func init() {
	RegisterCodec(testCodec{})
}

func TestCodecForPath(t *testing.T) {
	if _, err := CodecForPath("swatches.tpal"); err != nil {
		t.Errorf("CodecForPath(.tpal) error: %v", err)
	}
	if _, err := CodecForPath("SWATCHES.TPAL"); err != nil {
		t.Errorf("CodecForPath should be case-insensitive on extension: %v", err)
	}
	if _, err := CodecForPath("file.unknownext"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("CodecForPath(unknown) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := CodecForPath(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("CodecForPath(\"\") error = %v, want ErrInvalidArgument", err)
	}
}

func TestCodecByName(t *testing.T) {
	codec, err := CodecByName("test")
	if err != nil {
		t.Fatalf("CodecByName(test): %v", err)
	}
	if codec.Name() != "test" {
		t.Errorf("codec name = %q, want test", codec.Name())
	}
	if _, err := CodecByName("nope"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("CodecByName(nope) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestOpenFile_ErrorTaxonomy(t *testing.T) {
	if _, err := OpenFile(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("OpenFile(\"\") error = %v, want ErrInvalidArgument", err)
	}
	if _, err := OpenFile(filepath.Join(t.TempDir(), "missing.tpal")); !errors.Is(err, ErrNotFound) {
		t.Errorf("OpenFile(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := OpenFile("file.unknownext"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("OpenFile(unknown ext) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadFile_ErrorTaxonomy(t *testing.T) {
	c := New()
	if err := c.LoadFile(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("LoadFile(\"\") error = %v, want ErrInvalidArgument", err)
	}
	if err := c.LoadFile(filepath.Join(t.TempDir(), "missing.tpal")); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadFile(missing) error = %v, want ErrNotFound", err)
	}
	if err := c.LoadFile("file.unknownext"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("LoadFile(unknown ext) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSaveFile_ErrorTaxonomy(t *testing.T) {
	c := New()
	if err := c.SaveFile("", nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SaveFile(\"\") error = %v, want ErrInvalidArgument", err)
	}
	if err := c.SaveFile("out.unknownext", nil); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("SaveFile(unknown ext) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSaveThenOpen_RoundTrip(t *testing.T) {
	orig := New()
	orig.AddRange([]color.ARGB{red, green, blue, red})

	path := filepath.Join(t.TempDir(), "roundtrip.tpal")
	if err := orig.SaveFile(path, nil); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	loaded, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if !orig.Equal(loaded) {
		t.Errorf("round trip not equal: %v vs %v", orig.Values(), loaded.Values())
	}
}

func TestSave_DoesNotMutate(t *testing.T) {
	c := New()
	c.AddRange([]color.ARGB{red, green})
	before := c.Values()

	if err := c.Save(testCodec{}, io.Discard); err != nil {
		t.Fatalf("Save: %v", err)
	}

	after := c.Values()
	if len(before) != len(after) {
		t.Fatalf("Save changed length: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Save changed element %d", i)
		}
	}
}

func TestLoad_ReplacesWholesale(t *testing.T) {
	c := New()
	c.AddRange([]color.ARGB{blue, blue})

	if err := c.Load(testCodec{}, strings.NewReader("#FF0000\n#00FF00\n")); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("Len() = %d after Load, want 2", c.Len())
	}
	if v, _ := c.At(0); v != red {
		t.Errorf("At(0) = %v, want red", v)
	}
	if v, _ := c.At(1); v != green {
		t.Errorf("At(1) = %v, want green", v)
	}
}

func TestLoad_DecodeFailureLeavesCollectionUntouched(t *testing.T) {
	c := New()
	c.AddRange([]color.ARGB{red, green})

	err := c.Load(testCodec{}, strings.NewReader("not-a-color\n"))
	if err == nil {
		t.Fatal("Load of malformed input should fail")
	}
	if c.Len() != 2 {
		t.Errorf("failed Load mutated collection: len = %d, want 2", c.Len())
	}
}

func TestLoad_NilCodec(t *testing.T) {
	c := New()
	if err := c.Load(nil, strings.NewReader("")); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Load(nil codec) error = %v, want ErrInvalidArgument", err)
	}
	if err := c.Save(nil, io.Discard); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Save(nil codec) error = %v, want ErrInvalidArgument", err)
	}
}

func TestCodecNames_Sorted(t *testing.T) {
	names := CodecNames()
	found := false
	for i, name := range names {
		if name == "test" {
			found = true
		}
		if i > 0 && names[i-1] > name {
			t.Errorf("CodecNames not sorted: %v", names)
		}
	}
	if !found {
		t.Errorf("CodecNames() = %v, missing test codec", names)
	}
}

func TestSaveFile_WriteError(t *testing.T) {
	c := New()
	c.Add(red)

	dir := t.TempDir()
	// Target a path whose parent does not exist.
	err := c.SaveFile(filepath.Join(dir, "no-such-dir", "out.tpal"), nil)
	if err == nil {
		t.Error("SaveFile into missing directory should fail")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "no-such-dir")); !os.IsNotExist(statErr) {
		t.Error("SaveFile should not create parent directories")
	}
}
