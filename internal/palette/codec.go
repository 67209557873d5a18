package palette

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Codec is the pluggable serializer strategy for one palette file format.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Name returns the codec's short name, e.g. "jasc".
	Name() string

	// Extensions returns the file extensions the codec claims,
	// lowercased with the leading dot, e.g. ".pal".
	Extensions() []string

	// Encode writes the collection to w. Encode does not mutate c.
	Encode(w io.Writer, c *Collection) error

	// Decode reads a new collection from r.
	Decode(r io.Reader) (*Collection, error)
}

// codecs is the process-wide codec registry, keyed by extension.
// Formats register themselves on import, in the manner of image/png.
var (
	codecMu     sync.RWMutex
	codecByExt  = make(map[string]Codec)
	codecByName = make(map[string]Codec)
)

// RegisterCodec adds a codec to the registry. It panics if another
// codec already claims one of its extensions or its name; registration
// happens at init time where a duplicate is a programming error.
func RegisterCodec(codec Codec) {
	codecMu.Lock()
	defer codecMu.Unlock()

	name := strings.ToLower(codec.Name())
	if _, exists := codecByName[name]; exists {
		panic("palette: codec already registered: " + name)
	}
	for _, ext := range codec.Extensions() {
		ext = strings.ToLower(ext)
		if prior, exists := codecByExt[ext]; exists {
			panic("palette: extension " + ext + " already claimed by " + prior.Name())
		}
		codecByExt[ext] = codec
	}
	codecByName[name] = codec
}

// CodecForPath resolves a codec from a file name's extension.
func CodecForPath(path string) (Codec, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}

	ext := strings.ToLower(filepath.Ext(path))

	codecMu.RLock()
	codec, ok := codecByExt[ext]
	codecMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: no codec for %q", ErrUnsupportedFormat, path)
	}
	return codec, nil
}

// CodecByName resolves a codec from its registered name.
func CodecByName(name string) (Codec, error) {
	codecMu.RLock()
	codec, ok := codecByName[strings.ToLower(name)]
	codecMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: no codec named %q", ErrUnsupportedFormat, name)
	}
	return codec, nil
}

// CodecNames returns the registered codec names, sorted.
func CodecNames() []string {
	codecMu.RLock()
	defer codecMu.RUnlock()

	names := make([]string, 0, len(codecByName))
	for name := range codecByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OpenFile resolves a codec from the path, reads the file, and returns
// a newly constructed collection. Errors: ErrInvalidArgument for an
// empty path, ErrNotFound when the file does not exist,
// ErrUnsupportedFormat when no codec claims the extension.
func OpenFile(path string) (*Collection, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}

	codec, err := CodecForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	return codec.Decode(f)
}

// Load replaces the collection's contents with the decoded stream:
// a clear followed by sequential appends, notifications included.
// On decode failure the collection is left untouched.
func (c *Collection) Load(codec Codec, r io.Reader) error {
	if codec == nil {
		return fmt.Errorf("%w: nil codec", ErrInvalidArgument)
	}

	decoded, err := codec.Decode(r)
	if err != nil {
		return err
	}

	c.Clear()
	c.AddRange(decoded.items)
	return nil
}

// LoadFile replaces the collection's contents from a palette file,
// resolving the codec from the path. Same error taxonomy as OpenFile.
func (c *Collection) LoadFile(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}

	codec, err := CodecForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return err
	}
	defer f.Close()

	return c.Load(codec, f)
}

// Save writes the collection through the codec without mutating it.
func (c *Collection) Save(codec Codec, w io.Writer) error {
	if codec == nil {
		return fmt.Errorf("%w: nil codec", ErrInvalidArgument)
	}
	return codec.Encode(w, c)
}

// SaveFile writes the collection to a palette file. A nil codec is
// resolved from the path's extension.
func (c *Collection) SaveFile(path string, codec Codec) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}

	if codec == nil {
		resolved, err := CodecForPath(path)
		if err != nil {
			return err
		}
		codec = resolved
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := c.Save(codec, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
