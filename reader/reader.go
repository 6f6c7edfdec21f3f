package reader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tsawler/lasgo/las"
)

// utf8BOM is stripped from the start of the input.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Option configures how input bytes become LAS text.
type Option func(*options)

type options struct {
	encoding encoding.Encoding
}

// WithEncoding decodes the input from enc before parsing. Without it the
// input is taken to be UTF-8 (which includes plain ASCII). A nil enc is
// ignored.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) {
		if enc != nil {
			o.encoding = enc
		}
	}
}

// Open reads a LAS file from disk.
func Open(filename string, opts ...Option) (*las.Log, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	l, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return l, nil
}

// Read reads a LAS document from r until EOF.
func Read(r io.Reader, opts ...Option) (*las.Log, error) {
	text, err := Decode(r, opts...)
	if err != nil {
		return nil, err
	}
	return las.New(text), nil
}

// Decode reads r until EOF and returns its content as text, applying the
// configured encoding and dropping a leading byte order mark.
func Decode(r io.Reader, opts ...Option) (string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.encoding != nil {
		r = transform.NewReader(r, o.encoding.NewDecoder())
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decoding input: %w", err)
	}
	return string(bytes.TrimPrefix(data, utf8BOM)), nil
}

// aliases covers names that are common in the field but not registered
// with IANA.
var aliases = map[string]encoding.Encoding{
	"latin1": charmap.ISO8859_1,
	"cp1252": charmap.Windows1252,
	"cp437":  charmap.CodePage437,
	"cp850":  charmap.CodePage850,
	"ascii":  unicode.UTF8,
	"utf8":   unicode.UTF8,
}

// EncodingByName resolves an encoding name such as "windows-1252",
// "ISO-8859-1", "latin1" or "utf-8".
func EncodingByName(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("empty encoding name")
	}
	if enc, ok := aliases[key]; ok {
		return enc, nil
	}

	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}
