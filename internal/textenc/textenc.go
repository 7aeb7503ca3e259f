// Package textenc converts raw file bytes to the text the codec works on and
// back again. Game files are UTF-8, but tools on Windows tend to save them
// with a BOM or as UTF-16; the original encoding is detected on read and
// reapplied on write so an untouched file is written back byte for byte.
package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies how a file is stored on disk.
type Encoding int

const (
	UTF8        Encoding = iota // plain UTF-8, no BOM
	UTF8BOM                     // UTF-8 with a leading EF BB BF
	UTF16LE                     // UTF-16 little-endian with BOM
	UTF16BE                     // UTF-16 big-endian with BOM
	Windows1252                 // legacy single-byte Latin encoding
)

// Encoding names accepted by Parse and printed by String.
const (
	NameAuto        = "auto"
	NameUTF8        = "utf-8"
	NameUTF8BOM     = "utf-8-bom"
	NameUTF16LE     = "utf-16le"
	NameUTF16BE     = "utf-16be"
	NameWindows1252 = "windows-1252"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}

	errUnsupportedEncoding = errors.New("textenc: unsupported encoding")
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return NameUTF8
	case UTF8BOM:
		return NameUTF8BOM
	case UTF16LE:
		return NameUTF16LE
	case UTF16BE:
		return NameUTF16BE
	case Windows1252:
		return NameWindows1252
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// Parse maps an encoding name to an Encoding. "auto" and "" report ok=false,
// meaning the caller should Detect instead.
func Parse(name string) (enc Encoding, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameAuto:
		return 0, false, nil
	case NameUTF8, "utf8":
		return UTF8, true, nil
	case NameUTF8BOM:
		return UTF8BOM, true, nil
	case NameUTF16LE, "utf16le":
		return UTF16LE, true, nil
	case NameUTF16BE, "utf16be":
		return UTF16BE, true, nil
	case NameWindows1252, "cp1252", "latin1":
		return Windows1252, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %q", errUnsupportedEncoding, name)
	}
}

// Detect guesses the encoding of data from its BOM, falling back to UTF-8
// when the bytes are valid UTF-8 and Windows-1252 otherwise.
func Detect(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	case utf8.Valid(data):
		return UTF8
	default:
		return Windows1252
	}
}

func (e Encoding) codec() (encoding.Encoding, error) {
	switch e {
	case UTF8:
		return encoding.Nop, nil
	case UTF8BOM:
		return unicode.UTF8BOM, nil
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case Windows1252:
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedEncoding, e)
	}
}

// Decode converts data in encoding e to a UTF-8 string. Any BOM is removed.
func Decode(data []byte, e Encoding) (string, error) {
	if e == UTF8 {
		return string(data), nil // No transform
	}
	c, err := e.codec()
	if err != nil {
		return "", err
	}
	out, err := c.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("textenc: decoding %s: %w", e, err)
	}
	return string(out), nil
}

// Encode converts text to encoding e, adding the BOM the encoding implies.
func Encode(text string, e Encoding) ([]byte, error) {
	if e == UTF8 {
		return []byte(text), nil
	}
	c, err := e.codec()
	if err != nil {
		return nil, err
	}
	out, err := c.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("textenc: encoding %s: %w", e, err)
	}
	return out, nil
}
