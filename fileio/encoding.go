package fileio

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding selects the on-disk text encoding for import and export. The zero
// value is plain UTF-8: a BOM is tolerated (and stripped) on read and never
// written.
type Encoding string

const (
	UTF8    Encoding = "utf-8"
	UTF8BOM Encoding = "utf-8-bom"
	UTF16LE Encoding = "utf-16le"
	UTF16BE Encoding = "utf-16be"
	Latin1  Encoding = "latin-1"
)

// ParseEncoding resolves an encoding name from a flag or config file. The
// empty string means UTF8.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf8", "utf-8":
		return UTF8, nil
	case "utf8bom", "utf-8-bom", "utf-8-sig":
		return UTF8BOM, nil
	case "utf16", "utf-16", "utf16le", "utf-16le":
		return UTF16LE, nil
	case "utf16be", "utf-16be":
		return UTF16BE, nil
	case "latin1", "latin-1", "iso-8859-1":
		return Latin1, nil
	}
	return "", fmt.Errorf("unknown encoding %q", name)
}

func (e Encoding) String() string {
	if e == "" {
		return string(UTF8)
	}
	return string(e)
}

func (e Encoding) decoder() *encoding.Decoder {
	switch e {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case Latin1:
		return charmap.ISO8859_1.NewDecoder()
	default:
		// UTF8 and UTF8BOM read identically: strip a BOM when present.
		return unicode.UTF8BOM.NewDecoder()
	}
}

func (e Encoding) encoder() *encoding.Encoder {
	switch e {
	case UTF8BOM:
		return unicode.UTF8BOM.NewEncoder()
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	case Latin1:
		return charmap.ISO8859_1.NewEncoder()
	default:
		return encoding.Nop.NewEncoder()
	}
}
