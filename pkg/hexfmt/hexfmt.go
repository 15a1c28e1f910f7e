// Package hexfmt renders codepoints and encoded bytes as hex strings for
// matching text up with raw file data.
package hexfmt

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// NoBytes is rendered in place of an empty byte sequence
const NoBytes = "<none>"

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

type Encoding string

const (
	UTF8  Encoding = "utf-8"
	UTF16 Encoding = "utf-16"
)

var supportedEncodings = []string{string(UTF8), string(UTF16)}

// ParseEncoding accepts the common spellings of the supported encodings
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return UTF8, nil
	case "utf-16", "utf16", "utf-16le", "unicode":
		return UTF16, nil
	}
	return "", fmt.Errorf("%w %q. Must be one of %s", ErrUnsupportedEncoding, name, strings.Join(supportedEncodings, ", "))
}

// CodepointHex renders c as at least 4 uppercase hex digits, e.g. 65 -> "0041"
func CodepointHex(c rune) string {
	return fmt.Sprintf("%04X", uint32(c))
}

// CodepointUHex renders c in U+ notation, e.g. 'A' -> "U+0041"
func CodepointUHex(c rune) string {
	return "U+" + CodepointHex(c)
}

// UnicodeEscape renders c as a \u escape sequence
func UnicodeEscape(c rune) string {
	return `\u` + CodepointHex(c)
}

func join(units []rune, render func(rune) string, sep string) string {
	var sb strings.Builder
	for i, c := range units {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(render(c))
	}
	return sb.String()
}

// CodepointHexString renders each unit space separated
func CodepointHexString(units []rune) string {
	return join(units, CodepointHex, " ")
}

func CodepointUHexString(units []rune) string {
	return join(units, CodepointUHex, " ")
}

func UnicodeEscapeString(units []rune) string {
	return join(units, UnicodeEscape, "")
}

// Bytes renders b as space separated uppercase hex pairs, or NoBytes when b is empty
func Bytes(b []byte) string {
	if len(b) == 0 {
		return NoBytes
	}
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", c)
	}
	return sb.String()
}

// HexBytes encodes text with enc and renders the resulting bytes
func HexBytes(text string, enc Encoding) (string, error) {
	switch enc {
	case UTF8:
		return Bytes([]byte(text)), nil
	case UTF16:
		b, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(text))
		if err != nil {
			return "", fmt.Errorf("encoding %s: %w", enc, err)
		}
		return Bytes(b), nil
	}
	return "", fmt.Errorf("%w %q", ErrUnsupportedEncoding, string(enc))
}

// Utf8HexBytes is HexBytes for UTF-8, which cannot fail
func Utf8HexBytes(text string) string {
	return Bytes([]byte(text))
}
