package transcoder

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	apperrors "github.com/seojacky/account-teacher/pkg/errors"
)

// Encoding is the byte representation of an exported file.
type Encoding string

const (
	EncodingUTF8BOM     Encoding = "utf8bom"
	EncodingUTF8        Encoding = "utf8"
	EncodingWindows1251 Encoding = "windows1251"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrUnknownEncoding is returned for an encoding name outside the three variants.
var ErrUnknownEncoding = apperrors.Validation("невідоме кодування файлу")

// ParseEncoding maps a caller-supplied name to an Encoding; empty selects def.
func ParseEncoding(name string, def Encoding) (Encoding, error) {
	switch Encoding(name) {
	case "":
		return def, nil
	case EncodingUTF8BOM, EncodingUTF8, EncodingWindows1251:
		return Encoding(name), nil
	}
	return "", ErrUnknownEncoding
}

// ContentType is the MIME type announced for the encoded file.
func (e Encoding) ContentType() string {
	if e == EncodingWindows1251 {
		return "text/csv; charset=windows-1251"
	}
	return "text/csv; charset=utf-8"
}

// apply converts UTF-8 text into the byte layout of e.
func (e Encoding) apply(text string) []byte {
	switch e {
	case EncodingUTF8:
		return []byte(text)
	case EncodingWindows1251:
		return toWindows1251(text)
	default:
		out := make([]byte, 0, len(utf8BOM)+len(text))
		out = append(out, utf8BOM...)
		return append(out, text...)
	}
}

// toWindows1251 drops runes the code page cannot represent.
func toWindows1251(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if b, ok := charmap.Windows1251.EncodeRune(r); ok {
			out = append(out, b)
		}
	}
	return out
}

// toUTF8 normalises uploaded bytes to UTF-8 text without a BOM.
// Input that is not valid UTF-8 is read as Windows-1251.
func toUTF8(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data)
	}
	var b bytes.Buffer
	b.Grow(len(data) * 2)
	for _, c := range data {
		b.WriteRune(charmap.Windows1251.DecodeByte(c))
	}
	return b.String()
}
