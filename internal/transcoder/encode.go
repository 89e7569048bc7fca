// Package transcoder converts achievement records to and from the cabinet's CSV dialects.
//
// The per-user dialect is a three-line preamble (banner, instructor, column header)
// followed by one `N);"text"` line per slot. The report dialect is a flat
// semicolon-separated table with one row per user.
package transcoder

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	apperrors "github.com/seojacky/account-teacher/pkg/errors"
)

// SlotCount is the number of achievement slots in a record.
const SlotCount = 20

const (
	instructorPrefix = "Instructor: "
	columnHeader     = "Type;Information"
	preambleLines    = 3
)

// ErrNothingToExport is returned when no row would be written.
var ErrNothingToExport = apperrors.Validation("немає даних для експорту")

// Record is the shape the per-user dialect is built from. Slots[0] is slot 1.
type Record struct {
	FullName string
	Slots    [SlotCount]*string
}

// EncodeOptions controls Encode.
type EncodeOptions struct {
	Banner           string
	Encoding         Encoding
	IncludeEmptyRows bool
}

// Encode renders rec in the per-user dialect.
func Encode(rec Record, opts EncodeOptions) ([]byte, error) {
	var b strings.Builder
	b.WriteString(opts.Banner)
	b.WriteByte('\n')
	b.WriteString(instructorPrefix)
	b.WriteString(rec.FullName)
	b.WriteByte('\n')
	b.WriteString(columnHeader)
	b.WriteByte('\n')

	rows := 0
	for i, slot := range rec.Slots {
		var text string
		if slot != nil {
			text = CleanText(*slot)
		}
		switch {
		case text != "":
			b.WriteString(strconv.Itoa(i + 1))
			b.WriteString(`);`)
			b.WriteString(quote(text))
		case opts.IncludeEmptyRows:
			b.WriteString(strconv.Itoa(i + 1))
			b.WriteString(`);`)
		default:
			continue
		}
		b.WriteByte('\n')
		rows++
	}
	if rows == 0 {
		return nil, ErrNothingToExport
	}

	enc := opts.Encoding
	if enc == "" {
		enc = EncodingUTF8BOM
	}
	return enc.apply(b.String()), nil
}

var punctuationReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`, "„", `"`, "«", `"`, "»", `"`, "‟", `"`,
	"‘", "'", "’", "'", "‚", "'", "‹", "'", "›", "'", "‛", "'",
	"–", "-", "—", "-", "‒", "-", "―", "-", "‐", "-", "‑", "-",
	"…", "...",
)

// CleanText normalises a slot value for export: NFC form, ASCII quotes and
// dashes, whitespace runs (including line breaks) folded into single spaces.
func CleanText(s string) string {
	s = punctuationReplacer.Replace(norm.NFC.String(s))
	return strings.Join(strings.Fields(s), " ")
}

// quote wraps s in double quotes, doubling the quotes inside.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
