package transcoder

import (
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/seojacky/account-teacher/pkg/errors"
)

// ErrNoParseableRows is returned when an import holds no slot line.
var ErrNoParseableRows = apperrors.Validation("у файлі немає рядків з досягненнями")

var (
	lineBreakRe = regexp.MustCompile(`\r\n|\r|\n`)
	slotLineRe  = regexp.MustCompile(`^(\d+)\);(.*)$`)
)

// Decode parses a per-user file into slot number -> value.
//
// The first three lines are skipped by position whatever they contain. Lines not
// shaped like `N);value` and slot numbers outside 1..SlotCount are ignored. When a
// slot repeats, the last line wins. Values are trimmed; an empty value is kept so
// the caller can clear the slot.
func Decode(data []byte) (map[int]string, error) {
	lines := lineBreakRe.Split(toUTF8(data), -1)
	if len(lines) <= preambleLines {
		return nil, ErrNoParseableRows
	}

	slots := make(map[int]string)
	for _, line := range lines[preambleLines:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := slotLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > SlotCount {
			continue
		}
		slots[n] = strings.TrimSpace(unquote(m[2]))
	}

	if len(slots) == 0 {
		return nil, ErrNoParseableRows
	}
	return slots, nil
}

// unquote strips one pair of wrapping quotes and un-doubles the inner ones.
// Unwrapped values are returned untouched.
func unquote(v string) string {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return strings.ReplaceAll(v[1:len(v)-1], `""`, `"`)
	}
	return v
}
