package transcoder

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	apperrors "github.com/seojacky/account-teacher/pkg/errors"
)

const testBanner = "© Кабінет викладача. Всі права захищені."

func str(s string) *string { return &s }

func recordWith(name string, slots map[int]string) Record {
	rec := Record{FullName: name}
	for n, v := range slots {
		rec.Slots[n-1] = str(v)
	}
	return rec
}

// ── Encode ──

func TestEncode_UTF8BOM(t *testing.T) {
	rec := recordWith("Іваненко Петро", map[int]string{1: "наявність п'яти публікацій"})

	out, err := Encode(rec, EncodeOptions{Banner: testBanner, Encoding: EncodingUTF8BOM})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))
	lines := strings.Split(string(out[3:]), "\n")
	assert.Equal(t, testBanner, lines[0])
	assert.Equal(t, "Instructor: Іваненко Петро", lines[1])
	assert.Equal(t, "Type;Information", lines[2])
	assert.Contains(t, lines, `1);"наявність п'яти публікацій"`)
}

func TestEncode_DefaultEncodingIsBOM(t *testing.T) {
	out, err := Encode(recordWith("A", map[int]string{2: "x"}), EncodeOptions{Banner: testBanner})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, utf8BOM))
}

func TestEncode_RowSelection(t *testing.T) {
	rec := recordWith("A", map[int]string{3: "three", 5: "   "})

	out, err := Encode(rec, EncodeOptions{Banner: testBanner, Encoding: EncodingUTF8})
	require.NoError(t, err)
	body := string(out)
	assert.Contains(t, body, "\n3);\"three\"\n")
	assert.NotContains(t, body, "5);")
	assert.NotContains(t, body, "1);")

	out, err = Encode(rec, EncodeOptions{Banner: testBanner, Encoding: EncodingUTF8, IncludeEmptyRows: true})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	require.Len(t, lines, 3+SlotCount)
	assert.Equal(t, "1);", lines[3])
	assert.Equal(t, `3);"three"`, lines[5])
	assert.Equal(t, "5);", lines[7])
	assert.Equal(t, "20);", lines[22])
}

func TestEncode_NothingToExport(t *testing.T) {
	_, err := Encode(recordWith("A", map[int]string{4: " \n "}), EncodeOptions{Banner: testBanner})

	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestEncode_EscapesAndNormalises(t *testing.T) {
	rec := recordWith("A", map[int]string{
		1: `He said "hi"; then left`,
		2: "line one\n\tline   two",
		3: "«лапки» – “smart” — ‘single’",
	})

	out, err := Encode(rec, EncodeOptions{Banner: testBanner, Encoding: EncodingUTF8})
	require.NoError(t, err)
	body := string(out)
	assert.Contains(t, body, `1);"He said ""hi""; then left"`)
	assert.Contains(t, body, `2);"line one line two"`)
	assert.Contains(t, body, `3);"""лапки"" - ""smart"" - 'single'"`)
}

func TestEncode_Windows1251(t *testing.T) {
	rec := recordWith("Ґалина Їжак", map[int]string{1: "Звіт № 5 ✓"})

	out, err := Encode(rec, EncodeOptions{Banner: "banner", Encoding: EncodingWindows1251})
	require.NoError(t, err)

	decoded, err := charmap.Windows1251.NewDecoder().Bytes(out)
	require.NoError(t, err)
	body := string(decoded)
	assert.Contains(t, body, "Instructor: Ґалина Їжак")
	assert.Contains(t, body, `1);"Звіт № 5 "`, "unmappable rune is dropped")
}

// ── Decode ──

func TestDecode_HeaderOnly(t *testing.T) {
	data := []byte(testBanner + "\nInstructor: A\nType;Information\n")

	_, err := Decode(data)
	assert.ErrorIs(t, err, ErrNoParseableRows)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = Decode(nil)
	assert.ErrorIs(t, err, ErrNoParseableRows)
}

func TestDecode_SlotBounds(t *testing.T) {
	data := []byte("b\ni\nh\n21);foo\n0);bar\n7);\"keep\"\n")

	slots, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{7: "keep"}, slots)
}

func TestDecode_OnlyOutOfRangeRows(t *testing.T) {
	_, err := Decode([]byte("b\ni\nh\n21);foo\n0);bar\n"))
	assert.ErrorIs(t, err, ErrNoParseableRows)
}

func TestDecode_PositionalSkip(t *testing.T) {
	// the first three lines are dropped even if they look like data
	data := []byte("1);\"a\"\n2);\"b\"\n3);\"c\"\n4);\"d\"\n")

	slots, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{4: "d"}, slots)
}

func TestDecode_LineEndingsAndMalformed(t *testing.T) {
	data := []byte("\xEF\xBB\xBFb\r\ni\rh\r\n1);\"one\"\r\n\r\nnot a row\r\n2);plain text \r\n12) ;\"bad\"\n2);\"dup\"\n5);\n")

	slots, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "one", 2: "dup", 5: ""}, slots)
}

func TestDecode_Windows1251Input(t *testing.T) {
	text := "b\ni\nh\n1);\"наявність п'яти публікацій\"\n"
	data, err := charmap.Windows1251.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)

	slots, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "наявність п'яти публікацій", slots[1])
}

func TestRoundTrip(t *testing.T) {
	cases := []map[int]string{
		{1: `He said "hi"`},
		{2: "a;b;c", 19: `"quoted"; and ;semi`},
		{1: "x", 5: "y", 10: `""`, 20: "наявність п'яти публікацій"},
		{13: `trailing quote"`},
	}

	for _, enc := range []Encoding{EncodingUTF8BOM, EncodingUTF8, EncodingWindows1251} {
		for _, slots := range cases {
			out, err := Encode(recordWith("Тест", slots), EncodeOptions{Banner: testBanner, Encoding: enc})
			require.NoError(t, err)

			got, err := Decode(out)
			require.NoError(t, err, "encoding %s", enc)
			assert.Equal(t, slots, got, "encoding %s", enc)
		}
	}
}

func TestRoundTrip_IncludeEmptyRows(t *testing.T) {
	out, err := Encode(recordWith("A", map[int]string{4: "four"}),
		EncodeOptions{Banner: testBanner, Encoding: EncodingUTF8, IncludeEmptyRows: true})
	require.NoError(t, err)

	got, err := Decode(out)
	require.NoError(t, err)
	assert.Len(t, got, SlotCount)
	assert.Equal(t, "four", got[4])
	assert.Equal(t, "", got[1])
}

// ── Encoding / filename ──

func TestParseEncoding(t *testing.T) {
	enc, err := ParseEncoding("", EncodingUTF8BOM)
	require.NoError(t, err)
	assert.Equal(t, EncodingUTF8BOM, enc)

	enc, err = ParseEncoding("windows1251", EncodingUTF8BOM)
	require.NoError(t, err)
	assert.Equal(t, EncodingWindows1251, enc)

	_, err = ParseEncoding("latin1", EncodingUTF8)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTransliterate(t *testing.T) {
	cases := map[string]string{
		"Іваненко Петро Миколайович": "Ivanenko_Petro_Mykolaiovych",
		"Щербак Юлія":                "Shcherbak_Yuliia",
		"Їжакевич Євген":             "Yizhakevych_Yevhen",
		"Ґудзь О'Коннор":             "Gudz_OKonnor",
		"  Smith,  John  ":           "Smith_John",
		"Кравчук-Лисенко Ольга":      "Kravchuk-Lysenko_Olha",
	}
	for in, want := range cases {
		assert.Equal(t, want, Transliterate(in), in)
	}
}

func TestFilename(t *testing.T) {
	day := time.Date(2026, 3, 9, 17, 4, 0, 0, time.UTC)
	assert.Equal(t, "achievements-Ivanenko_Petro_2026-03-09.csv", Filename("Іваненко Петро", day))
}
