package transcoder

import (
	"regexp"
	"strings"
	"time"
)

var translitTable = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g", 'д': "d", 'е': "e", 'є': "ie",
	'ж': "zh", 'з': "z", 'и': "y", 'і': "i", 'ї': "i", 'й': "i", 'к': "k", 'л': "l",
	'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch", 'ь': "", 'ю': "iu",
	'я': "ia",

	'А': "A", 'Б': "B", 'В': "V", 'Г': "H", 'Ґ': "G", 'Д': "D", 'Е': "E", 'Є': "Ye",
	'Ж': "Zh", 'З': "Z", 'И': "Y", 'І': "I", 'Ї': "Yi", 'Й': "Y", 'К': "K", 'Л': "L",
	'М': "M", 'Н': "N", 'О': "O", 'П': "P", 'Р': "R", 'С': "S", 'Т': "T", 'У': "U",
	'Ф': "F", 'Х': "Kh", 'Ц': "Ts", 'Ч': "Ch", 'Ш': "Sh", 'Щ': "Shch", 'Ь': "", 'Ю': "Yu",
	'Я': "Ya",

	'\'': "", '’': "", 'ʼ': "", '"': "", '`': "",
}

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Transliterate renders a Ukrainian name in Latin letters suitable for a file name.
func Transliterate(name string) string {
	var b strings.Builder
	for _, r := range name {
		if s, ok := translitTable[r]; ok {
			b.WriteString(s)
			continue
		}
		b.WriteRune(r)
	}
	out := nonWordRe.ReplaceAllString(b.String(), "")
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(out), "_")
}

// Filename is the download name of an exported record taken on day.
func Filename(fullName string, day time.Time) string {
	return "achievements-" + Transliterate(fullName) + "_" + day.Format("2006-01-02") + ".csv"
}
