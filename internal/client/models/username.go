package models

import (
	"strings"
	"unicode"
)

var umlauts = map[rune]string{
	'ä': "ae",
	'ö': "oe",
	'ü': "ue",
	'ß': "ss",
}

// ToUsername suggests a username for a display name:
// "Jürgen Meier" becomes "juergenmeier".
func ToUsername(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for _, r := range strings.ToLower(name) {
		if unicode.IsSpace(r) {
			continue
		}
		if s, ok := umlauts[r]; ok {
			b.WriteString(s)
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}
