package domain

import (
	"strings"
	"unicode"
)

const filenamePrefixLen = 30

// SanitizeFilename derives a download filename stem from free text: the first
// 30 characters, with everything except ASCII letters, digits and whitespace
// removed and whitespace runs collapsed to "_". Returns fallback when nothing
// is left.
func SanitizeFilename(s, fallback string) string {
	runes := []rune(s)
	if len(runes) > filenamePrefixLen {
		runes = runes[:filenamePrefixLen]
	}

	var b strings.Builder
	inSpace := false
	for _, r := range runes {
		switch {
		case unicode.IsSpace(r):
			if !inSpace {
				b.WriteByte('_')
			}
			inSpace = true
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			inSpace = false
		}
	}

	name := strings.TrimSpace(b.String())
	if name == "" {
		return fallback
	}
	return name
}
