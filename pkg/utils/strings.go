package utils

import (
	"strings"
	"unicode"
)

const byteOrderMark = '\uFEFF'

// IsInteger reports whether s is an optional '-' followed by one or more
// ASCII digits and nothing else.
func IsInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if len(s) == 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// isBlank matches Unicode whitespace and the byte order mark, which editors
// leave at the start of some UTF-8 files.
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == byteOrderMark
}

// SingleToken trims line and returns it only if it holds exactly one
// whitespace separated field.
func SingleToken(line string) (string, bool) {
	token := strings.TrimFunc(line, isBlank)
	if token == "" {
		return "", false
	}

	if len(strings.FieldsFunc(token, isBlank)) != 1 {
		return "", false
	}

	return token, true
}
