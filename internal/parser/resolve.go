package parser

import (
	"strings"

	"fretwise/internal/theory"
)

// Resolve dispatches a free-text chord symbol to the right parser. Roman
// numerals are built from the letters I and V (optionally behind a b/# mark),
// which never collide with literal note letters, so the first significant
// character decides.
func Resolve(text, keyTonic string, mode theory.Mode) (theory.Chord, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return theory.Chord{}, errf(CodeEmptyInput, "empty chord symbol")
	}
	if isRomanStart(s) {
		return ParseRoman(s, keyTonic, mode)
	}
	return ParseLiteral(s)
}

func isRomanStart(s string) bool {
	i := 0
	if s[0] == '#' {
		i = 1
	} else if s[0] == 'b' && len(s) > 1 && isRomanLetter(s[1]) {
		i = 1
	}
	return i < len(s) && isRomanLetter(s[i])
}

func isRomanLetter(c byte) bool {
	return c == 'i' || c == 'I' || c == 'v' || c == 'V'
}
