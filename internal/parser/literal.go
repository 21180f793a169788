package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"fretwise/internal/theory"
)

// suffixRule binds one quality suffix spelling to its chord quality.
type suffixRule struct {
	pattern string
	quality theory.Quality
}

// literalSuffixes is matched in order, first match wins. The order is
// load-bearing: "maj7" and "m7b5" must be tried before "m7", and "m7"
// before the bare minor "m", or the longer spellings are mis-read.
var literalSuffixes = []suffixRule{
	{"maj7", theory.QualMaj7},
	{"M7", theory.QualMaj7},
	{"m7b5", theory.QualM7b5},
	{"ø", theory.QualM7b5},
	{"min7", theory.QualMin7},
	{"m7", theory.QualMin7},
	{"-7", theory.QualMin7},
	{"7", theory.QualDom7},
	{"min", theory.QualMin},
	{"m", theory.QualMin},
	{"-", theory.QualMin},
	{"dim", theory.QualDim},
	{"°", theory.QualDim},
	{"o", theory.QualDim},
	{"aug", theory.QualAug},
	{"+", theory.QualAug},
	{"sus2", theory.QualSus2},
	{"sus4", theory.QualSus4},
	{"sus", theory.QualSus4},
	{"add9", theory.QualAdd9},
	{"6", theory.Qual6},
	{"9", theory.Qual9},
	{"", theory.QualMaj},
}

// ParseLiteral resolves a literal chord name such as "Cmaj7", "F#m7b5" or
// "Bb". The root is a letter A-G (either case) with an optional single
// accidental; the remaining suffix picks the quality from the ordered table.
func ParseLiteral(text string) (theory.Chord, error) {
	s := norm.NFC.String(strings.TrimSpace(text))
	if s == "" {
		return theory.Chord{}, errf(CodeInvalidRoot, "empty chord name")
	}

	rootLen := 1
	if c := s[0]; (c < 'A' || c > 'G') && (c < 'a' || c > 'g') {
		return theory.Chord{}, errf(CodeInvalidRoot, "chord %q must start with a note letter A-G", text)
	}
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		rootLen = 2
	}
	root, err := theory.ParsePitch(s[:rootLen])
	if err != nil {
		return theory.Chord{}, errf(CodeInvalidRoot, "invalid chord root in %q", text)
	}

	suffix := s[rootLen:]
	for _, rule := range literalSuffixes {
		if suffix == rule.pattern {
			return theory.NewChord(root, rule.quality), nil
		}
	}
	shown := suffix
	if shown == "" {
		shown = "(none)"
	}
	return theory.Chord{}, errf(CodeUnsupportedSuffix, "unsupported chord suffix %q", shown)
}
