package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"fretwise/internal/theory"
)

// romanToken is one parsed side of a Roman-numeral chord symbol.
type romanToken struct {
	accidental int // -1 flat, 0 natural, +1 sharp
	degree     int // 1..7
	lower      bool
	suffix     string
}

// romanDegrees is matched case-insensitively, longest spelling first, so
// "vii" is not consumed as "v" plus junk.
var romanDegrees = []struct {
	numeral string
	degree  int
}{
	{"vii", 7},
	{"vi", 6},
	{"iv", 4},
	{"v", 5},
	{"iii", 3},
	{"ii", 2},
	{"i", 1},
}

func parseRomanToken(s string) (romanToken, error) {
	tok := romanToken{}
	rest := s
	switch {
	case strings.HasPrefix(rest, "b"):
		tok.accidental = -1
		rest = rest[1:]
	case strings.HasPrefix(rest, "#"):
		tok.accidental = 1
		rest = rest[1:]
	}

	lowered := strings.ToLower(rest)
	matched := ""
	for _, rd := range romanDegrees {
		if strings.HasPrefix(lowered, rd.numeral) {
			matched = rest[:len(rd.numeral)]
			tok.degree = rd.degree
			break
		}
	}
	if matched == "" {
		return tok, errf(CodeInvalidRomanNumeral, "invalid roman numeral %q", s)
	}
	switch matched {
	case strings.ToLower(matched):
		tok.lower = true
	case strings.ToUpper(matched):
		tok.lower = false
	default:
		return tok, errf(CodeInvalidRomanNumeral, "mixed-case roman numeral %q", s)
	}
	tok.suffix = rest[len(matched):]
	return tok, nil
}

// tokenQuality derives the chord quality from the numeral's suffix and case.
// Recognized suffixes are deliberately few; anything else (including "7")
// is rejected rather than guessed.
func tokenQuality(tok romanToken) (theory.Quality, error) {
	if strings.Contains(tok.suffix, "ø") {
		return theory.QualM7b5, nil
	}
	switch tok.suffix {
	case "°", "o", "dim":
		return theory.QualDim, nil
	case "+", "aug":
		return theory.QualAug, nil
	case "":
		if tok.lower {
			return theory.QualMin, nil
		}
		return theory.QualMaj, nil
	}
	return 0, errf(CodeInvalidRomanNumeral, "unsupported quality marker %q", tok.suffix)
}

// degreePitch resolves a scale degree plus accidental against a 7-note scale.
func degreePitch(scale []theory.PitchClass, tok romanToken) theory.PitchClass {
	return (scale[tok.degree-1] + theory.PitchClass(tok.accidental)).Norm()
}

// ParseRoman resolves a Roman-numeral chord symbol relative to a key, e.g.
// "ii", "bVII", "viiø" or the secondary forms "V/ii" and "VII°/V". Case
// encodes the implied triad quality; at most one "/" is allowed.
func ParseRoman(text, keyTonic string, mode theory.Mode) (theory.Chord, error) {
	s := norm.NFC.String(strings.TrimSpace(text))
	if s == "" {
		return theory.Chord{}, errf(CodeEmptyInput, "empty chord symbol")
	}

	parts := strings.Split(s, "/")
	if len(parts) > 2 {
		return theory.Chord{}, errf(CodeTooManySecondaryDominants, "too many secondary dominants in %q", text)
	}

	main, err := parseRomanToken(parts[0])
	if err != nil {
		return theory.Chord{}, err
	}
	quality, err := tokenQuality(main)
	if err != nil {
		return theory.Chord{}, err
	}

	keyPc, err := theory.ParsePitch(keyTonic)
	if err != nil {
		return theory.Chord{}, errf(CodeInvalidKey, "invalid key tonic %q", keyTonic)
	}
	scale := theory.Scale(keyPc, mode)

	if len(parts) == 1 {
		return theory.NewChord(degreePitch(scale, main), quality), nil
	}

	target, err := parseRomanToken(parts[1])
	if err != nil {
		return theory.Chord{}, errf(CodeInvalidSecondaryTarget, "invalid secondary target %q", parts[1])
	}
	targetPc := degreePitch(scale, target)

	// Only V/x (a fifth above the target) and VII/x (leading tone of the
	// target) are supported; everything else is rejected by design.
	if main.accidental != 0 {
		return theory.Chord{}, errf(CodeUnsupportedSecondaryForm, "unsupported secondary form %q", parts[0])
	}
	switch main.degree {
	case 5:
		return theory.NewChord((targetPc + 7).Norm(), quality), nil
	case 7:
		return theory.NewChord((targetPc + 11).Norm(), quality), nil
	}
	return theory.Chord{}, errf(CodeUnsupportedSecondaryForm, "unsupported secondary form %q", parts[0])
}
