package theory

import (
	"fmt"
	"strings"
)

// PitchClass is a note identity under octave equivalence, 0..11 with 0 = C.
type PitchClass int

// naturalBase maps a note letter to its natural pitch class.
var naturalBase = map[byte]PitchClass{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Sharp- and flat-preferred spellings. The tables agree on the seven
// naturals and differ only on the five accidental slots.
var (
	sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// ParsePitch resolves a note name (letter A-G, case-insensitive, optionally
// followed by a single '#' or 'b') to its pitch class.
func ParsePitch(name string) (PitchClass, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return 0, fmt.Errorf("invalid note %q", name)
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	base, ok := naturalBase[letter]
	if !ok {
		return 0, fmt.Errorf("invalid note %q", name)
	}
	pc := base
	switch rest := s[1:]; rest {
	case "":
	case "#":
		pc++
	case "b":
		pc--
	default:
		return 0, fmt.Errorf("invalid note %q", name)
	}
	return pc.Norm(), nil
}

// Norm reduces the pitch class into [0,11].
func (pc PitchClass) Norm() PitchClass {
	return ((pc % 12) + 12) % 12
}

// Name spells the pitch class, preferring flats when asked.
func (pc PitchClass) Name(preferFlats bool) string {
	n := pc.Norm()
	if preferFlats {
		return flatNames[n]
	}
	return sharpNames[n]
}

// PreferFlatsForKey reports whether note spellings for the given key tonic
// should use flats. This is a literal text check for a flat marker, not a
// key-signature derivation; enharmonic key spellings may be misclassified.
func PreferFlatsForKey(keyTonic string) bool {
	return strings.Contains(keyTonic, "b")
}
