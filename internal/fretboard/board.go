package fretboard

import "fretwise/internal/theory"

// NumStrings is the number of strings on the supported instrument.
const NumStrings = 6

// Board is a fretted neck: per-string open pitch classes, low string first,
// and a fret count (frets 0..Frets inclusive, 0 being the open string).
type Board struct {
	Tuning [NumStrings]theory.PitchClass
	Frets  int
}

// StandardBoard is a 15-fret neck in standard tuning E A D G B E.
func StandardBoard() Board {
	return Board{
		Tuning: [NumStrings]theory.PitchClass{4, 9, 2, 7, 11, 4},
		Frets:  15,
	}
}

// NoteAt returns the pitch class sounding at a string/fret position.
func (b Board) NoteAt(str, fret int) theory.PitchClass {
	return (b.Tuning[str] + theory.PitchClass(fret)).Norm()
}

// Fits reports whether every played fret of a resolved voicing lies on the
// neck.
func (b Board) Fits(frets [NumStrings]int) bool {
	for _, f := range frets {
		if f == Muted {
			continue
		}
		if f < 0 || f > b.Frets {
			return false
		}
	}
	return true
}
