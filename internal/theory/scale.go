package theory

import "fmt"

// Mode selects between the two supported scale families.
type Mode uint8

const (
	// ModeMajor is the major scale family.
	ModeMajor Mode = iota
	// ModeMinor is the natural minor scale family.
	ModeMinor
)

func (m Mode) String() string {
	switch m {
	case ModeMajor:
		return "major"
	case ModeMinor:
		return "minor"
	}
	return "unknown"
}

// ParseMode resolves a "major"/"minor" tag.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "major":
		return ModeMajor, nil
	case "minor":
		return ModeMinor, nil
	}
	return 0, fmt.Errorf("unknown mode %q (must be major or minor)", s)
}

var (
	majorScaleSteps = [7]PitchClass{0, 2, 4, 5, 7, 9, 11}
	minorScaleSteps = [7]PitchClass{0, 2, 3, 5, 7, 8, 10}

	majorPentSteps = [5]PitchClass{0, 2, 4, 7, 9}
	minorPentSteps = [5]PitchClass{0, 3, 5, 7, 10}
)

// Scale returns the seven pitch classes of the major or natural minor scale
// rooted at root, in ascending degree order.
func Scale(root PitchClass, mode Mode) []PitchClass {
	steps := majorScaleSteps
	if mode == ModeMinor {
		steps = minorScaleSteps
	}
	out := make([]PitchClass, len(steps))
	for i, s := range steps {
		out[i] = (root + s).Norm()
	}
	return out
}

// Pentatonic returns the five pitch classes of the major or minor pentatonic
// scale rooted at root, in ascending degree order.
func Pentatonic(root PitchClass, mode Mode) []PitchClass {
	steps := majorPentSteps
	if mode == ModeMinor {
		steps = minorPentSteps
	}
	out := make([]PitchClass, len(steps))
	for i, s := range steps {
		out[i] = (root + s).Norm()
	}
	return out
}
