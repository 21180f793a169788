package fretboard

import (
	"fretwise/internal/theory"
)

// ShapeID names one of the five CAGED shapes.
type ShapeID uint8

const (
	// ShapeC is the C shape.
	ShapeC ShapeID = iota
	// ShapeA is the A shape.
	ShapeA
	// ShapeG is the G shape.
	ShapeG
	// ShapeE is the E shape.
	ShapeE
	// ShapeD is the D shape.
	ShapeD
)

func (id ShapeID) String() string {
	switch id {
	case ShapeC:
		return "C"
	case ShapeA:
		return "A"
	case ShapeG:
		return "G"
	case ShapeE:
		return "E"
	case ShapeD:
		return "D"
	}
	return "?"
}

// Region is one CAGED shape window on the neck, inclusive on both ends.
// Regions of a key may overlap; a key may yield fewer than five when the
// neck is too short to fit a shifted shape.
type Region struct {
	ID        ShapeID
	Label     string
	FretStart int
	FretEnd   int
}

// regionTemplate fixes a shape's window in the reference key of its set,
// as an anchor fret plus start/end offsets.
type regionTemplate struct {
	id       ShapeID
	anchor   int
	startOff int
	endOff   int
}

// TemplateSet holds the five shape windows in one canonical reference key:
// C major for the major set, A minor for the minor set.
type TemplateSet struct {
	Tonic     theory.PitchClass
	templates []regionTemplate
}

var majorTemplates = TemplateSet{
	Tonic: 0, // C major reference
	templates: []regionTemplate{
		{ShapeC, 0, 0, 3},
		{ShapeA, 2, 0, 3},
		{ShapeG, 4, 0, 4},
		{ShapeE, 7, 0, 3},
		{ShapeD, 9, 0, 4},
	},
}

var minorTemplates = TemplateSet{
	Tonic: 9, // A minor reference
	templates: []regionTemplate{
		{ShapeA, 0, 0, 3},
		{ShapeG, 2, 0, 4},
		{ShapeE, 5, 0, 3},
		{ShapeD, 7, 0, 4},
		{ShapeC, 10, 0, 3},
	},
}

// TemplatesFor selects the reference template set for a mode.
func TemplatesFor(mode theory.Mode) TemplateSet {
	if mode == theory.ModeMinor {
		return minorTemplates
	}
	return majorTemplates
}

// RegionsForKey computes the CAGED regions of a key on a neck spanning
// [fretMin, fretMax].
func RegionsForKey(tonic theory.PitchClass, mode theory.Mode, fretMin, fretMax int) []Region {
	return RegionsFromTemplates(TemplatesFor(mode), tonic, fretMin, fretMax)
}

// RegionsFromTemplates shifts every template window from the set's reference
// key to the requested tonic. The pitch-class shift is ambiguous between
// diff and diff-12 on a finite neck: both candidates are clamped and the one
// keeping the larger window wins; a shape with no valid candidate is dropped.
func RegionsFromTemplates(set TemplateSet, tonic theory.PitchClass, fretMin, fretMax int) []Region {
	diff := int((tonic - set.Tonic).Norm())
	out := make([]Region, 0, len(set.templates))
	for _, tpl := range set.templates {
		bestStart, bestEnd, bestLen := 0, 0, -1
		for _, shift := range [2]int{diff, diff - 12} {
			start := tpl.anchor + tpl.startOff + shift
			end := tpl.anchor + tpl.endOff + shift
			if start < fretMin {
				start = fretMin
			}
			if end > fretMax {
				end = fretMax
			}
			if start > end {
				continue
			}
			if length := end - start + 1; length > bestLen {
				bestStart, bestEnd, bestLen = start, end, length
			}
		}
		if bestLen < 0 {
			continue
		}
		out = append(out, Region{
			ID:        tpl.id,
			Label:     tpl.id.String() + " shape",
			FretStart: bestStart,
			FretEnd:   bestEnd,
		})
	}
	return out
}

// Window returns the region with the given id, if the key produced one.
func Window(regions []Region, id ShapeID) (Region, bool) {
	for _, r := range regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// RegionsAt returns the ids of every region whose window contains fret,
// supporting overlap display at shape boundaries.
func RegionsAt(regions []Region, fret int) []ShapeID {
	var out []ShapeID
	for _, r := range regions {
		if fret >= r.FretStart && fret <= r.FretEnd {
			out = append(out, r.ID)
		}
	}
	return out
}
