package fretboard

import (
	"fmt"

	"fretwise/internal/theory"
)

// Muted marks a string that is not played in a voicing.
const Muted = -1

// Shape is a fingering template, low string first. Open shapes encode one
// exact chord; movable shapes are anchored to BaseRoot and transposed along
// the neck before use.
type Shape struct {
	Name     string
	Quality  theory.Quality
	BaseRoot theory.PitchClass
	Frets    [NumStrings]int
	Movable  bool
}

// OpenShapes are the fixed open-position voicings.
var OpenShapes = []Shape{
	{Name: "C open", Quality: theory.QualMaj, BaseRoot: 0, Frets: [NumStrings]int{Muted, 3, 2, 0, 1, 0}},
	{Name: "A open", Quality: theory.QualMaj, BaseRoot: 9, Frets: [NumStrings]int{Muted, 0, 2, 2, 2, 0}},
	{Name: "G open", Quality: theory.QualMaj, BaseRoot: 7, Frets: [NumStrings]int{3, 2, 0, 0, 0, 3}},
	{Name: "E open", Quality: theory.QualMaj, BaseRoot: 4, Frets: [NumStrings]int{0, 2, 2, 1, 0, 0}},
	{Name: "D open", Quality: theory.QualMaj, BaseRoot: 2, Frets: [NumStrings]int{Muted, Muted, 0, 2, 3, 2}},
	{Name: "Am open", Quality: theory.QualMin, BaseRoot: 9, Frets: [NumStrings]int{Muted, 0, 2, 2, 1, 0}},
	{Name: "Em open", Quality: theory.QualMin, BaseRoot: 4, Frets: [NumStrings]int{0, 2, 2, 0, 0, 0}},
	{Name: "Dm open", Quality: theory.QualMin, BaseRoot: 2, Frets: [NumStrings]int{Muted, Muted, 0, 2, 3, 1}},
	{Name: "E7 open", Quality: theory.QualDom7, BaseRoot: 4, Frets: [NumStrings]int{0, 2, 0, 1, 0, 0}},
	{Name: "A7 open", Quality: theory.QualDom7, BaseRoot: 9, Frets: [NumStrings]int{Muted, 0, 2, 0, 2, 0}},
	{Name: "D7 open", Quality: theory.QualDom7, BaseRoot: 2, Frets: [NumStrings]int{Muted, Muted, 0, 2, 1, 2}},
}

// MovableShapes are barre-form templates transposed to any root.
var MovableShapes = []Shape{
	{Name: "E form", Quality: theory.QualMaj, BaseRoot: 4, Frets: [NumStrings]int{0, 2, 2, 1, 0, 0}, Movable: true},
	{Name: "A form", Quality: theory.QualMaj, BaseRoot: 9, Frets: [NumStrings]int{Muted, 0, 2, 2, 2, 0}, Movable: true},
	{Name: "Em form", Quality: theory.QualMin, BaseRoot: 4, Frets: [NumStrings]int{0, 2, 2, 0, 0, 0}, Movable: true},
	{Name: "Am form", Quality: theory.QualMin, BaseRoot: 9, Frets: [NumStrings]int{Muted, 0, 2, 2, 1, 0}, Movable: true},
	{Name: "E7 form", Quality: theory.QualDom7, BaseRoot: 4, Frets: [NumStrings]int{0, 2, 0, 1, 0, 0}, Movable: true},
	{Name: "A7 form", Quality: theory.QualDom7, BaseRoot: 9, Frets: [NumStrings]int{Muted, 0, 2, 0, 2, 0}, Movable: true},
}

// ResolveFrets maps the shape onto a target root. Open shapes come back
// unchanged; movable shapes shift every played string by the pitch-class
// distance from the base root. Frets are not bound-checked against the
// neck — callers verify fit.
func (s Shape) ResolveFrets(target theory.PitchClass) [NumStrings]int {
	if !s.Movable {
		return s.Frets
	}
	offset := int((target - s.BaseRoot).Norm())
	out := s.Frets
	for i, f := range out {
		if f == Muted {
			continue
		}
		out[i] = f + offset
	}
	return out
}

// Label names the voicing for display.
func (s Shape) Label(target theory.PitchClass, preferFlats bool) string {
	if !s.Movable {
		return s.Name
	}
	offset := int((target - s.BaseRoot).Norm())
	return fmt.Sprintf("%s %s (fret %d)", target.Name(preferFlats), s.Name, offset)
}

// ShapesFor returns the voicings usable for a chord: open shapes that encode
// exactly that chord plus every movable shape of the same quality. An empty
// result means no catalog shape fits; that is not an error.
func ShapesFor(root theory.PitchClass, quality theory.Quality) []Shape {
	var out []Shape
	for _, s := range OpenShapes {
		if s.BaseRoot == root.Norm() && s.Quality == quality {
			out = append(out, s)
		}
	}
	for _, s := range MovableShapes {
		if s.Quality == quality {
			out = append(out, s)
		}
	}
	return out
}
