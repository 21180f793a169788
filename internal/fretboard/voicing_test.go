package fretboard_test

import (
	"testing"

	"fretwise/internal/fretboard"
	"fretwise/internal/theory"
)

func findShape(t *testing.T, shapes []fretboard.Shape, name string) fretboard.Shape {
	t.Helper()
	for _, s := range shapes {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("shape %q not in catalog", name)
	return fretboard.Shape{}
}

func TestOpenShapeIgnoresTarget(t *testing.T) {
	open := findShape(t, fretboard.OpenShapes, "C open")
	for _, target := range []theory.PitchClass{0, 5, 11} {
		got := open.ResolveFrets(target)
		if got != open.Frets {
			t.Fatalf("open shape changed for target %d: %v", target, got)
		}
	}
}

func TestMovableShapeTransposition(t *testing.T) {
	eForm := findShape(t, fretboard.MovableShapes, "E form")

	// G major on the E form: offset (7-4) mod 12 = 3, the familiar barre at 3.
	got := eForm.ResolveFrets(7)
	want := [fretboard.NumStrings]int{3, 5, 5, 4, 3, 3}
	if got != want {
		t.Fatalf("E form at G = %v, want %v", got, want)
	}

	// Same pitch class as the base root: offset wraps to 0, frets unchanged.
	if got := eForm.ResolveFrets(4); got != eForm.Frets {
		t.Fatalf("E form at E = %v, want base frets %v", got, eForm.Frets)
	}
	if got := eForm.ResolveFrets(4 + 12); got != eForm.Frets {
		t.Fatalf("E form at E+12 = %v, want base frets %v", got, eForm.Frets)
	}
}

func TestMovableShapeKeepsMutedStrings(t *testing.T) {
	aForm := findShape(t, fretboard.MovableShapes, "A form")
	got := aForm.ResolveFrets(0) // C major barre
	want := [fretboard.NumStrings]int{fretboard.Muted, 3, 5, 5, 5, 3}
	if got != want {
		t.Fatalf("A form at C = %v, want %v", got, want)
	}
}

func TestVoicingLabel(t *testing.T) {
	open := findShape(t, fretboard.OpenShapes, "Am open")
	if got := open.Label(2, false); got != "Am open" {
		t.Fatalf("open label = %q", got)
	}
	eForm := findShape(t, fretboard.MovableShapes, "E form")
	if got := eForm.Label(7, false); got != "G E form (fret 3)" {
		t.Fatalf("movable label = %q", got)
	}
	if got := eForm.Label(8, true); got != "Ab E form (fret 4)" {
		t.Fatalf("movable flat label = %q", got)
	}
}

func TestShapesFor(t *testing.T) {
	// C major: the open C shape plus both movable major forms.
	shapes := fretboard.ShapesFor(0, theory.QualMaj)
	if len(shapes) != 3 {
		t.Fatalf("ShapesFor(C maj) returned %d shapes", len(shapes))
	}
	if !shapes[0].Movable && shapes[0].Name != "C open" {
		t.Fatalf("expected the open C shape first, got %q", shapes[0].Name)
	}

	// F# major has no open shape; only movable forms apply.
	for _, s := range fretboard.ShapesFor(6, theory.QualMaj) {
		if !s.Movable {
			t.Fatalf("F# major should only get movable shapes, got %q", s.Name)
		}
	}

	// No catalog shape covers sus2: absence, not an error.
	if got := fretboard.ShapesFor(0, theory.QualSus2); len(got) != 0 {
		t.Fatalf("ShapesFor(C sus2) = %v, want none", got)
	}
}

func TestShapeTonesMatchChord(t *testing.T) {
	board := fretboard.StandardBoard()
	cases := []struct {
		shape string
		root  theory.PitchClass
		qual  theory.Quality
	}{
		{"C open", 0, theory.QualMaj},
		{"Am open", 9, theory.QualMin},
		{"E7 open", 4, theory.QualDom7},
		{"E form", 7, theory.QualMaj},
		{"Am form", 0, theory.QualMin},
	}
	for _, c := range cases {
		var shape fretboard.Shape
		if s, ok := lookup(fretboard.OpenShapes, c.shape); ok {
			shape = s
		} else if s, ok := lookup(fretboard.MovableShapes, c.shape); ok {
			shape = s
		} else {
			t.Fatalf("shape %q missing", c.shape)
		}
		chord := theory.NewChord(c.root, c.qual)
		frets := shape.ResolveFrets(c.root)
		for str, f := range frets {
			if f == fretboard.Muted {
				continue
			}
			if pc := board.NoteAt(str, f); !chord.HasTone(pc) {
				t.Fatalf("%s at %s: string %d fret %d sounds %d, not a chord tone",
					c.shape, chord.Name(false), str, f, pc)
			}
		}
	}
}

func lookup(shapes []fretboard.Shape, name string) (fretboard.Shape, bool) {
	for _, s := range shapes {
		if s.Name == name {
			return s, true
		}
	}
	return fretboard.Shape{}, false
}

func TestBoardNoteAt(t *testing.T) {
	b := fretboard.StandardBoard()
	if b.NoteAt(0, 0) != 4 {
		t.Fatalf("open low E = %d", b.NoteAt(0, 0))
	}
	if b.NoteAt(0, 5) != 9 {
		t.Fatalf("low E fret 5 = %d", b.NoteAt(0, 5))
	}
	if b.NoteAt(5, 12) != 4 {
		t.Fatalf("high E fret 12 = %d", b.NoteAt(5, 12))
	}
}

func TestBoardFits(t *testing.T) {
	b := fretboard.StandardBoard()
	eForm := findShape(t, fretboard.MovableShapes, "E form")
	if !b.Fits(eForm.ResolveFrets(7)) {
		t.Fatalf("G barre should fit a 15-fret neck")
	}
	small := fretboard.Board{Tuning: b.Tuning, Frets: 5}
	if small.Fits(eForm.ResolveFrets(7)) {
		t.Fatalf("G barre must not fit a 5-fret neck")
	}
}
