package theory_test

import (
	"testing"

	"fretwise/internal/theory"
)

func TestParsePitch(t *testing.T) {
	cases := []struct {
		in   string
		want theory.PitchClass
	}{
		{"C", 0}, {"C#", 1}, {"Db", 1}, {"D", 2},
		{"E", 4}, {"Fb", 4}, {"F", 5}, {"F#", 6},
		{"G", 7}, {"Ab", 8}, {"A", 9}, {"Bb", 10}, {"B", 11},
		{"Cb", 11}, {"B#", 0},
	}
	for _, c := range cases {
		got, err := theory.ParsePitch(c.in)
		if err != nil {
			t.Fatalf("ParsePitch(%q): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParsePitch(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParsePitchCaseAndWhitespace(t *testing.T) {
	for _, in := range []string{"f#", " F#", "F# ", "  f#  "} {
		got, err := theory.ParsePitch(in)
		if err != nil {
			t.Fatalf("ParsePitch(%q): unexpected error: %v", in, err)
		}
		if got != 6 {
			t.Fatalf("ParsePitch(%q) = %d, want 6", in, got)
		}
	}
}

func TestParsePitchInvalid(t *testing.T) {
	for _, in := range []string{"", "H", "Hz", "C##", "Cx", "#C", "1"} {
		if _, err := theory.ParsePitch(in); err == nil {
			t.Fatalf("ParsePitch(%q) should fail", in)
		}
	}
}

func TestNameRoundTrip(t *testing.T) {
	for pc := theory.PitchClass(0); pc < 12; pc++ {
		for _, flats := range []bool{false, true} {
			got, err := theory.ParsePitch(pc.Name(flats))
			if err != nil {
				t.Fatalf("ParsePitch(Name(%d, %v)): %v", pc, flats, err)
			}
			if got != pc {
				t.Fatalf("round trip %d (flats=%v) = %d", pc, flats, got)
			}
		}
	}
}

func TestNameTablesAgreeOnNaturals(t *testing.T) {
	for _, pc := range []theory.PitchClass{0, 2, 4, 5, 7, 9, 11} {
		if pc.Name(false) != pc.Name(true) {
			t.Fatalf("natural %d spelled %q vs %q", pc, pc.Name(false), pc.Name(true))
		}
	}
	for _, pc := range []theory.PitchClass{1, 3, 6, 8, 10} {
		if pc.Name(false) == pc.Name(true) {
			t.Fatalf("accidental %d should differ between tables", pc)
		}
	}
}

func TestPreferFlatsForKey(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"C", false}, {"F#", false}, {"Bb", true}, {"Eb", true}, {"B", false},
		// Literal text check: a lowercase tonic letter b reads as a flat marker.
		{"b", true},
	}
	for _, c := range cases {
		if got := theory.PreferFlatsForKey(c.key); got != c.want {
			t.Fatalf("PreferFlatsForKey(%q) = %v, want %v", c.key, got, c.want)
		}
	}
}

func TestNorm(t *testing.T) {
	if theory.PitchClass(-1).Norm() != 11 {
		t.Fatalf("Norm(-1) = %d", theory.PitchClass(-1).Norm())
	}
	if theory.PitchClass(12).Norm() != 0 {
		t.Fatalf("Norm(12) = %d", theory.PitchClass(12).Norm())
	}
	if theory.PitchClass(26).Norm() != 2 {
		t.Fatalf("Norm(26) = %d", theory.PitchClass(26).Norm())
	}
}
