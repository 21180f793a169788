package theory

// Quality is the intervallic flavor of a chord, independent of root.
type Quality uint8

const (
	// QualMaj represents the major triad.
	QualMaj Quality = iota
	// QualMin represents the minor triad.
	QualMin
	// QualDim represents the diminished triad.
	QualDim
	// QualAug represents the augmented triad.
	QualAug
	// QualSus2 represents the suspended-second triad.
	QualSus2
	// QualSus4 represents the suspended-fourth triad.
	QualSus4
	// QualDom7 represents the dominant seventh chord.
	QualDom7
	// QualMaj7 represents the major seventh chord.
	QualMaj7
	// QualMin7 represents the minor seventh chord.
	QualMin7
	// QualM7b5 represents the half-diminished seventh chord.
	QualM7b5
	// QualAdd9 represents the added-ninth chord.
	QualAdd9
	// Qual6 represents the major sixth chord.
	Qual6
	// Qual9 represents the dominant ninth chord.
	Qual9
)

// qualityIntervals is the single source of truth for tone composition.
// Intervals are semitones from the root and may exceed 11 for compound
// tones (reduced mod 12 when building tone sets).
var qualityIntervals = map[Quality][]int{
	QualMaj:  {0, 4, 7},
	QualMin:  {0, 3, 7},
	QualDim:  {0, 3, 6},
	QualAug:  {0, 4, 8},
	QualSus2: {0, 2, 7},
	QualSus4: {0, 5, 7},
	QualDom7: {0, 4, 7, 10},
	QualMaj7: {0, 4, 7, 11},
	QualMin7: {0, 3, 7, 10},
	QualM7b5: {0, 3, 6, 10},
	QualAdd9: {0, 4, 7, 14},
	Qual6:    {0, 4, 7, 9},
	Qual9:    {0, 4, 7, 10, 14},
}

// qualityLabels is the per-quality display suffix.
var qualityLabels = map[Quality]string{
	QualMaj:  "",
	QualMin:  "m",
	QualDim:  "dim",
	QualAug:  "aug",
	QualSus2: "sus2",
	QualSus4: "sus4",
	QualDom7: "7",
	QualMaj7: "maj7",
	QualMin7: "m7",
	QualM7b5: "m7b5",
	QualAdd9: "add9",
	Qual6:    "6",
	Qual9:    "9",
}

// Label returns the display suffix for the quality ("" for a plain major triad).
func (q Quality) Label() string {
	return qualityLabels[q]
}

// Intervals returns a copy of the quality's semitone interval table.
func (q Quality) Intervals() []int {
	src := qualityIntervals[q]
	out := make([]int, len(src))
	copy(out, src)
	return out
}

// Chord is a fully resolved chord: a root pitch class plus a quality and a
// copy of that quality's interval table. Values are immutable once built.
type Chord struct {
	Root      PitchClass
	Quality   Quality
	Intervals []int
}

// NewChord builds a chord from a root and quality.
func NewChord(root PitchClass, q Quality) Chord {
	return Chord{Root: root.Norm(), Quality: q, Intervals: q.Intervals()}
}

// Tones returns the chord's pitch-class set. Compound intervals that alias a
// base tone collapse naturally; the set is returned in first-occurrence order.
func (c Chord) Tones() []PitchClass {
	seen := [12]bool{}
	out := make([]PitchClass, 0, len(c.Intervals))
	for _, iv := range c.Intervals {
		pc := (c.Root + PitchClass(iv)).Norm()
		if seen[pc] {
			continue
		}
		seen[pc] = true
		out = append(out, pc)
	}
	return out
}

// HasTone reports whether pc is one of the chord's tones.
func (c Chord) HasTone(pc PitchClass) bool {
	n := pc.Norm()
	for _, t := range c.Tones() {
		if t == n {
			return true
		}
	}
	return false
}

// Name spells the chord for display, e.g. "F#m7b5" or "Bb7".
func (c Chord) Name(preferFlats bool) string {
	return c.Root.Name(preferFlats) + c.Quality.Label()
}
