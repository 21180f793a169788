package song_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fretwise/internal/parser"
	"fretwise/internal/song"
	"fretwise/internal/theory"
)

const bluesInA = `
[song]
title = "Quick Change Blues"
key = "A"
mode = "major"
tempo = 96

[[entry]]
symbol = "I"
bars = 1

[[entry]]
symbol = "IV"
bars = 1

[[entry]]
symbol = "V/ii"
bars = 2

[[entry]]
symbol = "E7"
bars = 2
`

func writeSong(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "song.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp song: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	s, err := song.Load(writeSong(t, bluesInA))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Title != "Quick Change Blues" || s.Key != "A" || s.KeyPC != 9 {
		t.Fatalf("header = %+v", s)
	}
	if s.Mode != theory.ModeMajor || s.Tempo != 96 {
		t.Fatalf("mode/tempo = %v/%d", s.Mode, s.Tempo)
	}
	if len(s.Entries) != 4 || s.Entries[2].Bars != 2 {
		t.Fatalf("entries = %+v", s.Entries)
	}
}

func TestLoadDefaultsAndErrors(t *testing.T) {
	s, err := song.Load(writeSong(t, "[song]\nkey = \"C\"\n\n[[entry]]\nsymbol = \"I\"\n"))
	if err != nil {
		t.Fatalf("Load minimal: %v", err)
	}
	if s.Tempo != 120 || s.Mode != theory.ModeMajor || s.Entries[0].Bars != 1 {
		t.Fatalf("defaults = %+v", s)
	}

	if _, err := song.Load(writeSong(t, "title = \"x\"\n")); !errors.Is(err, song.ErrSongSectionMissing) {
		t.Fatalf("missing section err = %v", err)
	}
	if _, err := song.Load(writeSong(t, "[song]\nkey = \"C\"\n")); !errors.Is(err, song.ErrNoEntries) {
		t.Fatalf("no entries err = %v", err)
	}
	if _, err := song.Load(writeSong(t, "[song]\nkey = \"H\"\n\n[[entry]]\nsymbol = \"I\"\n")); err == nil {
		t.Fatalf("bad key should fail")
	}
	if _, err := song.Load(writeSong(t, "[song]\nkey = \"C\"\ntempo = 1000\n\n[[entry]]\nsymbol = \"I\"\n")); err == nil {
		t.Fatalf("out-of-range tempo should fail")
	}
}

func TestResolveAll(t *testing.T) {
	s, err := song.Load(writeSong(t, bluesInA))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	resolved, err := song.ResolveAll(context.Background(), s, 2)
	if err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}
	if len(resolved) != 4 {
		t.Fatalf("resolved %d entries", len(resolved))
	}
	// I in A major = A (9); IV = D (2); V/ii = (11+7) mod 12 = 6; E7 literal.
	wantRoots := []theory.PitchClass{9, 2, 6, 4}
	for i, want := range wantRoots {
		if resolved[i].Failed {
			t.Fatalf("entry %d failed: %s", i, resolved[i].Message)
		}
		if resolved[i].Chord.Root != want {
			t.Fatalf("entry %d root = %d, want %d", i, resolved[i].Chord.Root, want)
		}
	}
	if resolved[3].Chord.Quality != theory.QualDom7 {
		t.Fatalf("E7 quality = %v", resolved[3].Chord.Quality)
	}
}

func TestResolveAllCarriesFailures(t *testing.T) {
	s := song.Song{
		Key: "C", Mode: theory.ModeMajor, Tempo: 120,
		Entries: []song.Entry{
			{Symbol: "I", Bars: 1},
			{Symbol: "Hz", Bars: 1},
			{Symbol: "V7", Bars: 1},
		},
	}
	resolved, err := song.ResolveAll(context.Background(), s, 0)
	if err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}
	if song.FailureCount(resolved) != 2 {
		t.Fatalf("failure count = %d, want 2", song.FailureCount(resolved))
	}
	if resolved[1].Code != parser.CodeInvalidRoot {
		t.Fatalf("Hz code = %d", resolved[1].Code)
	}
	if resolved[2].Code != parser.CodeInvalidRomanNumeral {
		t.Fatalf("V7 code = %d", resolved[2].Code)
	}
}

func TestResolveAllCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := song.Song{Key: "C", Entries: []song.Entry{{Symbol: "I", Bars: 1}}}
	if _, err := song.ResolveAll(ctx, s, 1); err == nil {
		t.Fatalf("cancelled context should abort resolution")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	path := writeSong(t, bluesInA)
	s, err := song.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	resolved, err := song.ResolveAll(context.Background(), s, 0)
	if err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}

	cache, err := song.OpenCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("OpenCacheAt: %v", err)
	}
	key, err := song.Fingerprint(path)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}

	var miss song.Payload
	if ok, err := cache.Get(key, &miss); err != nil || ok {
		t.Fatalf("expected a clean miss, got ok=%v err=%v", ok, err)
	}

	payload, err := song.EncodePayload(s, resolved)
	if err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got song.Payload
	ok, err := cache.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	back := song.DecodePayload(&got)
	if len(back) != len(resolved) {
		t.Fatalf("decoded %d entries, want %d", len(back), len(resolved))
	}
	for i := range back {
		if back[i].Symbol != resolved[i].Symbol || back[i].Bars != resolved[i].Bars {
			t.Fatalf("entry %d header mismatch: %+v vs %+v", i, back[i], resolved[i])
		}
		if back[i].Chord.Root != resolved[i].Chord.Root || back[i].Chord.Quality != resolved[i].Chord.Quality {
			t.Fatalf("entry %d chord mismatch: %+v vs %+v", i, back[i].Chord, resolved[i].Chord)
		}
	}
}
