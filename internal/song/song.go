package song

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"fretwise/internal/theory"
)

// Entry is one chord symbol in a song timeline. The symbol may be a Roman
// numeral relative to the song key or a literal chord name.
type Entry struct {
	Symbol string
	Bars   int
}

// Song is a chord timeline in a single key.
type Song struct {
	Title   string
	Key     string
	KeyPC   theory.PitchClass
	Mode    theory.Mode
	Tempo   int
	Entries []Entry
}

var (
	// ErrSongSectionMissing indicates that [song] is missing.
	ErrSongSectionMissing = errors.New("missing [song]")
	// ErrNoEntries indicates a song without any entry blocks.
	ErrNoEntries = errors.New("song has no entries")
)

type songFile struct {
	Song struct {
		Title string `toml:"title"`
		Key   string `toml:"key"`
		Mode  string `toml:"mode"`
		Tempo int64  `toml:"tempo"`
	} `toml:"song"`
	Entry []struct {
		Symbol string `toml:"symbol"`
		Bars   int64  `toml:"bars"`
	} `toml:"entry"`
}

// Load reads a song timeline from a TOML file.
func Load(path string) (Song, error) {
	var cfg songFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Song{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("song") {
		return Song{}, fmt.Errorf("%s: %w", path, ErrSongSectionMissing)
	}
	if len(cfg.Entry) == 0 {
		return Song{}, fmt.Errorf("%s: %w", path, ErrNoEntries)
	}

	keyPC, err := theory.ParsePitch(cfg.Song.Key)
	if err != nil {
		return Song{}, fmt.Errorf("%s: invalid song key %q", path, cfg.Song.Key)
	}
	mode := theory.ModeMajor
	if meta.IsDefined("song", "mode") {
		mode, err = theory.ParseMode(cfg.Song.Mode)
		if err != nil {
			return Song{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	tempo := 120
	if meta.IsDefined("song", "tempo") {
		if cfg.Song.Tempo < 20 || cfg.Song.Tempo > 400 {
			return Song{}, fmt.Errorf("%s: tempo %d out of range", path, cfg.Song.Tempo)
		}
		tempo = int(cfg.Song.Tempo)
	}

	s := Song{
		Title: cfg.Song.Title,
		Key:   cfg.Song.Key,
		KeyPC: keyPC,
		Mode:  mode,
		Tempo: tempo,
	}
	for i, e := range cfg.Entry {
		if e.Symbol == "" {
			return Song{}, fmt.Errorf("%s: entry %d has no symbol", path, i+1)
		}
		bars := int(e.Bars)
		if bars <= 0 {
			bars = 1
		}
		s.Entries = append(s.Entries, Entry{Symbol: e.Symbol, Bars: bars})
	}
	return s, nil
}
