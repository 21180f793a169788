package instrument

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"fretwise/internal/fretboard"
	"fretwise/internal/theory"
)

// Instrument is a playable fretted instrument: a named board plus an
// optional spelling override.
type Instrument struct {
	Name  string
	Board fretboard.Board

	// FlatsSet/Flats override the per-key spelling heuristic when the
	// definition file pins a preference.
	FlatsSet bool
	Flats    bool
}

var (
	// ErrInstrumentSectionMissing indicates that [instrument] is missing.
	ErrInstrumentSectionMissing = errors.New("missing [instrument]")
	// ErrTuningLength indicates a tuning with the wrong number of strings.
	ErrTuningLength = errors.New("tuning must list exactly 6 strings")
)

type instrumentFile struct {
	Instrument struct {
		Name        string   `toml:"name"`
		Tuning      []string `toml:"tuning"`
		Frets       int64    `toml:"frets"`
		PreferFlats *bool    `toml:"prefer_flats"`
	} `toml:"instrument"`
}

// Default is a 6-string guitar in standard tuning with 15 frets.
func Default() Instrument {
	return Instrument{Name: "guitar", Board: fretboard.StandardBoard()}
}

// Load reads an instrument definition from a TOML file. Tuning entries are
// note names resolved through the pitch model, low string first.
func Load(path string) (Instrument, error) {
	var cfg instrumentFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Instrument{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("instrument") {
		return Instrument{}, fmt.Errorf("%s: %w", path, ErrInstrumentSectionMissing)
	}

	inst := Default()
	if cfg.Instrument.Name != "" {
		inst.Name = cfg.Instrument.Name
	}
	if meta.IsDefined("instrument", "tuning") {
		if len(cfg.Instrument.Tuning) != fretboard.NumStrings {
			return Instrument{}, fmt.Errorf("%s: %w", path, ErrTuningLength)
		}
		for i, name := range cfg.Instrument.Tuning {
			pc, err := theory.ParsePitch(name)
			if err != nil {
				return Instrument{}, fmt.Errorf("%s: string %d: %w", path, i+1, err)
			}
			inst.Board.Tuning[i] = pc
		}
	}
	if meta.IsDefined("instrument", "frets") {
		frets, err := safecast.Conv[uint8](cfg.Instrument.Frets)
		if err != nil || frets == 0 {
			return Instrument{}, fmt.Errorf("%s: invalid fret count %d", path, cfg.Instrument.Frets)
		}
		inst.Board.Frets = int(frets)
	}
	if cfg.Instrument.PreferFlats != nil {
		inst.FlatsSet = true
		inst.Flats = *cfg.Instrument.PreferFlats
	}
	return inst, nil
}

// PreferFlats resolves the spelling preference for a key tonic, honoring the
// file override when present.
func (i Instrument) PreferFlats(keyTonic string) bool {
	if i.FlatsSet {
		return i.Flats
	}
	return theory.PreferFlatsForKey(keyTonic)
}
