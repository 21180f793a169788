package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fretwise/internal/instrument"
	"fretwise/internal/theory"
)

// cmdContext gathers the flag-derived state every subcommand needs: the key,
// the instrument, and the spelling preference.
type cmdContext struct {
	KeyName string
	KeyPC   theory.PitchClass
	Mode    theory.Mode
	Inst    instrument.Instrument
	Flats   bool
}

func contextFromFlags(cmd *cobra.Command) (cmdContext, error) {
	flags := cmd.Root().PersistentFlags()

	keyName, err := flags.GetString("key")
	if err != nil {
		return cmdContext{}, err
	}
	keyPC, err := theory.ParsePitch(keyName)
	if err != nil {
		return cmdContext{}, fmt.Errorf("invalid key %q", keyName)
	}

	modeName, err := flags.GetString("mode")
	if err != nil {
		return cmdContext{}, err
	}
	mode, err := theory.ParseMode(modeName)
	if err != nil {
		return cmdContext{}, err
	}

	inst := instrument.Default()
	if path, _ := flags.GetString("instrument"); path != "" {
		inst, err = instrument.Load(path)
		if err != nil {
			return cmdContext{}, err
		}
	}

	forceFlats, err := flags.GetBool("flats")
	if err != nil {
		return cmdContext{}, err
	}
	flats := forceFlats || inst.PreferFlats(keyName)

	configureColor(cmd)
	return cmdContext{
		KeyName: keyName,
		KeyPC:   keyPC,
		Mode:    mode,
		Inst:    inst,
		Flats:   flats,
	}, nil
}

func configureColor(cmd *cobra.Command) {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}
