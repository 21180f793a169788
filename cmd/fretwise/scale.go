package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fretwise/internal/theory"
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Print the scale and pentatonic of the key",
	Args:  cobra.NoArgs,
	RunE:  runScale,
}

func runScale(cmd *cobra.Command, args []string) error {
	cc, err := contextFromFlags(cmd)
	if err != nil {
		return err
	}

	headColor := color.New(color.Bold)
	fmt.Printf("%s\n", headColor.Sprintf("%s %s", cc.KeyName, cc.Mode))
	fmt.Printf("scale:      %s\n", spellSet(theory.Scale(cc.KeyPC, cc.Mode), cc.Flats))
	fmt.Printf("pentatonic: %s\n", spellSet(theory.Pentatonic(cc.KeyPC, cc.Mode), cc.Flats))
	return nil
}

func spellSet(set []theory.PitchClass, flats bool) string {
	names := make([]string, len(set))
	for i, pc := range set {
		names[i] = pc.Name(flats)
	}
	return strings.Join(names, " ")
}
