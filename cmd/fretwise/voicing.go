package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fretwise/internal/fretboard"
	"fretwise/internal/parser"
)

var voicingCmd = &cobra.Command{
	Use:   "voicing [flags] symbol",
	Short: "Show playable voicings for a chord",
	Long:  `Voicing maps a resolved chord onto the catalog of open and movable shapes that fit the instrument`,
	Args:  cobra.ExactArgs(1),
	RunE:  runVoicing,
}

func init() {
	voicingCmd.Flags().Bool("all", false, "include voicings that do not fit the neck")
}

func runVoicing(cmd *cobra.Command, args []string) error {
	cc, err := contextFromFlags(cmd)
	if err != nil {
		return err
	}
	showAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}

	chord, err := parser.Resolve(args[0], cc.KeyName, cc.Mode)
	if err != nil {
		return err
	}

	shapes := fretboard.ShapesFor(chord.Root, chord.Quality)
	nameColor := color.New(color.FgCyan, color.Bold)
	fmt.Printf("%s\n", nameColor.Sprint(chord.Name(cc.Flats)))

	shown := 0
	for _, shape := range shapes {
		frets := shape.ResolveFrets(chord.Root)
		if !showAll && !cc.Inst.Board.Fits(frets) {
			continue
		}
		fmt.Printf("  %-22s %s\n", shape.Label(chord.Root, cc.Flats), formatFrets(frets))
		shown++
	}
	if shown == 0 {
		fmt.Println("  no catalog voicing fits this chord on this neck")
	}
	return nil
}

// formatFrets renders a voicing in tab order, low string first, x for muted.
func formatFrets(frets [fretboard.NumStrings]int) string {
	parts := make([]string, 0, len(frets))
	for _, f := range frets {
		if f == fretboard.Muted {
			parts = append(parts, "x")
			continue
		}
		parts = append(parts, fmt.Sprintf("%d", f))
	}
	return strings.Join(parts, "-")
}
