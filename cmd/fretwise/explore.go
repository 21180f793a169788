package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"fretwise/internal/parser"
	"fretwise/internal/theory"
	"fretwise/internal/ui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [flags] [symbol]",
	Short: "Interactive fretboard explorer",
	Long:  `Explore renders the neck for the selected key with scale, pentatonic and chord overlays, filtered by CAGED position`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	cc, err := contextFromFlags(cmd)
	if err != nil {
		return err
	}

	var chord *theory.Chord
	if len(args) == 1 {
		c, err := parser.Resolve(args[0], cc.KeyName, cc.Mode)
		if err != nil {
			return err
		}
		chord = &c
	}

	model := ui.NewExploreModel(ui.ExploreConfig{
		Title:       cc.Inst.Name,
		Board:       cc.Inst.Board,
		KeyName:     cc.KeyName,
		KeyPC:       cc.KeyPC,
		Mode:        cc.Mode,
		Chord:       chord,
		PreferFlats: cc.Flats,
	})
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err = program.Run()
	return err
}
