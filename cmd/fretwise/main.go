package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fretwise/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "fretwise",
	Short: "Fretwise chord and fretboard toolkit",
	Long:  `Fretwise resolves chord symbols, maps keys onto CAGED shape regions, and explores scales on a fretted neck`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(voicingCmd)
	rootCmd.AddCommand(songCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("key", "C", "key tonic for roman-numeral symbols")
	rootCmd.PersistentFlags().String("mode", "major", "key mode (major|minor)")
	rootCmd.PersistentFlags().String("instrument", "", "instrument definition TOML file")
	rootCmd.PersistentFlags().Bool("flats", false, "force flat spellings regardless of key")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
