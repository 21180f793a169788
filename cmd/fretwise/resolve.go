package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fretwise/internal/parser"
	"fretwise/internal/theory"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] symbol...",
	Short: "Resolve chord symbols to roots and tones",
	Long:  `Resolve turns literal chord names ("F#m7b5") and roman numerals ("V/ii") into fully specified chords`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type resolvedPayload struct {
	Symbol  string `json:"symbol"`
	Chord   string `json:"chord,omitempty"`
	Root    int    `json:"root"`
	Quality string `json:"quality"`
	Tones   []int  `json:"tones,omitempty"`
	Error   string `json:"error,omitempty"`
	ErrCode uint16 `json:"error_code,omitempty"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	cc, err := contextFromFlags(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	payloads := make([]resolvedPayload, 0, len(args))
	failed := false
	for _, symbol := range args {
		p := resolvedPayload{Symbol: symbol}
		chord, err := parser.Resolve(symbol, cc.KeyName, cc.Mode)
		if err != nil {
			p.Error = err.Error()
			p.ErrCode = uint16(parser.CodeOf(err))
			failed = true
		} else {
			p.Chord = chord.Name(cc.Flats)
			p.Root = int(chord.Root)
			p.Quality = chord.Quality.Label()
			for _, t := range chord.Tones() {
				p.Tones = append(p.Tones, int(t))
			}
		}
		payloads = append(payloads, p)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payloads); err != nil {
			return err
		}
	case "pretty":
		printResolvedPretty(payloads, cc)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if failed {
		return fmt.Errorf("some symbols did not resolve")
	}
	return nil
}

func printResolvedPretty(payloads []resolvedPayload, cc cmdContext) {
	chordColor := color.New(color.FgCyan, color.Bold)
	errColor := color.New(color.FgRed)
	for _, p := range payloads {
		if p.Error != "" {
			fmt.Printf("%-10s %s\n", p.Symbol, errColor.Sprint(p.Error))
			continue
		}
		tones := make([]string, 0, len(p.Tones))
		for _, t := range p.Tones {
			tones = append(tones, theory.PitchClass(t).Name(cc.Flats))
		}
		fmt.Printf("%-10s %s  [%s]\n", p.Symbol, chordColor.Sprint(p.Chord), strings.Join(tones, " "))
	}
}
