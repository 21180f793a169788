package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fretwise/internal/fretboard"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Show the CAGED shape regions of the key",
	Long:  `Regions partitions the neck into the five overlapping CAGED shape windows for the selected key`,
	Args:  cobra.NoArgs,
	RunE:  runRegions,
}

func init() {
	regionsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runRegions(cmd *cobra.Command, args []string) error {
	cc, err := contextFromFlags(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	regions := fretboard.RegionsForKey(cc.KeyPC, cc.Mode, 0, cc.Inst.Board.Frets)

	switch format {
	case "json":
		type regionPayload struct {
			Shape string `json:"shape"`
			Start int    `json:"fret_start"`
			End   int    `json:"fret_end"`
		}
		payload := make([]regionPayload, 0, len(regions))
		for _, r := range regions {
			payload = append(payload, regionPayload{Shape: r.ID.String(), Start: r.FretStart, End: r.FretEnd})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "pretty":
		if len(regions) == 0 {
			fmt.Printf("no shape regions fit a %d-fret neck in %s %s\n", cc.Inst.Board.Frets, cc.KeyName, cc.Mode)
			return nil
		}
		shapeColor := color.New(color.FgCyan, color.Bold)
		fmt.Printf("%s %s on %s (%d frets)\n", cc.KeyName, cc.Mode, cc.Inst.Name, cc.Inst.Board.Frets)
		for _, r := range regions {
			fmt.Printf("  %s  frets %2d-%2d\n", shapeColor.Sprintf("%-8s", r.Label), r.FretStart, r.FretEnd)
		}
		return nil
	}
	return fmt.Errorf("unknown format: %s", format)
}
