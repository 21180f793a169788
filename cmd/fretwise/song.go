package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fretwise/internal/song"
)

var songCmd = &cobra.Command{
	Use:   "song",
	Short: "Work with song timeline files",
}

var songShowCmd = &cobra.Command{
	Use:   "show [flags] song.toml",
	Short: "Resolve and print a song timeline",
	Args:  cobra.ExactArgs(1),
	RunE:  runSongShow,
}

var songCheckCmd = &cobra.Command{
	Use:   "check [flags] song.toml",
	Short: "Verify that every symbol in a song resolves",
	Args:  cobra.ExactArgs(1),
	RunE:  runSongCheck,
}

func init() {
	songCmd.AddCommand(songShowCmd)
	songCmd.AddCommand(songCheckCmd)
	songShowCmd.Flags().Int("jobs", 0, "parallel resolution workers (0 = NumCPU)")
	songShowCmd.Flags().Bool("no-cache", false, "skip the resolved-song disk cache")
	songCheckCmd.Flags().Int("jobs", 0, "parallel resolution workers (0 = NumCPU)")
}

func loadResolved(cmd *cobra.Command, path string, useCache bool) (song.Song, []song.ResolvedEntry, error) {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return song.Song{}, nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}

	s, err := song.Load(path)
	if err != nil {
		return song.Song{}, nil, err
	}

	// Cache trouble is never fatal; any failure falls through to a fresh
	// resolve.
	var cache *song.Cache
	var key song.Digest
	if useCache {
		if c, cErr := song.OpenCache("fretwise"); cErr == nil {
			if k, kErr := song.Fingerprint(path); kErr == nil {
				cache, key = c, k
				var payload song.Payload
				if ok, _ := cache.Get(key, &payload); ok {
					return s, song.DecodePayload(&payload), nil
				}
			}
		}
	}

	resolved, err := song.ResolveAll(cmd.Context(), s, jobs)
	if err != nil {
		return song.Song{}, nil, err
	}
	if cache != nil {
		if payload, err := song.EncodePayload(s, resolved); err == nil {
			_ = cache.Put(key, payload)
		}
	}
	return s, resolved, nil
}

func runSongShow(cmd *cobra.Command, args []string) error {
	cc, err := contextFromFlags(cmd)
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	s, resolved, err := loadResolved(cmd, args[0], !noCache)
	if err != nil {
		return err
	}

	titleColor := color.New(color.Bold)
	chordColor := color.New(color.FgCyan, color.Bold)
	errColor := color.New(color.FgRed)
	flats := cc.Inst.PreferFlats(s.Key)

	fmt.Printf("%s — %s %s, %d bpm\n", titleColor.Sprint(s.Title), s.Key, s.Mode, s.Tempo)
	bar := 1
	for _, e := range resolved {
		if e.Failed {
			fmt.Printf("  bar %3d  %-8s %s\n", bar, e.Symbol, errColor.Sprint(e.Message))
		} else {
			fmt.Printf("  bar %3d  %-8s %s (%d bars)\n", bar, e.Symbol, chordColor.Sprint(e.Chord.Name(flats)), e.Bars)
		}
		bar += e.Bars
	}
	if n := song.FailureCount(resolved); n > 0 {
		return fmt.Errorf("%d of %d symbols did not resolve", n, len(resolved))
	}
	return nil
}

func runSongCheck(cmd *cobra.Command, args []string) error {
	if _, err := contextFromFlags(cmd); err != nil {
		return err
	}
	s, resolved, err := loadResolved(cmd, args[0], false)
	if err != nil {
		return err
	}

	errColor := color.New(color.FgRed)
	for _, e := range resolved {
		if e.Failed {
			fmt.Fprintf(os.Stderr, "%s: %s\n", e.Symbol, errColor.Sprint(e.Message))
		}
	}
	if n := song.FailureCount(resolved); n > 0 {
		return fmt.Errorf("%d of %d symbols did not resolve", n, len(resolved))
	}
	fmt.Printf("ok: %d symbols in %s %s\n", len(resolved), s.Key, s.Mode)
	return nil
}
