package song

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"fretwise/internal/parser"
	"fretwise/internal/theory"
)

// ResolvedEntry is the resolution outcome for one timeline entry. A failed
// symbol is carried as data so one bad chord does not sink the whole song.
type ResolvedEntry struct {
	Symbol  string
	Bars    int
	Chord   theory.Chord
	Failed  bool
	Code    parser.Code
	Message string
}

// ResolveAll resolves every entry of the song concurrently. jobs <= 0 uses
// one worker per CPU. The only returned error is context cancellation.
func ResolveAll(ctx context.Context, s Song, jobs int) ([]ResolvedEntry, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	results := make([]ResolvedEntry, len(s.Entries))
	for i, entry := range s.Entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := ResolvedEntry{Symbol: entry.Symbol, Bars: entry.Bars}
			chord, err := parser.Resolve(entry.Symbol, s.Key, s.Mode)
			if err != nil {
				res.Failed = true
				res.Code = parser.CodeOf(err)
				res.Message = err.Error()
			} else {
				res.Chord = chord
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// FailureCount counts entries that did not resolve.
func FailureCount(entries []ResolvedEntry) int {
	n := 0
	for _, e := range entries {
		if e.Failed {
			n++
		}
	}
	return n
}
