package anthology

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MarkGotham/Serial-Analyser/tonerow"
)

// derivedLengths are the segment lengths at which a twelve-tone row can
// be fully derived: 6 dyads, 4 trichords, 3 tetrachords or 2 hexachords.
var derivedLengths = []int{2, 3, 4, 6}

// Analyze runs every classifier over one twelve-tone row. The caller
// must ensure tonerow.Is12Tone(row); Load-produced entries already are.
func Analyze(row []int) (Properties, error) {
	var props Properties

	for _, length := range derivedLengths {
		d, err := tonerow.Derived(row, length)
		if err != nil {
			return Properties{}, err
		}
		if d != nil {
			props.Derived = append(props.Derived, DerivedSegments{
				Length:         length,
				Cell:           d.Cell,
				SelfRotational: d.SelfRotational,
				Step:           d.Step,
			})
		}
	}

	combType, err := tonerow.CombinatorialType(row)
	if err != nil {
		return Properties{}, err
	}
	props.CombinatorialType = string(combType)
	props.Combinatorial = tonerow.FullCombinatorialTypes(row)

	props.SelfRetrograde = tonerow.IsSelfRetrograde(row)
	props.SelfRI = tonerow.IsSelfRI(row)
	props.AllInterval = tonerow.IsAllInterval(row)
	props.AllTrichord = tonerow.IsAllTrichord(row)

	return props, nil
}

// AnalyzeAll classifies a batch of entries, parallelism rows at a time.
// Classification is pure and shares only the read-only catalog, so rows
// need no coordination beyond the worker limit. Results keep the input
// order. A parallelism below 1 means one worker.
func AnalyzeAll(ctx context.Context, entries []Entry, parallelism int) ([]Analysis, error) {
	if parallelism < 1 {
		parallelism = 1
	}

	results := make([]Analysis, len(entries))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			props, err := Analyze(entry.P0)
			if err != nil {
				return fmt.Errorf("anthology: %s: %s: %w", entry.Composer, entry.Work, err)
			}
			results[i] = Analysis{Entry: entry, Properties: props}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// String summarises the properties for annotation purposes, e.g.
// "4-note cell (0,1,2,3); Combinatorial by RI6; Self-retro.inv.".
// Non-properties contribute nothing; a featureless row reports
// "(No properties to report)".
func (p Properties) String() string {
	var parts []string

	for _, d := range p.Derived {
		parts = append(parts, fmt.Sprintf("%d-note cell %s", d.Length, cellString(d.Cell)))
		if d.SelfRotational {
			parts = append(parts, fmt.Sprintf("Self-rotational %d", d.Step))
			break
		}
	}

	if s := p.Combinatorial.String(); s != "" {
		parts = append(parts, "Combinatorial by "+s)
	}
	if p.SelfRetrograde {
		parts = append(parts, "Self-retro.")
	}
	if p.SelfRI {
		parts = append(parts, "Self-retro.inv.")
	}
	if p.AllInterval {
		parts = append(parts, "All-interval")
	}
	if p.AllTrichord {
		parts = append(parts, "All-trichord")
	}

	if len(parts) == 0 {
		return "(No properties to report)"
	}

	return strings.Join(parts, "; ")
}

func cellString(cell []int) string {
	rendered := make([]string, len(cell))
	for i, p := range cell {
		rendered[i] = fmt.Sprintf("%d", p)
	}

	return "(" + strings.Join(rendered, ",") + ")"
}
