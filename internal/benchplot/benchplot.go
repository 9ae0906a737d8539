package benchplot

import (
	"fmt"

	"github.com/geodata-labs/subench/internal/monitoring"
	"github.com/geodata-labs/subench/internal/seismic"
	"github.com/geodata-labs/subench/internal/seismic/su"
)

// Plot runs the full pipeline over the given sources: load, align,
// normalize, lay out, render. An empty source list is a benign no-op and
// returns (nil, nil) — nothing to plot, no canvas created. Any geometry or
// normalization error aborts the whole render; a partial figure would be
// meaningless once the axis bounds depend on every trace.
func Plot(sources []Source, opts *Options) (*Result, error) {
	if len(sources) == 0 {
		return nil, nil
	}
	opts = opts.withDefaults()
	if !opts.Normalize.Valid() {
		return nil, fmt.Errorf("benchplot: unknown normalize policy %q", opts.Normalize)
	}

	cols, err := resolveSources(sources)
	if err != nil {
		return nil, err
	}

	seismic.Align(cols, opts.TrimToShortest)
	if err := seismic.Normalize(cols, opts.Normalize, opts.Scale); err != nil {
		return nil, err
	}

	l, err := computeLayout(cols, opts)
	if err != nil {
		return nil, err
	}

	clipped := 0
	for _, c := range l.curves {
		if c.clipped {
			clipped++
		}
	}
	monitoring.Logf("benchplot: %d collections, %d curves (%d clipped)",
		l.collections, len(l.curves), clipped)

	return render(l, opts)
}

// PlotFiles is a convenience wrapper that plots SU files by path.
func PlotFiles(paths []string, opts *Options) (*Result, error) {
	sources := make([]Source, len(paths))
	for i, p := range paths {
		sources[i] = Source{Path: p}
	}
	return Plot(sources, opts)
}

// resolveSources turns every source into an in-memory collection, loading
// file paths through the SU reader.
func resolveSources(sources []Source) ([]*seismic.Collection, error) {
	cols := make([]*seismic.Collection, 0, len(sources))
	for i, src := range sources {
		switch {
		case src.Collection != nil:
			cols = append(cols, src.Collection)
		case src.Path != "":
			col, err := su.ReadFile(src.Path)
			if err != nil {
				return nil, err
			}
			cols = append(cols, col)
		default:
			return nil, fmt.Errorf("benchplot: source %d has neither path nor collection", i)
		}
	}
	return cols, nil
}
