// Package benchplot lays out and renders comparative benchmark seismogram
// plots: traces from several collections overlaid on one shared time/offset
// axis so the waveforms of different wave-propagation codes can be compared
// by eye.
package benchplot

import (
	"gonum.org/v1/plot"

	"github.com/geodata-labs/subench/internal/seismic"
)

// Options control the preparation pipeline and the render output.
//
// Always start from DefaultOptions and override fields; a nil Options
// means defaults. A zero-valued Options literal is NOT the default
// configuration: the boolean knobs (ClipPartialTraces, TrimToShortest,
// PlotLegend) all default to true, and a zero value turns them off.
type Options struct {
	// Normalize selects the amplitude scaling policy.
	Normalize seismic.NormalizePolicy

	// ClipPartialTraces skips drawing traces that fall partly outside the
	// explicit YMin/YMax bounds. Clipped traces still count toward
	// automatic bound computation.
	ClipPartialTraces bool

	// TrimToShortest truncates all traces to the globally shortest one.
	TrimToShortest bool

	// Scale multiplies the normalized amplitude spread.
	Scale float64

	// Explicit axis bounds. Nil means automatic. YMin/YMax inside the
	// observed data range shrink the view (and drive clipping); bounds
	// outside it are replaced by the padded automatic range. XMin is
	// clamped to zero, XMax may shrink below the observed maximum.
	XMin, XMax, YMin, YMax *float64

	// PlotLegend toggles the per-collection legend.
	PlotLegend bool

	// Title is the figure title. A line break splits it into a main title
	// and a subtitle.
	Title string

	// Width, Height are the output size in pixels; DPI converts them to
	// physical dimensions for vector backends.
	Width, Height int
	DPI           int

	// Outfile writes the figure to a file, format inferred from the
	// extension unless Format overrides it.
	Outfile string

	// Format selects the encoding (png, pdf, svg, html, ...). With no
	// Outfile the encoded bytes are returned in Result.Image.
	Format string

	// Canvas draws into an externally owned plot instead of creating one.
	// The canvas is returned unfinalized; title and bounds already applied
	// to it are left alone.
	Canvas *plot.Plot
}

// DefaultOptions returns the documented defaults: per-trace normalization,
// clipping and trimming on, scale 3.0, legend on, 800x600 px at 100 DPI.
// This is the supported way to construct an Options value.
func DefaultOptions() *Options {
	return &Options{
		Normalize:         seismic.NormalizeTraces,
		ClipPartialTraces: true,
		TrimToShortest:    true,
		Scale:             3.0,
		PlotLegend:        true,
		Width:             800,
		Height:            600,
		DPI:               100,
	}
}

// withDefaults fills unset scalar fields so a partially built Options (or
// nil) behaves like DefaultOptions for the untouched knobs. Boolean fields
// cannot be distinguished from deliberate false, so they pass through
// unchanged; that is why DefaultOptions is the supported constructor.
func (o *Options) withDefaults() *Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.Normalize == "" {
		out.Normalize = seismic.NormalizeTraces
	}
	if out.Scale == 0 {
		out.Scale = 3.0
	}
	if out.Width == 0 {
		out.Width = 800
	}
	if out.Height == 0 {
		out.Height = 600
	}
	if out.DPI == 0 {
		out.DPI = 100
	}
	return &out
}

// Source names one trace collection for plotting: either an already parsed
// collection or a path to an SU file.
type Source struct {
	Path       string
	Collection *seismic.Collection
}

// Result is the outcome of one Plot call. Exactly one field is populated,
// matching the selected output mode.
type Result struct {
	// Canvas is the caller-supplied canvas (unfinalized) or, when no
	// outfile, format, or canvas was given, a freshly created plot the
	// caller now owns.
	Canvas *plot.Plot

	// Image holds the encoded figure when Format was set without Outfile.
	Image []byte

	// Outfile is the path written when Outfile was set.
	Outfile string
}
