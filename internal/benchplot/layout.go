package benchplot

import (
	"fmt"
	"math"

	"github.com/geodata-labs/subench/internal/seismic"
	"github.com/geodata-labs/subench/internal/units"
)

// point is one (time, offset+amplitude) sample of a curve.
type point struct {
	X, Y float64
}

// curve is one trace positioned on the shared axes, ready to draw.
type curve struct {
	collection int
	// label is set only on the first drawable trace of a collection; it
	// becomes that collection's single legend entry.
	label string
	// clipped curves contributed to the axis bounds but are not drawn.
	clipped bool
	points  []point
}

// layout is the fully derived plot geometry: every curve plus the final
// axis bounds. It carries no rendering state, so both the gonum and the
// echarts backends consume it unchanged.
type layout struct {
	curves                 []curve
	collections            int
	xMin, xMax, yMin, yMax float64
}

// computeLayout runs the placement stage: per-trace offsets are recomputed
// here (deliberately not cached from the normalization stage, which uses
// offsets only as a scale reference), running bounds are tracked across
// every trace including clipped ones, and the final axis bounds are
// derived.
func computeLayout(cols []*seismic.Collection, opts *Options) (*layout, error) {
	dt, err := seismic.SampleInterval(cols)
	if err != nil {
		return nil, err
	}

	l := &layout{collections: len(cols)}
	minY, maxY := math.Inf(1), math.Inf(-1)
	maxX := math.Inf(-1)

	for ci, col := range cols {
		labelPending := collectionLabel(col, ci)
		for _, tr := range col.Traces {
			offset, err := seismic.Offset(tr.Header)
			if err != nil {
				return nil, err
			}

			pts := make([]point, len(tr.Samples))
			trMin, trMax := math.Inf(1), math.Inf(-1)
			for i, s := range tr.Samples {
				y := s + offset
				pts[i] = point{X: units.SampleTime(i, dt), Y: y}
				if y < trMin {
					trMin = y
				}
				if y > trMax {
					trMax = y
				}
			}
			if len(pts) > 0 {
				if trMin < minY {
					minY = trMin
				}
				if trMax > maxY {
					maxY = trMax
				}
				if x := pts[len(pts)-1].X; x > maxX {
					maxX = x
				}
			}

			// Clipping tests against the explicit bounds only, never the
			// automatic ones, and happens after bound tracking.
			clipped := false
			if opts.ClipPartialTraces && len(pts) > 0 {
				if opts.YMin != nil && trMin < *opts.YMin {
					clipped = true
				}
				if opts.YMax != nil && trMax > *opts.YMax {
					clipped = true
				}
			}

			c := curve{collection: ci, clipped: clipped, points: pts}
			if !clipped && labelPending != "" {
				c.label = labelPending
				labelPending = ""
			}
			l.curves = append(l.curves, c)
		}
	}

	l.applyBounds(minY, maxY, maxX, opts)
	return l, nil
}

// applyBounds derives the final axis extents. An explicit y bound tighter
// than the data is honored; otherwise the observed range plus span/50
// padding wins. The x axis floors at zero and may only be shrunk by an
// explicit xmax.
func (l *layout) applyBounds(minY, maxY, maxX float64, opts *Options) {
	// No samples at all: collapse to an empty extent instead of Inf.
	if minY > maxY {
		minY, maxY = 0, 0
	}
	if math.IsInf(maxX, -1) {
		maxX = 0
	}
	pad := (maxY - minY) / 50.0

	l.yMax = maxY + pad
	if opts.YMax != nil && *opts.YMax <= maxY {
		l.yMax = *opts.YMax
	}
	l.yMin = minY - pad
	if opts.YMin != nil && *opts.YMin >= minY {
		l.yMin = *opts.YMin
	}

	l.xMin = 0
	if opts.XMin != nil && *opts.XMin >= 0 {
		l.xMin = *opts.XMin
	}
	l.xMax = maxX
	if opts.XMax != nil && *opts.XMax <= maxX {
		l.xMax = *opts.XMax
	}
}

// collectionLabel resolves the legend label: the originating file name when
// the loader recorded one, else a synthetic stream number.
func collectionLabel(c *seismic.Collection, idx int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("Stream #%d", idx)
}

// splitTitle separates "main\nsub" titles into a title and a subtitle.
func splitTitle(title string) (main, sub string) {
	for i := 0; i < len(title); i++ {
		if title[i] == '\n' {
			return title[:i], title[i+1:]
		}
	}
	return title, ""
}
