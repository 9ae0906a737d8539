package seismic

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// NormalizePolicy selects which group of traces shares one amplitude
// scaling divisor.
type NormalizePolicy string

const (
	// NormalizeNone scales every trace by one global data range computed
	// across all collections.
	NormalizeNone NormalizePolicy = "none"
	// NormalizeStream scales all traces in a collection by that
	// collection's own data range.
	NormalizeStream NormalizePolicy = "stream"
	// NormalizeTraces scales each trace by its own data range. This is the
	// default policy.
	NormalizeTraces NormalizePolicy = "traces"
)

// Valid reports whether p is a recognized policy.
func (p NormalizePolicy) Valid() bool {
	switch p {
	case NormalizeNone, NormalizeStream, NormalizeTraces:
		return true
	}
	return false
}

// Normalize rescales every trace in place so the amplitude spread fits
// within minOffsetSpacing*scale, where minOffsetSpacing is the smallest
// per-collection average offset spacing. Must run after Align and before
// offsets are added for plotting.
//
// Each sample is multiplied by minOffsetSpacing*scale/range rather than
// divided by range/(minOffsetSpacing*scale): when every collection holds a
// single trace the spacing is zero and the multiplicative form collapses
// amplitudes to zero instead of dividing by zero.
func Normalize(cols []*Collection, policy NormalizePolicy, scale float64) error {
	if len(cols) == 0 {
		return nil
	}

	minSpacing, err := MinOffsetSpacing(cols)
	if err != nil {
		return err
	}

	var dataRange float64
	if policy != NormalizeStream {
		dataRange = globalRange(cols)
	}

	for ci, c := range cols {
		if policy == NormalizeStream {
			min, max, ok := c.AmplitudeRange()
			if !ok {
				continue
			}
			dataRange = max - min
		}
		for ti, tr := range c.Traces {
			r := dataRange
			if policy == NormalizeTraces {
				r = 0
				if len(tr.Samples) > 0 {
					r = floats.Max(tr.Samples) - floats.Min(tr.Samples)
				}
			}
			r = math.Abs(r)
			if r == 0 {
				return &DegenerateTraceError{Collection: ci, Trace: ti}
			}
			floats.Scale(minSpacing*scale/r, tr.Samples)
		}
	}
	return nil
}

// globalRange is the max-min sample value across all collections.
func globalRange(cols []*Collection) float64 {
	var gmin, gmax float64
	seen := false
	for _, c := range cols {
		min, max, ok := c.AmplitudeRange()
		if !ok {
			continue
		}
		if !seen {
			gmin, gmax = min, max
			seen = true
			continue
		}
		if min < gmin {
			gmin = min
		}
		if max > gmax {
			gmax = max
		}
	}
	return gmax - gmin
}
