// Package seismic holds the in-memory data model for Seismic Unix trace
// collections and the preparation stages (alignment, offset geometry,
// amplitude normalization) that run before a benchmark plot is laid out.
package seismic

// TraceHeader carries the geometry and acquisition metadata for one trace.
// Coordinates are stored in the file's native integer units; CoordScale is
// the SU "scalco" field that converts them to real lengths. Headers are
// immutable after load.
type TraceHeader struct {
	SourceX int32
	SourceY int32
	GroupX  int32
	GroupY  int32

	// CoordScale is applied to all four coordinates. Positive values are
	// multipliers or, for 2..9, base-ten exponents (a non-standard
	// convention some modelling codes emit). Negative values are divisors.
	CoordScale int16

	// SampleIntervalMicro is the sample interval in microseconds. The plot
	// set shares one interval; see CheckSampleInterval.
	SampleIntervalMicro uint16
}

// Trace is one recorded time series: a header plus its amplitude samples.
// Samples are mutated in place by exactly two stages, in order: Align
// (truncation) and Normalize (rescaling).
type Trace struct {
	Header  TraceHeader
	Samples []float64
}

// Collection is an ordered set of traces from one acquisition or simulation
// run. Each collection draws in one color with one legend entry.
type Collection struct {
	// Name is the originating file's base name, or empty when the
	// collection was built in memory. Legend labels fall back to a
	// synthetic "Stream #N" when empty.
	Name string

	Traces []*Trace
}

// AmplitudeRange returns the minimum and maximum sample value across all
// traces in the collection. ok is false when the collection has no samples.
func (c *Collection) AmplitudeRange() (min, max float64, ok bool) {
	for _, tr := range c.Traces {
		for _, s := range tr.Samples {
			if !ok {
				min, max = s, s
				ok = true
				continue
			}
			if s < min {
				min = s
			}
			if s > max {
				max = s
			}
		}
	}
	return min, max, ok
}

// OffsetSpacing returns the collection's average offset spacing,
// (maxOffset-minOffset)/traceCount. A single-trace collection has spacing
// zero; callers must tolerate that (the normalizer collapses amplitudes to
// zero rather than dividing by it).
func (c *Collection) OffsetSpacing() (float64, error) {
	if len(c.Traces) == 0 {
		return 0, nil
	}
	var min, max float64
	for i, tr := range c.Traces {
		off, err := Offset(tr.Header)
		if err != nil {
			return 0, err
		}
		if i == 0 {
			min, max = off, off
			continue
		}
		if off < min {
			min = off
		}
		if off > max {
			max = off
		}
	}
	return (max - min) / float64(len(c.Traces)), nil
}

// MinOffsetSpacing returns the smallest per-collection offset spacing across
// all collections. It is the reference length the normalizer scales
// amplitudes against.
func MinOffsetSpacing(cols []*Collection) (float64, error) {
	var min float64
	for i, c := range cols {
		sp, err := c.OffsetSpacing()
		if err != nil {
			return 0, err
		}
		if i == 0 || sp < min {
			min = sp
		}
	}
	return min, nil
}

// SampleInterval returns the plot set's sample interval in microseconds,
// taken from the first trace of the first collection, after verifying every
// trace agrees. A mismatch returns an IntervalMismatchError; silently
// accepting one would mis-align the time axis between collections.
func SampleInterval(cols []*Collection) (uint16, error) {
	var ref uint16
	seen := false
	for ci, c := range cols {
		for ti, tr := range c.Traces {
			dt := tr.Header.SampleIntervalMicro
			if !seen {
				ref = dt
				seen = true
				continue
			}
			if dt != ref {
				return 0, &IntervalMismatchError{
					Collection: ci,
					Trace:      ti,
					Want:       ref,
					Got:        dt,
				}
			}
		}
	}
	return ref, nil
}
