package seismic

import "fmt"

// InvalidHeaderError reports a trace header whose coordinate scale field
// cannot be applied. A scalco of zero would divide by zero, so offset
// computation refuses it outright.
type InvalidHeaderError struct {
	Scalco int16
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("seismic: unusable coordinate scale %d in trace header", e.Scalco)
}

// DegenerateTraceError reports a flat trace (zero amplitude range) found
// while normalizing. Dividing by a zero range would propagate NaN/Inf into
// the plot, so normalization aborts instead.
type DegenerateTraceError struct {
	Collection int
	Trace      int
}

func (e *DegenerateTraceError) Error() string {
	return fmt.Sprintf("seismic: zero amplitude range in collection %d trace %d", e.Collection, e.Trace)
}

// IntervalMismatchError reports a trace whose sample interval differs from
// the first trace of the plot set. All collections must share one interval
// for the time axis to be meaningful.
type IntervalMismatchError struct {
	Collection int
	Trace      int
	Want       uint16
	Got        uint16
}

func (e *IntervalMismatchError) Error() string {
	return fmt.Sprintf("seismic: sample interval %dµs in collection %d trace %d, plot set uses %dµs",
		e.Got, e.Collection, e.Trace, e.Want)
}
