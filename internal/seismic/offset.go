package seismic

import "math"

// Offset returns the source-to-receiver distance for one trace header, in
// the file's native length units after applying the coordinate scale.
//
// Some modelling codes use the scalco field in a non-standard way: instead
// of a plain multiplier or divisor they store a base-ten exponent. Any
// absolute scalco in 2..9 is treated as that exponent, so the effective
// divisor becomes 10^scalco; 1 and values >= 10 divide directly.
func Offset(h TraceHeader) (float64, error) {
	scalco := float64(h.CoordScale)
	if scalco < 0 {
		scalco = -scalco
	}
	if scalco == 0 {
		return 0, &InvalidHeaderError{Scalco: h.CoordScale}
	}
	if scalco < 10 && scalco != 1 {
		scalco = math.Pow(10, scalco)
	}
	dx := float64(h.GroupX) - float64(h.SourceX)
	dy := float64(h.GroupY) - float64(h.SourceY)
	return math.Hypot(dx, dy) / scalco, nil
}
