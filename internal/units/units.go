// Package units provides shared axis-unit constants and conversions for
// the benchmark plots
package units

// Axis labels. SU headers store coordinates in metres (after the scalco
// correction) and sample intervals in microseconds; plots show seconds and
// metres.
const (
	TimeAxisLabel   = "time [s]"
	OffsetAxisLabel = "offset [m]"
)

// MicrosPerSecond converts SU sample intervals to seconds.
const MicrosPerSecond = 1_000_000.0

// SampleTime returns the time in seconds of sample index i at the given
// sample interval in microseconds.
func SampleTime(i int, dtMicro uint16) float64 {
	return float64(i) * float64(dtMicro) / MicrosPerSecond
}

// SecondsPerSample returns the sample interval in seconds.
func SecondsPerSample(dtMicro uint16) float64 {
	return float64(dtMicro) / MicrosPerSecond
}
