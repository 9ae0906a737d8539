package seismic

import (
	"errors"
	"math"
	"testing"
)

// traceAt builds a trace whose receiver sits at offset x from the source,
// with the given samples.
func traceAt(x int32, samples ...float64) *Trace {
	return &Trace{
		Header:  TraceHeader{GroupX: x, CoordScale: 1, SampleIntervalMicro: 4000},
		Samples: samples,
	}
}

func spread(tr *Trace) float64 {
	min, max := tr.Samples[0], tr.Samples[0]
	for _, s := range tr.Samples {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return max - min
}

func TestNormalizeTracesShape(t *testing.T) {
	// Per-trace policy: every trace's post-normalization spread equals
	// minOffsetSpacing*scale regardless of the other traces' amplitudes.
	cols := []*Collection{
		{Traces: []*Trace{
			traceAt(0, -1, 0, 1),
			traceAt(10, -500, 0, 500),
			traceAt(20, 0.001, 0, -0.001),
		}},
		{Traces: []*Trace{
			traceAt(0, -2, 2),
			traceAt(30, 7, -7),
		}},
	}

	minSpacing, err := MinOffsetSpacing(cols)
	if err != nil {
		t.Fatalf("MinOffsetSpacing: %v", err)
	}
	if want := 20.0 / 3.0; math.Abs(minSpacing-want) > 1e-12 {
		t.Fatalf("minSpacing = %v, want %v", minSpacing, want)
	}

	const scale = 3.0
	if err := Normalize(cols, NormalizeTraces, scale); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	want := minSpacing * scale
	for ci, c := range cols {
		for ti, tr := range c.Traces {
			if got := spread(tr); math.Abs(got-want) > 1e-9 {
				t.Errorf("collection %d trace %d spread = %v, want %v", ci, ti, got, want)
			}
		}
	}
}

func TestNormalizeStreamSharesCollectionRange(t *testing.T) {
	cols := []*Collection{
		{Traces: []*Trace{
			traceAt(0, -1, 1),
			traceAt(10, -4, 4),
		}},
	}

	minSpacing, err := MinOffsetSpacing(cols)
	if err != nil {
		t.Fatalf("MinOffsetSpacing: %v", err)
	}

	const scale = 2.0
	if err := Normalize(cols, NormalizeStream, scale); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	// Collection range is 8, so the small trace keeps a quarter of the
	// spread of the large one.
	full := minSpacing * scale
	if got := spread(cols[0].Traces[1]); math.Abs(got-full) > 1e-9 {
		t.Errorf("large trace spread = %v, want %v", got, full)
	}
	if got := spread(cols[0].Traces[0]); math.Abs(got-full/4) > 1e-9 {
		t.Errorf("small trace spread = %v, want %v", got, full/4)
	}
}

func TestNormalizeNoneUsesGlobalRange(t *testing.T) {
	cols := []*Collection{
		{Traces: []*Trace{traceAt(0, -1, 1), traceAt(10, 0, 0.5)}},
		{Traces: []*Trace{traceAt(0, -9, 1), traceAt(10, 2, 3)}},
	}

	minSpacing, err := MinOffsetSpacing(cols)
	if err != nil {
		t.Fatalf("MinOffsetSpacing: %v", err)
	}

	if err := Normalize(cols, NormalizeNone, 1); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	// Global range is 1-(-9)=10; every sample was multiplied by the same
	// factor minSpacing/10.
	factor := minSpacing / 10
	if got := spread(cols[0].Traces[0]); math.Abs(got-2*factor) > 1e-9 {
		t.Errorf("spread = %v, want %v", got, 2*factor)
	}
	if got := spread(cols[1].Traces[0]); math.Abs(got-10*factor) > 1e-9 {
		t.Errorf("spread = %v, want %v", got, 10*factor)
	}
}

func TestNormalizeFlatTraceFails(t *testing.T) {
	cols := []*Collection{
		{Traces: []*Trace{
			traceAt(0, -1, 1),
			traceAt(10, 5, 5, 5),
		}},
	}
	err := Normalize(cols, NormalizeTraces, 3)
	var degenerate *DegenerateTraceError
	if !errors.As(err, &degenerate) {
		t.Fatalf("err = %v, want DegenerateTraceError", err)
	}
	if degenerate.Collection != 0 || degenerate.Trace != 1 {
		t.Errorf("error location = (%d,%d), want (0,1)", degenerate.Collection, degenerate.Trace)
	}
}

func TestNormalizeSingleTraceCollections(t *testing.T) {
	// Each collection has one trace, so every spacing is (max-min)/1 = 0
	// and minOffsetSpacing is 0. Amplitudes collapse to zero; no NaN, no
	// Inf, no error.
	cols := []*Collection{
		{Traces: []*Trace{traceAt(10, -1, 0, 1)}},
		{Traces: []*Trace{traceAt(20, -2, 0, 2)}},
	}
	if err := Normalize(cols, NormalizeNone, 1); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for _, c := range cols {
		for _, s := range c.Traces[0].Samples {
			if s != 0 || math.IsNaN(s) {
				t.Fatalf("sample = %v, want 0", s)
			}
		}
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if err := Normalize(nil, NormalizeTraces, 3); err != nil {
		t.Fatalf("Normalize(nil): %v", err)
	}
}
