package su

import (
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// buildTrace assembles one SU trace record with realistic header values.
func buildTrace(bo binary.ByteOrder, scalco int16, sx, sy, gx, gy int32, dt uint16, samples []float32) []byte {
	rec := make([]byte, traceHeaderSize+len(samples)*bytesPerSample)

	bo.PutUint16(rec[offScalco:], uint16(scalco))
	bo.PutUint32(rec[offSx:], uint32(sx))
	bo.PutUint32(rec[offSy:], uint32(sy))
	bo.PutUint32(rec[offGx:], uint32(gx))
	bo.PutUint32(rec[offGy:], uint32(gy))
	bo.PutUint16(rec[offNs:], uint16(len(samples)))
	bo.PutUint16(rec[offDt:], dt)

	for i, s := range samples {
		bo.PutUint32(rec[traceHeaderSize+i*bytesPerSample:], math.Float32bits(s))
	}
	return rec
}

func TestDecodeBigEndian(t *testing.T) {
	data := append(
		buildTrace(binary.BigEndian, 1, 0, 0, 300, 400, 4000, []float32{0.5, -0.5, 1.25}),
		buildTrace(binary.BigEndian, -100, 100, 0, 400, 400, 4000, []float32{1, 2})...,
	)

	traces, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(traces) != 2 {
		t.Fatalf("got %d traces, want 2", len(traces))
	}

	h := traces[0].Header
	if h.CoordScale != 1 || h.GroupX != 300 || h.GroupY != 400 || h.SampleIntervalMicro != 4000 {
		t.Errorf("header = %+v", h)
	}
	if len(traces[0].Samples) != 3 || traces[0].Samples[2] != 1.25 {
		t.Errorf("samples = %v", traces[0].Samples)
	}
	if traces[1].Header.CoordScale != -100 {
		t.Errorf("CoordScale = %d, want -100", traces[1].Header.CoordScale)
	}
}

func TestDecodeLittleEndian(t *testing.T) {
	data := buildTrace(binary.LittleEndian, 1, 0, 0, 30, 40, 2000, []float32{0.25, -0.25})

	traces, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(traces) != 1 {
		t.Fatalf("got %d traces, want 1", len(traces))
	}
	h := traces[0].Header
	if h.GroupX != 30 || h.GroupY != 40 || h.SampleIntervalMicro != 2000 {
		t.Errorf("header = %+v", h)
	}
	if traces[0].Samples[0] != 0.25 {
		t.Errorf("samples = %v", traces[0].Samples)
	}
}

func TestDecodeTruncatedSamples(t *testing.T) {
	data := buildTrace(binary.BigEndian, 1, 0, 0, 1, 1, 4000, []float32{1, 2, 3})
	if _, err := Decode(data[:len(data)-4]); err == nil {
		t.Fatal("expected error for truncated samples")
	}
}

func TestDecodeTruncatedHeader(t *testing.T) {
	if _, err := Decode(make([]byte, 100)); err == nil {
		t.Fatal("expected error for truncated header")
	}
}

func TestDecodeEmpty(t *testing.T) {
	if _, err := Decode(nil); err == nil {
		t.Fatal("expected error for empty stream")
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seismic01_fdmpi_vz.su")
	data := buildTrace(binary.BigEndian, 1, 0, 0, 3, 4, 4000, []float32{0, 1, 0})
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	col, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if col.Name != "seismic01_fdmpi_vz.su" {
		t.Errorf("Name = %q, want file base name", col.Name)
	}
	if len(col.Traces) != 1 || len(col.Traces[0].Samples) != 3 {
		t.Errorf("unexpected collection shape: %d traces", len(col.Traces))
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.su"))
	var load *LoadError
	if !errors.As(err, &load) {
		t.Fatalf("err = %v, want LoadError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadError should wrap the underlying cause, got %v", err)
	}
}
