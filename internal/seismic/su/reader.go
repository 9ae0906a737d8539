// Package su reads Seismic Unix (SU) trace files into seismic.Collections.
//
// An SU file is a SEG-Y data stream without the 3600-byte reel header: a
// bare sequence of trace records, each a 240-byte binary trace header
// followed by ns 4-byte IEEE float samples.
//
// RECORD STRUCTURE (per trace, byte offsets within the 240-byte header):
//
//	├── bytes  70-71  scalco  (int16)  coordinate scale for all coordinates
//	├── bytes  72-75  sx      (int32)  source coordinate x
//	├── bytes  76-79  sy      (int32)  source coordinate y
//	├── bytes  80-83  gx      (int32)  group (receiver) coordinate x
//	├── bytes  84-87  gy      (int32)  group (receiver) coordinate y
//	├── bytes 114-115 ns      (uint16) number of samples in this trace
//	└── bytes 116-117 dt      (uint16) sample interval in microseconds
//
// The remaining header fields are acquisition metadata this module does not
// interpret. SU files carry no byte-order marker; the reader tries
// big-endian (the SEG-Y convention) first and falls back to little-endian
// when the stream does not decode cleanly.
package su

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/geodata-labs/subench/internal/seismic"
)

const (
	traceHeaderSize = 240 // Fixed SU/SEG-Y trace header size in bytes
	bytesPerSample  = 4   // IEEE single-precision float samples

	offScalco = 70  // scalco field offset within the trace header
	offSx     = 72  // source x
	offSy     = 76  // source y
	offGx     = 80  // group x
	offGy     = 84  // group y
	offNs     = 114 // sample count
	offDt     = 116 // sample interval (µs)
)

// LoadError reports an unreadable or malformed SU source. It wraps the
// underlying cause.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("su: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ReadFile reads an SU file into a collection named after the file's base
// name. Failures are reported as a LoadError.
func ReadFile(path string) (*seismic.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	traces, err := Decode(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return &seismic.Collection{
		Name:   filepath.Base(path),
		Traces: traces,
	}, nil
}

// Decode parses a full SU byte stream, auto-detecting byte order. An empty
// stream, a record truncated mid-header or mid-samples, or a stream that
// decodes under neither byte order is malformed.
func Decode(data []byte) ([]*seismic.Trace, error) {
	if len(data) == 0 {
		return nil, errors.New("empty file")
	}
	traces, bigErr := decode(data, binary.BigEndian)
	if bigErr == nil {
		return traces, nil
	}
	traces, littleErr := decode(data, binary.LittleEndian)
	if littleErr == nil {
		return traces, nil
	}
	return nil, fmt.Errorf("not a valid SU stream (big-endian: %v; little-endian: %v)", bigErr, littleErr)
}

// decode walks the stream as [header][samples] records in one byte order.
func decode(data []byte, bo binary.ByteOrder) ([]*seismic.Trace, error) {
	var traces []*seismic.Trace
	pos := 0
	for pos < len(data) {
		if len(data)-pos < traceHeaderSize {
			return nil, fmt.Errorf("truncated trace header at byte %d", pos)
		}
		hdr := data[pos : pos+traceHeaderSize]

		ns := int(bo.Uint16(hdr[offNs : offNs+2]))
		if ns == 0 {
			return nil, fmt.Errorf("zero sample count at byte %d", pos)
		}

		pos += traceHeaderSize
		if len(data)-pos < ns*bytesPerSample {
			return nil, fmt.Errorf("truncated samples at byte %d (want %d samples)", pos, ns)
		}

		samples := make([]float64, ns)
		for i := 0; i < ns; i++ {
			bits := bo.Uint32(data[pos+i*bytesPerSample:])
			samples[i] = float64(math.Float32frombits(bits))
		}
		pos += ns * bytesPerSample

		traces = append(traces, &seismic.Trace{
			Header: seismic.TraceHeader{
				SourceX:             int32(bo.Uint32(hdr[offSx : offSx+4])),
				SourceY:             int32(bo.Uint32(hdr[offSy : offSy+4])),
				GroupX:              int32(bo.Uint32(hdr[offGx : offGx+4])),
				GroupY:              int32(bo.Uint32(hdr[offGy : offGy+4])),
				CoordScale:          int16(bo.Uint16(hdr[offScalco : offScalco+2])),
				SampleIntervalMicro: bo.Uint16(hdr[offDt : offDt+2]),
			},
			Samples: samples,
		})
	}
	return traces, nil
}
