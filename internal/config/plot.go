// Package config loads benchmark plot options from JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/geodata-labs/subench/internal/benchplot"
	"github.com/geodata-labs/subench/internal/seismic"
)

// PlotConfig mirrors benchplot.Options with pointer-typed fields so a JSON
// file can set only the options it cares about; omitted fields keep their
// defaults. The same document works for every invocation of the CLI, so a
// comparison suite can share one config across runs.
type PlotConfig struct {
	Normalize         *string  `json:"normalize,omitempty"`
	ClipPartialTraces *bool    `json:"clip_partial_traces,omitempty"`
	TrimToShortest    *bool    `json:"trim_to_smallest_trace,omitempty"`
	Scale             *float64 `json:"scale,omitempty"`
	XMin              *float64 `json:"xmin,omitempty"`
	XMax              *float64 `json:"xmax,omitempty"`
	YMin              *float64 `json:"ymin,omitempty"`
	YMax              *float64 `json:"ymax,omitempty"`
	PlotLegend        *bool    `json:"plot_legend,omitempty"`
	Title             *string  `json:"title,omitempty"`
	Width             *int     `json:"width,omitempty"`
	Height            *int     `json:"height,omitempty"`
	DPI               *int     `json:"dpi,omitempty"`
	Outfile           *string  `json:"outfile,omitempty"`
	Format            *string  `json:"format,omitempty"`
}

// LoadPlotConfig reads and validates a JSON plot config. Partial configs
// are safe; only the fields present in the file are applied later.
func LoadPlotConfig(path string) (*PlotConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &PlotConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *PlotConfig) Validate() error {
	if c.Normalize != nil {
		if !seismic.NormalizePolicy(*c.Normalize).Valid() {
			return fmt.Errorf("normalize must be one of none, stream, traces; got %q", *c.Normalize)
		}
	}
	if c.Scale != nil && *c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %f", *c.Scale)
	}
	if c.Width != nil && *c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", *c.Width)
	}
	if c.Height != nil && *c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", *c.Height)
	}
	if c.DPI != nil && *c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", *c.DPI)
	}
	return nil
}

// Apply overlays the set fields onto opts and returns it.
func (c *PlotConfig) Apply(opts *benchplot.Options) *benchplot.Options {
	if c.Normalize != nil {
		opts.Normalize = seismic.NormalizePolicy(*c.Normalize)
	}
	if c.ClipPartialTraces != nil {
		opts.ClipPartialTraces = *c.ClipPartialTraces
	}
	if c.TrimToShortest != nil {
		opts.TrimToShortest = *c.TrimToShortest
	}
	if c.Scale != nil {
		opts.Scale = *c.Scale
	}
	if c.XMin != nil {
		opts.XMin = c.XMin
	}
	if c.XMax != nil {
		opts.XMax = c.XMax
	}
	if c.YMin != nil {
		opts.YMin = c.YMin
	}
	if c.YMax != nil {
		opts.YMax = c.YMax
	}
	if c.PlotLegend != nil {
		opts.PlotLegend = *c.PlotLegend
	}
	if c.Title != nil {
		opts.Title = *c.Title
	}
	if c.Width != nil {
		opts.Width = *c.Width
	}
	if c.Height != nil {
		opts.Height = *c.Height
	}
	if c.DPI != nil {
		opts.DPI = *c.DPI
	}
	if c.Outfile != nil {
		opts.Outfile = *c.Outfile
	}
	if c.Format != nil {
		opts.Format = *c.Format
	}
	return opts
}
