// Package main provides the subench command: it renders a comparative
// benchmark plot from one or more Seismic Unix files so the output of
// different wave-propagation codes can be compared on one time/offset axis.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/geodata-labs/subench/internal/benchplot"
	"github.com/geodata-labs/subench/internal/config"
	"github.com/geodata-labs/subench/internal/monitoring"
	"github.com/geodata-labs/subench/internal/seismic"
	"github.com/geodata-labs/subench/internal/version"
)

// cliConfig holds the parsed command line.
type cliConfig struct {
	Files        []string
	ConfigFile   string
	ManifestFile string
	Verbose      bool
	ShowVersion  bool

	Normalize string
	Clip      bool
	Trim      bool
	Scale     float64
	Legend    bool
	Title     string
	Width     int
	Height    int
	DPI       int
	Outfile   string
	Format    string

	XMin, XMax, YMin, YMax float64

	// set records which flags were given explicitly, so defaults and
	// config-file values survive untouched knobs.
	set map[string]bool
}

// runManifest is the optional JSON record of one render, so comparison
// suites can track what was plotted from which inputs.
type runManifest struct {
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	Inputs    []string  `json:"inputs"`
	Outfile   string    `json:"outfile,omitempty"`
	Format    string    `json:"format,omitempty"`
	Normalize string    `json:"normalize"`
	Scale     float64   `json:"scale"`
	Version   string    `json:"version"`
}

func parseFlags(args []string) (*cliConfig, error) {
	c := &cliConfig{set: make(map[string]bool)}
	fs := flag.NewFlagSet("subench", flag.ContinueOnError)

	fs.StringVar(&c.ConfigFile, "config", "", "JSON plot config file (flags override it)")
	fs.StringVar(&c.ManifestFile, "manifest", "", "write a JSON run manifest to this path")
	fs.BoolVar(&c.Verbose, "verbose", false, "enable diagnostic logging")
	fs.BoolVar(&c.ShowVersion, "version", false, "print version and exit")

	fs.StringVar(&c.Normalize, "normalize", string(seismic.NormalizeTraces), "amplitude normalization: none, stream or traces")
	fs.BoolVar(&c.Clip, "clip", true, "skip traces that fall partly outside explicit y bounds")
	fs.BoolVar(&c.Trim, "trim", true, "trim all traces to the shortest one")
	fs.Float64Var(&c.Scale, "scale", 3.0, "amplitude scale factor")
	fs.BoolVar(&c.Legend, "legend", true, "draw the per-file legend")
	fs.StringVar(&c.Title, "title", "", "plot title; a literal \\n splits title and subtitle")
	fs.IntVar(&c.Width, "width", 800, "output width in pixels")
	fs.IntVar(&c.Height, "height", 600, "output height in pixels")
	fs.IntVar(&c.DPI, "dpi", 100, "dots per inch")
	fs.StringVar(&c.Outfile, "out", "", "output file; format inferred from extension")
	fs.StringVar(&c.Format, "format", "", "output format override (png, pdf, svg, html, ...)")

	fs.Float64Var(&c.XMin, "xmin", math.NaN(), "minimum of the time axis")
	fs.Float64Var(&c.XMax, "xmax", math.NaN(), "maximum of the time axis")
	fs.Float64Var(&c.YMin, "ymin", math.NaN(), "minimum of the offset axis")
	fs.Float64Var(&c.YMax, "ymax", math.NaN(), "maximum of the offset axis")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { c.set[f.Name] = true })
	c.Files = fs.Args()
	return c, nil
}

// buildOptions merges defaults, the optional config file, and explicitly
// set flags, in that order of precedence.
func buildOptions(c *cliConfig) (*benchplot.Options, error) {
	opts := benchplot.DefaultOptions()

	if c.ConfigFile != "" {
		cfg, err := config.LoadPlotConfig(c.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg.Apply(opts)
	}

	if c.set["normalize"] {
		opts.Normalize = seismic.NormalizePolicy(c.Normalize)
	}
	if !opts.Normalize.Valid() {
		return nil, fmt.Errorf("unknown normalize policy %q", opts.Normalize)
	}
	if c.set["clip"] {
		opts.ClipPartialTraces = c.Clip
	}
	if c.set["trim"] {
		opts.TrimToShortest = c.Trim
	}
	if c.set["scale"] {
		opts.Scale = c.Scale
	}
	if c.set["legend"] {
		opts.PlotLegend = c.Legend
	}
	if c.set["title"] {
		opts.Title = c.Title
	}
	if c.set["width"] {
		opts.Width = c.Width
	}
	if c.set["height"] {
		opts.Height = c.Height
	}
	if c.set["dpi"] {
		opts.DPI = c.DPI
	}
	if c.set["out"] {
		opts.Outfile = c.Outfile
	}
	if c.set["format"] {
		opts.Format = c.Format
	}
	if c.set["xmin"] {
		opts.XMin = &c.XMin
	}
	if c.set["xmax"] {
		opts.XMax = &c.XMax
	}
	if c.set["ymin"] {
		opts.YMin = &c.YMin
	}
	if c.set["ymax"] {
		opts.YMax = &c.YMax
	}
	return opts, nil
}

func writeManifest(path string, m *runManifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func main() {
	c, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if c.ShowVersion {
		fmt.Printf("subench %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	if !c.Verbose {
		monitoring.SetLogger(nil)
	}

	if len(c.Files) == 0 {
		log.Fatal("no SU files given")
	}

	opts, err := buildOptions(c)
	if err != nil {
		log.Fatalf("invalid options: %v", err)
	}
	if opts.Outfile == "" && opts.Format == "" {
		// A CLI run has nowhere to hand an in-memory canvas to.
		log.Fatal("either -out or -format is required")
	}

	res, err := benchplot.PlotFiles(c.Files, opts)
	if err != nil {
		log.Fatalf("plot failed: %v", err)
	}

	switch {
	case res.Outfile != "":
		monitoring.Logf("subench: wrote %s", res.Outfile)
	case res.Image != nil:
		// -format without -out streams the encoded image to stdout.
		if _, err := os.Stdout.Write(res.Image); err != nil {
			log.Fatalf("write image: %v", err)
		}
	}

	if c.ManifestFile != "" {
		m := &runManifest{
			RunID:     uuid.New().String(),
			Timestamp: time.Now().UTC(),
			Inputs:    c.Files,
			Outfile:   res.Outfile,
			Format:    opts.Format,
			Normalize: string(opts.Normalize),
			Scale:     opts.Scale,
			Version:   version.Version,
		}
		if err := writeManifest(c.ManifestFile, m); err != nil {
			log.Fatalf("write manifest: %v", err)
		}
	}
}
