package benchplot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/geodata-labs/subench/internal/units"
)

// render dispatches one laid-out figure to exactly one output mode, in
// precedence order: outfile, then in-memory encoding, then the canvas. A
// caller-supplied canvas is always drawn into; with an outfile or format it
// is additionally saved or encoded, same as handing an existing figure to
// the file-writing path. There is no ambient default figure; every call
// draws into state it (or its caller) owns.
func render(l *layout, opts *Options) (*Result, error) {
	if wantsHTML(opts) {
		return renderHTML(l, opts)
	}

	p := opts.Canvas
	fresh := p == nil
	if fresh {
		p = plot.New()
	}
	if err := drawInto(p, l, opts, fresh); err != nil {
		return nil, err
	}

	w := vg.Length(opts.Width) / vg.Length(opts.DPI) * vg.Inch
	h := vg.Length(opts.Height) / vg.Length(opts.DPI) * vg.Inch

	if opts.Outfile != "" {
		if opts.Format != "" {
			// Explicit format overrides whatever the extension says.
			wt, err := p.WriterTo(w, h, opts.Format)
			if err != nil {
				return nil, fmt.Errorf("encode %s: %w", opts.Format, err)
			}
			f, err := os.Create(opts.Outfile)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			if _, err := wt.WriteTo(f); err != nil {
				return nil, fmt.Errorf("write %s: %w", opts.Outfile, err)
			}
			return &Result{Outfile: opts.Outfile}, nil
		}
		if err := p.Save(w, h, opts.Outfile); err != nil {
			return nil, fmt.Errorf("save %s: %w", opts.Outfile, err)
		}
		return &Result{Outfile: opts.Outfile}, nil
	}

	if opts.Format != "" {
		wt, err := p.WriterTo(w, h, opts.Format)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", opts.Format, err)
		}
		var buf bytes.Buffer
		if _, err := wt.WriteTo(&buf); err != nil {
			return nil, err
		}
		return &Result{Image: buf.Bytes()}, nil
	}

	// No outfile, no format: hand back the canvas unfinalized, either the
	// caller's own or a freshly owned one.
	return &Result{Canvas: p}, nil
}

// drawInto adds every non-clipped curve to p and applies the axis bounds.
// The title is set only on a freshly created plot; a caller-supplied canvas
// keeps whatever title it already has.
func drawInto(p *plot.Plot, l *layout, opts *Options, fresh bool) error {
	if fresh && opts.Title != "" {
		main, sub := splitTitle(opts.Title)
		p.Title.Text = main
		if sub != "" {
			p.Title.Text = main + "\n" + sub
		}
	}
	p.X.Label.Text = units.TimeAxisLabel
	p.Y.Label.Text = units.OffsetAxisLabel

	colors := collectionColors(l.collections)
	for _, c := range l.curves {
		if c.clipped {
			continue
		}
		xys := make(plotter.XYs, len(c.points))
		for i, pt := range c.points {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = colors[c.collection]
		line.Width = vg.Points(0.5)
		p.Add(line)
		if opts.PlotLegend && c.label != "" {
			p.Legend.Add(c.label, line)
		}
	}

	p.Legend.Top = false
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	p.X.Min, p.X.Max = l.xMin, l.xMax
	p.Y.Min, p.Y.Max = l.yMin, l.yMax
	return nil
}

// wantsHTML reports whether the output should go through the interactive
// HTML backend instead of gonum/plot.
func wantsHTML(opts *Options) bool {
	if strings.EqualFold(opts.Format, "html") {
		return true
	}
	return opts.Format == "" && strings.EqualFold(filepath.Ext(opts.Outfile), ".html")
}
