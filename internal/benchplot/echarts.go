package benchplot

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	echopts "github.com/go-echarts/go-echarts/v2/opts"

	"github.com/geodata-labs/subench/internal/units"
)

// renderHTML produces a self-contained interactive line chart page. This is
// the module's interactive-display mode: instead of popping a GUI window it
// emits HTML the user opens in a browser. Series sharing a name share one
// legend entry, so naming every curve after its collection yields exactly
// one entry per collection.
func renderHTML(l *layout, o *Options) (*Result, error) {
	main, sub := splitTitle(o.Title)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(echopts.Initialization{
			PageTitle: main,
			Width:     fmt.Sprintf("%dpx", o.Width),
			Height:    fmt.Sprintf("%dpx", o.Height),
		}),
		charts.WithTitleOpts(echopts.Title{Title: main, Subtitle: sub}),
		charts.WithTooltipOpts(echopts.Tooltip{Show: echopts.Bool(true)}),
		charts.WithLegendOpts(echopts.Legend{Show: echopts.Bool(o.PlotLegend)}),
		charts.WithXAxisOpts(echopts.XAxis{
			Type: "value",
			Name: units.TimeAxisLabel,
			Min:  l.xMin,
			Max:  l.xMax,
		}),
		charts.WithYAxisOpts(echopts.YAxis{
			Type: "value",
			Name: units.OffsetAxisLabel,
			Min:  l.yMin,
			Max:  l.yMax,
		}),
	)

	// Legend labels live on the first drawn curve of each collection.
	labels := make(map[int]string, l.collections)
	for _, c := range l.curves {
		if c.label != "" {
			labels[c.collection] = c.label
		}
	}

	colors := collectionColors(l.collections)
	for _, c := range l.curves {
		if c.clipped {
			continue
		}
		name := labels[c.collection]
		if name == "" {
			name = fmt.Sprintf("Stream #%d", c.collection)
		}
		data := make([]echopts.LineData, len(c.points))
		for i, pt := range c.points {
			data[i] = echopts.LineData{Value: []interface{}{pt.X, pt.Y}, Symbol: "none"}
		}
		line.AddSeries(name, data,
			charts.WithLineStyleOpts(echopts.LineStyle{
				Color: hexColor(colors[c.collection]),
				Width: 1,
			}),
			charts.WithItemStyleOpts(echopts.ItemStyle{
				Color: hexColor(colors[c.collection]),
			}),
		)
	}

	if o.Outfile != "" {
		f, err := os.Create(o.Outfile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := line.Render(f); err != nil {
			return nil, fmt.Errorf("render html: %w", err)
		}
		return &Result{Outfile: o.Outfile}, nil
	}

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return &Result{Image: buf.Bytes()}, nil
}
