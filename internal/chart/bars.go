package chart

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Series is one named set of bar heights, one per category.
type Series struct {
	Name   string
	Values []float64
}

// BarSpec describes a grouped bar chart.
type BarSpec struct {
	Title      string
	XLabel     string
	Categories []string
	Series     []Series

	// Width is the intended canvas width; it sizes the bars.
	Width vg.Length
}

// GroupedBars builds a vertical bar chart with the series side by side per category.
func GroupedBars(spec BarSpec) (*plot.Plot, error) {
	if len(spec.Categories) == 0 {
		return nil, ErrNoRows
	}
	if len(spec.Series) == 0 {
		return nil, errors.New("bars: no series")
	}
	for _, s := range spec.Series {
		if len(s.Values) != len(spec.Categories) {
			return nil, fmt.Errorf("bars: series %q has %d values for %d categories",
				s.Name, len(s.Values), len(spec.Categories))
		}
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Legend.Top = true

	colors, err := seriesColors(len(spec.Series))
	if err != nil {
		return nil, err
	}

	barWidth, barSpacing := barGeometry(spec.Width, len(spec.Categories), len(spec.Series))
	groupWidth := (barWidth + barSpacing) * vg.Length(len(spec.Series)-1)

	for i, s := range spec.Series {
		bc, err := plotter.NewBarChart(plotter.Values(s.Values), barWidth)
		if err != nil {
			return nil, fmt.Errorf("bars: series %q: %w", s.Name, err)
		}
		bc.Offset = (barWidth+barSpacing)*vg.Length(i) - groupWidth/2
		bc.Color = colors[i]
		bc.LineStyle.Width = 0

		p.Add(bc)
		p.Legend.Add(s.Name, bc)
	}

	p.NominalX(spec.Categories...)
	return p, nil
}

// barGeometry spreads the bars over roughly 80% of each category slot.
func barGeometry(width vg.Length, categories, series int) (barWidth, spacing vg.Length) {
	if width <= 0 {
		width = DefaultWidth
	}
	slot := width * 0.8 / vg.Length(categories)
	barWidth = slot * 0.8 / vg.Length(series)
	spacing = barWidth * 0.1
	if barWidth < vg.Points(1) {
		barWidth = vg.Points(1)
		spacing = 0
	}
	return barWidth, spacing
}

// seriesColors returns n colours from the qualitative "Paired" palette, cycling
// when more colours are needed than the palette holds.
func seriesColors(n int) ([]color.Color, error) {
	size := min(max(n, 3), 12)
	palette, err := brewer.GetPalette(brewer.TypeQualitative, "Paired", size)
	if err != nil {
		return nil, err
	}
	base := palette.Colors()
	out := make([]color.Color, n)
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out, nil
}
