// Package chart renders experiment traces as gonum/plot charts.
// Charts are built as in-process *plot.Plot values and written to disk with Save.
package chart

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Interval is a closed time span on the x axis.
type Interval struct {
	Start float64
	End   float64
}

// GanttSpec describes one Gantt chart. Processes, Running and Waiting are
// parallel slices; row 0 is drawn at the bottom.
type GanttSpec struct {
	Title     string
	Processes []string
	Running   []Interval
	Waiting   []Interval
}

// Legend labels and colours of the two Gantt bar series.
const (
	RunningLabel = "Started -> Terminated"
	WaitingLabel = "WaitingTime"
)

var (
	runningColor = color.NRGBA{R: 0, G: 0, B: 255, A: 128}
	waitingColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
)

// ErrNoRows is returned when a chart would have no rows to draw.
var ErrNoRows = errors.New("chart has no rows")

// Gantt builds a horizontal interval chart with one row per process.
func Gantt(spec GanttSpec) (*plot.Plot, error) {
	n := len(spec.Processes)
	if n == 0 {
		return nil, ErrNoRows
	}
	if len(spec.Running) != n || len(spec.Waiting) != n {
		return nil, errors.New("gantt: interval count does not match process count")
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Process"

	running := &intervalBars{Intervals: spec.Running, Color: runningColor, Height: 0.8}
	waiting := &intervalBars{Intervals: spec.Waiting, Color: waitingColor, Height: 0.8}
	p.Add(running, waiting)
	p.Legend.Add(RunningLabel, running)
	p.Legend.Add(WaitingLabel, waiting)
	p.Legend.Top = true

	p.NominalY(spec.Processes...)
	return p, nil
}

// intervalBars draws one horizontal bar per row spanning [Start, End].
type intervalBars struct {
	Intervals []Interval
	Color     color.Color

	// Height is the bar thickness as a fraction of the row pitch.
	Height float64
}

// Plot implements the plot.Plotter interface.
func (b *intervalBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for row, iv := range b.Intervals {
		if iv.End <= iv.Start {
			continue
		}
		y0 := trY(float64(row) - b.Height/2)
		y1 := trY(float64(row) + b.Height/2)
		x0, x1 := trX(iv.Start), trX(iv.End)
		pts := []vg.Point{
			{X: x0, Y: y0},
			{X: x0, Y: y1},
			{X: x1, Y: y1},
			{X: x1, Y: y0},
		}
		c.FillPolygon(b.Color, c.ClipPolygonXY(pts))
	}
}

// DataRange implements the plot.DataRanger interface.
func (b *intervalBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, iv := range b.Intervals {
		xmin = min(xmin, iv.Start, iv.End)
		xmax = max(xmax, iv.Start, iv.End)
	}
	if len(b.Intervals) == 0 {
		xmin, xmax = 0, 0
	}
	return xmin, xmax, -0.5, float64(len(b.Intervals)) - 0.5
}

// Thumbnail implements the plot.Thumbnailer interface.
func (b *intervalBars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.Color, c.ClipPolygonY(pts))
}
