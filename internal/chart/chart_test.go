package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func sampleGantt() GanttSpec {
	return GanttSpec{
		Title:     "exp: Gantt chart for rr with seed 1 processes sorted by startedTime",
		Processes: []string{"idle_process", "process_1", "process_2"},
		Running:   []Interval{{0, 100}, {5, 40}, {40, 90}},
		Waiting:   []Interval{{0, 0}, {0, 5}, {10, 40}},
	}
}

func TestGantt(t *testing.T) {
	p, err := Gantt(sampleGantt())
	require.NoError(t, err)
	assert.Equal(t, "Time", p.X.Label.Text)
	assert.Equal(t, "Process", p.Y.Label.Text)
	assert.Contains(t, p.Title.Text, "Gantt chart for rr")

	// Axis ranges cover every interval.
	assert.LessOrEqual(t, p.X.Min, 0.0)
	assert.GreaterOrEqual(t, p.X.Max, 100.0)
	assert.LessOrEqual(t, p.Y.Min, -0.5)
	assert.GreaterOrEqual(t, p.Y.Max, 2.5)
}

func TestGantt_Errors(t *testing.T) {
	_, err := Gantt(GanttSpec{})
	assert.ErrorIs(t, err, ErrNoRows)

	spec := sampleGantt()
	spec.Waiting = spec.Waiting[:1]
	_, err = Gantt(spec)
	assert.Error(t, err)
}

func TestIntervalBars_DataRange(t *testing.T) {
	b := &intervalBars{Intervals: []Interval{{3, 9}, {1, 4}}, Height: 0.8}
	xmin, xmax, ymin, ymax := b.DataRange()
	assert.Equal(t, 1.0, xmin)
	assert.Equal(t, 9.0, xmax)
	assert.Equal(t, -0.5, ymin)
	assert.Equal(t, 1.5, ymax)

	empty := &intervalBars{}
	xmin, xmax, _, _ = empty.DataRange()
	assert.Equal(t, 0.0, xmin)
	assert.Equal(t, 0.0, xmax)
}

func TestGroupedBars(t *testing.T) {
	p, err := GroupedBars(BarSpec{
		Title:      "exp: rr 1 processes sorted by startedTime",
		XLabel:     "Process",
		Categories: []string{"idle_process", "process_1"},
		Series: []Series{
			{Name: "cpuTime", Values: []float64{20, 30}},
			{Name: "startedTime", Values: []float64{0, 5}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Process", p.X.Label.Text)
	assert.GreaterOrEqual(t, p.Y.Max, 30.0)
}

func TestGroupedBars_Errors(t *testing.T) {
	_, err := GroupedBars(BarSpec{})
	assert.ErrorIs(t, err, ErrNoRows)

	_, err = GroupedBars(BarSpec{Categories: []string{"a"}})
	assert.Error(t, err)

	_, err = GroupedBars(BarSpec{
		Categories: []string{"a", "b"},
		Series:     []Series{{Name: "x", Values: []float64{1}}},
	})
	assert.ErrorContains(t, err, "has 1 values for 2 categories")
}

func TestSeriesColors(t *testing.T) {
	for _, n := range []int{1, 3, 12, 15} {
		colors, err := seriesColors(n)
		require.NoError(t, err)
		assert.Len(t, colors, n)
	}
}

func TestBarGeometry(t *testing.T) {
	w, s := barGeometry(10*vg.Inch, 5, 2)
	assert.Greater(t, float64(w), 0.0)
	assert.Greater(t, float64(s), 0.0)

	w, s = barGeometry(vg.Points(10), 1000, 3)
	assert.Equal(t, vg.Points(1), w)
	assert.Equal(t, vg.Length(0), s)
}

func TestSave(t *testing.T) {
	p, err := Gantt(sampleGantt())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "rr_1_gantt.svg")
	require.NoError(t, Save(p, path, 6*vg.Inch, 4*vg.Inch))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	err = Save(p, filepath.Join(t.TempDir(), "chart.bmp"), 0, 0)
	assert.ErrorContains(t, err, "unsupported chart format")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "rr_7_gantt.svg", FileName("svg", "rr", "7", "gantt"))
	assert.Equal(t, "my-sched_1_bars.png", FileName("png", "my sched", "", "1", "bars"))
}
