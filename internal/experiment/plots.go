package experiment

import (
	"fmt"

	"gonum.org/v1/plot"

	"schedlab/internal/chart"
	"schedlab/internal/trace"
)

// DefaultSortBy orders chart rows when no column is given.
const DefaultSortBy = trace.ColumnStartedTime

// DefaultPlotColumns are the bar chart series when none are given.
var DefaultPlotColumns = []string{trace.ColumnCPUTime, trace.ColumnStartedTime, trace.ColumnTurnaroundTime}

// SeededPlot pairs a seed with its chart.
type SeededPlot struct {
	Seed string
	Plot *plot.Plot
}

// sortedTrace looks up a run and orders its rows ascending by sortBy.
func (e *Experiment) sortedTrace(scheduler, seed, sortBy string) (*trace.Trace, string, error) {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	tr, err := e.OutputForSeed(scheduler, seed)
	if err != nil {
		return nil, sortBy, err
	}
	sorted, err := tr.SortBy(sortBy)
	if err != nil {
		return nil, sortBy, err
	}
	return sorted, sortBy, nil
}

// GanttSpec builds the chart description for one run without rendering it.
func (e *Experiment) GanttSpec(scheduler, seed, sortBy string) (chart.GanttSpec, error) {
	tr, sortBy, err := e.sortedTrace(scheduler, seed, sortBy)
	if err != nil {
		return chart.GanttSpec{}, err
	}

	cols := make(map[string][]float64, 3)
	for _, name := range []string{trace.ColumnCreatedTime, trace.ColumnStartedTime, trace.ColumnTerminatedTime} {
		values, err := tr.Column(name)
		if err != nil {
			return chart.GanttSpec{}, err
		}
		cols[name] = values
	}
	created := cols[trace.ColumnCreatedTime]
	started := cols[trace.ColumnStartedTime]
	terminated := cols[trace.ColumnTerminatedTime]

	spec := chart.GanttSpec{
		Title: fmt.Sprintf("%s: Gantt chart for %s with seed %s processes sorted by %s",
			e.directory, scheduler, seed, sortBy),
		Processes: tr.ProcessIDs(),
		Running:   make([]chart.Interval, tr.Len()),
		Waiting:   make([]chart.Interval, tr.Len()),
	}
	for i := range spec.Processes {
		spec.Running[i] = chart.Interval{Start: started[i], End: terminated[i]}
		spec.Waiting[i] = chart.Interval{Start: created[i], End: started[i]}
	}
	return spec, nil
}

// PlotGantt charts one run: each process's waiting span [createdTime,
// startedTime] and running span [startedTime, terminatedTime].
func (e *Experiment) PlotGantt(scheduler, seed, sortBy string) (*plot.Plot, error) {
	spec, err := e.GanttSpec(scheduler, seed, sortBy)
	if err != nil {
		return nil, err
	}
	return chart.Gantt(spec)
}

// PlotGanttAll charts every input-parameter seed for scheduler. Seeds with no
// output for the scheduler are skipped.
func (e *Experiment) PlotGanttAll(scheduler, sortBy string) ([]SeededPlot, error) {
	traces, ok := e.outputs.Get(scheduler)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchedulerNotFound, scheduler)
	}

	var plots []SeededPlot
	for _, seed := range e.AllSeeds() {
		if !traces.Has(seed) {
			log.Warn("No output for seed, skipping", "scheduler", scheduler, "seed", seed)
			continue
		}
		p, err := e.PlotGantt(scheduler, seed, sortBy)
		if err != nil {
			return nil, fmt.Errorf("gantt %s: %w", ColumnName(scheduler, seed), err)
		}
		plots = append(plots, SeededPlot{Seed: seed, Plot: p})
	}
	return plots, nil
}

// PlotColumns charts the given columns of one run as grouped bars, one group
// per process.
func (e *Experiment) PlotColumns(scheduler, seed string, columns []string, sortBy string) (*plot.Plot, error) {
	if len(columns) == 0 {
		columns = DefaultPlotColumns
	}
	tr, sortBy, err := e.sortedTrace(scheduler, seed, sortBy)
	if err != nil {
		return nil, err
	}
	if tr, err = tr.Select(columns...); err != nil {
		return nil, err
	}

	spec := chart.BarSpec{
		Title:      fmt.Sprintf("%s: %s %s processes sorted by %s", e.directory, scheduler, seed, sortBy),
		XLabel:     "Process",
		Categories: tr.ProcessIDs(),
	}
	for _, name := range columns {
		values, err := tr.Column(name)
		if err != nil {
			return nil, err
		}
		spec.Series = append(spec.Series, chart.Series{Name: name, Values: values})
	}
	return chart.GroupedBars(spec)
}
