package experiment

import (
	"fmt"
	"slices"

	"schedlab/internal/trace"
)

// ColumnTable is a wide table holding one column per (scheduler, seed) run.
type ColumnTable struct {
	Names  []string
	Values [][]float64
}

// Rows returns the shared row count.
func (c *ColumnTable) Rows() int {
	if len(c.Values) == 0 {
		return 0
	}
	return len(c.Values[0])
}

// Get returns the column named <scheduler>_<seed>.
func (c *ColumnTable) Get(name string) ([]float64, bool) {
	i := slices.Index(c.Names, name)
	if i < 0 {
		return nil, false
	}
	return c.Values[i], true
}

// ColumnName is the wide-table column name for a run.
func ColumnName(scheduler, seed string) string {
	return scheduler + "_" + seed
}

// OutputColumn gathers one column from every run. Rows are aligned by
// position, so every trace must have the same row count.
func (e *Experiment) OutputColumn(column string) (*ColumnTable, error) {
	out := &ColumnTable{}
	for r := range e.runs() {
		name := ColumnName(r.scheduler, r.seed)
		values, err := r.trace.Column(column)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if len(out.Values) > 0 && len(values) != out.Rows() {
			return nil, fmt.Errorf("%w: %s has %d rows, %s has %d", ErrRaggedColumns,
				name, len(values), out.Names[0], out.Rows())
		}
		out.Names = append(out.Names, name)
		out.Values = append(out.Values, values)
	}
	return out, nil
}

// CPUUtilization computes 100 - ((total - idle) / total) over the cpuTime
// column of one run, where idle is the idle process's cpuTime.
func (e *Experiment) CPUUtilization(scheduler, seed string) (float64, error) {
	tr, err := e.OutputForSeed(scheduler, seed)
	if err != nil {
		return 0, err
	}
	return cpuUtilization(tr)
}

func cpuUtilization(tr *trace.Trace) (float64, error) {
	idle, ok := tr.Value(trace.IdleProcessID, trace.ColumnCPUTime)
	if !ok {
		if !tr.HasColumn(trace.ColumnCPUTime) {
			return 0, fmt.Errorf("%w: %s", ErrColumnNotFound, trace.ColumnCPUTime)
		}
		return 0, ErrNoIdleProcess
	}
	total, err := tr.Sum(trace.ColumnCPUTime)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, ErrZeroCPUTime
	}
	return 100 - ((total - idle) / total), nil
}

// RunSummary holds the derived statistics of one run.
type RunSummary struct {
	Scheduler      string  `yaml:"scheduler" json:"scheduler"`
	Seed           string  `yaml:"seed" json:"seed"`
	Processes      int     `yaml:"processes" json:"processes"`
	CPUUtilization float64 `yaml:"cpu_utilization" json:"cpu_utilization"`
	MeanTurnaround float64 `yaml:"mean_turnaround" json:"mean_turnaround"`
	MeanWaiting    float64 `yaml:"mean_waiting" json:"mean_waiting"`
	Makespan       float64 `yaml:"makespan" json:"makespan"`
	Error          string  `yaml:"error,omitempty" json:"error,omitempty"`
}

// Summary derives per-run statistics for every (scheduler, seed) in load order.
// A run whose statistics cannot be computed records the error text instead.
// The idle process is excluded from the per-process means.
func (e *Experiment) Summary() []RunSummary {
	var out []RunSummary
	for r := range e.runs() {
		out = append(out, summarize(r.scheduler, r.seed, r.trace))
	}
	return out
}

func summarize(scheduler, seed string, tr *trace.Trace) RunSummary {
	s := RunSummary{Scheduler: scheduler, Seed: seed}

	util, err := cpuUtilization(tr)
	if err != nil {
		s.Error = err.Error()
		return s
	}
	s.CPUUtilization = util

	ids := tr.ProcessIDs()
	turnaround, err1 := tr.Column(trace.ColumnTurnaroundTime)
	created, err2 := tr.Column(trace.ColumnCreatedTime)
	started, err3 := tr.Column(trace.ColumnStartedTime)
	terminated, err4 := tr.Column(trace.ColumnTerminatedTime)
	for _, err := range []error{err1, err2, err3, err4} {
		if err != nil {
			s.Error = err.Error()
			return s
		}
	}

	var sumTurnaround, sumWaiting float64
	for i, id := range ids {
		s.Makespan = max(s.Makespan, terminated[i])
		if id == trace.IdleProcessID {
			continue
		}
		s.Processes++
		sumTurnaround += turnaround[i]
		sumWaiting += started[i] - created[i]
	}
	if s.Processes > 0 {
		s.MeanTurnaround = sumTurnaround / float64(s.Processes)
		s.MeanWaiting = sumWaiting / float64(s.Processes)
	}
	return s
}
