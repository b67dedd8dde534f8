// Package trace holds the per-process timing tables written by the scheduling simulator.
//
// A trace file is whitespace-delimited: a header row naming the columns followed by
// one numeric row per simulated process. Every row is keyed by a process id derived
// from its id column: id 0 is the idle process, anything else is process_<id>.
package trace

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

// Well-known column names.
const (
	ColumnID             = "id"
	ColumnCPUTime        = "cpuTime"
	ColumnCreatedTime    = "createdTime"
	ColumnStartedTime    = "startedTime"
	ColumnTerminatedTime = "terminatedTime"
	ColumnTurnaroundTime = "turnaroundTime"
)

// IdleProcessID is the process id of the synthetic idle process (id 0).
const IdleProcessID = "idle_process"

// ErrColumnNotFound is returned when a requested column is absent from a trace.
var ErrColumnNotFound = errors.New("column not found")

// ProcessID derives the row key for a process id.
func ProcessID(id int) string {
	if id == 0 {
		return IdleProcessID
	}
	return "process_" + strconv.Itoa(id)
}

// Trace is a column-oriented table of process rows.
type Trace struct {
	columns []string
	data    map[string][]float64
	ids     []string
	index   map[string]int
}

// New builds a trace from column names and per-column values.
// All columns must have the same length and the id column must be present
// and hold integral values.
func New(columns []string, values [][]float64) (*Trace, error) {
	if len(columns) != len(values) {
		return nil, fmt.Errorf("%d column names for %d columns", len(columns), len(values))
	}
	t := &Trace{
		columns: slices.Clone(columns),
		data:    make(map[string][]float64, len(columns)),
	}
	rows := -1
	for i, name := range columns {
		if _, dup := t.data[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		if rows >= 0 && len(values[i]) != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", name, len(values[i]), rows)
		}
		rows = len(values[i])
		t.data[name] = slices.Clone(values[i])
	}

	idCol, ok := t.data[ColumnID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, ColumnID)
	}
	t.ids = make([]string, len(idCol))
	t.index = make(map[string]int, len(idCol))
	for row, v := range idCol {
		if v != float64(int(v)) {
			return nil, fmt.Errorf("row %d: id %v is not an integer", row, v)
		}
		pid := ProcessID(int(v))
		t.ids[row] = pid
		// Duplicate ids are tolerated; the first row wins lookups.
		if _, seen := t.index[pid]; !seen {
			t.index[pid] = row
		}
	}
	return t, nil
}

// Columns returns the column names in file order.
func (t *Trace) Columns() []string {
	return slices.Clone(t.columns)
}

// HasColumn reports whether the trace has the named column.
func (t *Trace) HasColumn(name string) bool {
	_, ok := t.data[name]
	return ok
}

// Len returns the number of rows.
func (t *Trace) Len() int {
	return len(t.ids)
}

// ProcessIDs returns the row keys in row order.
func (t *Trace) ProcessIDs() []string {
	return slices.Clone(t.ids)
}

// Column returns a copy of the named column.
func (t *Trace) Column(name string) ([]float64, error) {
	col, ok := t.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	return slices.Clone(col), nil
}

// Row returns the row index for a process id.
func (t *Trace) Row(processID string) (int, bool) {
	row, ok := t.index[processID]
	return row, ok
}

// Value returns one cell addressed by process id and column.
func (t *Trace) Value(processID, column string) (float64, bool) {
	row, ok := t.Row(processID)
	if !ok {
		return 0, false
	}
	col, ok := t.data[column]
	if !ok {
		return 0, false
	}
	return col[row], true
}

// Sum adds up a column.
func (t *Trace) Sum(column string) (float64, error) {
	col, ok := t.data[column]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}
	var total float64
	for _, v := range col {
		total += v
	}
	return total, nil
}

// SortBy returns a new trace with rows ordered ascending by column.
// Ties keep their original order.
func (t *Trace) SortBy(column string) (*Trace, error) {
	key, ok := t.data[column]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}
	order := make([]int, t.Len())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case key[a] < key[b]:
			return -1
		case key[a] > key[b]:
			return 1
		default:
			return 0
		}
	})
	return t.reorder(order), nil
}

// Select returns a new trace restricted to the given columns (plus id).
func (t *Trace) Select(columns ...string) (*Trace, error) {
	names := []string{ColumnID}
	for _, c := range columns {
		if !t.HasColumn(c) {
			return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, c)
		}
		if !slices.Contains(names, c) {
			names = append(names, c)
		}
	}
	values := make([][]float64, len(names))
	for i, n := range names {
		values[i] = t.data[n]
	}
	return New(names, values)
}

func (t *Trace) reorder(order []int) *Trace {
	out := &Trace{
		columns: slices.Clone(t.columns),
		data:    make(map[string][]float64, len(t.data)),
		ids:     make([]string, len(order)),
		index:   make(map[string]int, len(order)),
	}
	for name, col := range t.data {
		sorted := make([]float64, len(order))
		for i, src := range order {
			sorted[i] = col[src]
		}
		out.data[name] = sorted
	}
	for i, src := range order {
		pid := t.ids[src]
		out.ids[i] = pid
		if _, seen := out.index[pid]; !seen {
			out.index[pid] = i
		}
	}
	return out
}
