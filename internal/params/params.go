// Package params parses the key=value parameter files written by the scheduling simulator.
package params

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"schedlab/internal/logger"
	"schedlab/internal/ordered"
	"schedlab/pkg/stringprocessing"
)

// Separator splits a parameter line into name and value.
const Separator = "="

// MaxLineLength is the longest parameter line Parse accepts.
const MaxLineLength = 1024 * 1024

// Table maps parameter names to their raw string values in file order.
type Table struct {
	entries ordered.Map[string, string]
}

// NewTable creates an empty parameter table.
func NewTable() *Table {
	return &Table{}
}

// Set stores a value. A repeated name overwrites the value and keeps its position.
func (t *Table) Set(name, value string) {
	t.entries.Set(name, value)
}

// Get returns the raw value for name.
func (t *Table) Get(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	return t.entries.Get(name)
}

// Int returns the value for name parsed as an integer.
func (t *Table) Int(name string) (int, error) {
	v, ok := t.Get(name)
	if !ok {
		return 0, fmt.Errorf("parameter %s not set", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: %w", name, err)
	}
	return n, nil
}

// Float returns the value for name parsed as a float.
func (t *Table) Float(name string) (float64, error) {
	v, ok := t.Get(name)
	if !ok {
		return 0, fmt.Errorf("parameter %s not set", name)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: %w", name, err)
	}
	return f, nil
}

// Bool returns the value for name as a boolean ("true", "yes", "1", "off", ...).
func (t *Table) Bool(name string) (bool, error) {
	v, ok := t.Get(name)
	if !ok {
		return false, fmt.Errorf("parameter %s not set", name)
	}
	b, err := stringprocessing.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parameter %s: %w", name, err)
	}
	return b, nil
}

// Value kinds reported by Kind.
const (
	KindInt    = "int"
	KindFloat  = "float"
	KindBool   = "bool"
	KindString = "string"
)

// Kind classifies the value for name by the first typed accessor that accepts
// it: Int, then Float, then Bool. Other values are strings; a missing name
// yields "".
func (t *Table) Kind(name string) string {
	if _, ok := t.Get(name); !ok {
		return ""
	}
	if _, err := t.Int(name); err == nil {
		return KindInt
	}
	if _, err := t.Float(name); err == nil {
		return KindFloat
	}
	if _, err := t.Bool(name); err == nil {
		return KindBool
	}
	return KindString
}

// Names returns the parameter names in file order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	return t.entries.Keys()
}

// Len returns the number of parameters.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.entries.Len()
}

// Map returns a plain map copy of the table.
func (t *Table) Map() map[string]string {
	out := make(map[string]string, t.Len())
	if t == nil {
		return out
	}
	for k, v := range t.entries.All() {
		out[k] = v
	}
	return out
}

// String renders the table back into key=value lines.
func (t *Table) String() string {
	var sb strings.Builder
	if t == nil {
		return ""
	}
	for k, v := range t.entries.All() {
		sb.WriteString(k)
		sb.WriteString(Separator)
		sb.WriteString(v)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads key=value lines from r. Blank lines, '#' and '!' comments and
// lines that do not split into exactly one name and one value are skipped.
// Only read errors are returned.
func Parse(r io.Reader) (*Table, error) {
	table := NewTable()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		fields := strings.Split(line, Separator)
		if len(fields) != 2 {
			logger.Debug("Skipping malformed parameter line", "line", lineNo, "text", line)
			continue
		}
		name := strings.TrimSpace(fields[0])
		if name == "" {
			logger.Debug("Skipping parameter line without name", "line", lineNo)
			continue
		}
		table.Set(name, strings.TrimSpace(fields[1]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read parameters: %w", err)
	}
	return table, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
