package report

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"schedlab/internal/params"
)

// DiffOp marks a line in a parameter diff.
type DiffOp int

// Line operations.
const (
	DiffEqual DiffOp = iota
	DiffRemoved
	DiffAdded
)

// DiffLine is one line of a parameter diff.
type DiffLine struct {
	Op   DiffOp
	Text string
}

// String renders the line with a "+", "-" or blank gutter.
func (l DiffLine) String() string {
	switch l.Op {
	case DiffRemoved:
		return "- " + l.Text
	case DiffAdded:
		return "+ " + l.Text
	default:
		return "  " + l.Text
	}
}

// DiffParams compares the key=value renderings of a and b line by line.
func DiffParams(a, b *params.Table) []DiffLine {
	dmp := diffmatchpatch.New()
	left, right, lines := dmp.DiffLinesToChars(a.String(), b.String())
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(left, right, false), lines)

	var out []DiffLine
	for _, d := range diffs {
		op := DiffEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = DiffRemoved
		case diffmatchpatch.DiffInsert:
			op = DiffAdded
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			line = strings.TrimSuffix(line, "\n")
			if line == "" {
				continue
			}
			out = append(out, DiffLine{Op: op, Text: line})
		}
	}
	return out
}

// Changed reports whether any line differs.
func Changed(lines []DiffLine) bool {
	for _, l := range lines {
		if l.Op != DiffEqual {
			return true
		}
	}
	return false
}
