package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/list"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
)

// Printer writes semantic text, tables and lists to one writer.
// It is safe for concurrent use.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	testMode      bool
	silent        bool
	maxCellWidth  int

	mu sync.Mutex
}

// NewPrinter creates a Printer writing to os.Stdout in ModeAuto unless
// options say otherwise.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Mode returns the configured render mode.
func (p *Printer) Mode() Mode {
	return p.mode
}

// Writer returns the destination writer.
func (p *Printer) Writer() io.Writer {
	return p.writer
}

// Print writes text as is.
func (p *Printer) Print(text string) {
	p.message(SemanticPlain, text, false)
}

// Printf writes formatted text as is.
func (p *Printer) Printf(format string, args ...any) {
	p.message(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println writes text followed by a newline.
func (p *Printer) Println(text string) {
	p.message(SemanticPlain, text, true)
}

// Info writes an informational line.
func (p *Printer) Info(text string) {
	p.message(SemanticInfo, text, true)
}

// Success writes a success line.
func (p *Printer) Success(text string) {
	p.message(SemanticSuccess, text, true)
}

// Warning writes a warning line.
func (p *Printer) Warning(text string) {
	p.message(SemanticWarning, text, true)
}

// Error writes an error line.
func (p *Printer) Error(text string) {
	p.message(SemanticError, text, true)
}

// Heading writes a title line.
func (p *Printer) Heading(text string) {
	p.message(SemanticHeading, text, true)
}

// KeyValue writes "key = value" with the key and value styled separately.
// In JSON mode it emits {"type":"value","key":...,"value":...}.
func (p *Printer) KeyValue(key, value string) {
	if p.mode == ModeJSON {
		p.writeJSON(map[string]any{"type": "value", "key": key, "value": value})
		return
	}
	p.write(p.Styled(SemanticKey, key) + p.Styled(SemanticMuted, " = ") + p.Styled(SemanticValue, value) + "\n")
}

// Styled renders text with the style for semantic when styling is active,
// and returns it unchanged otherwise. Use it to compose mixed lines.
func (p *Printer) Styled(semantic SemanticType, text string) string {
	if !p.styled() {
		return text
	}
	return p.styleProvider.GetStyle(string(semantic)).Render(text)
}

// Table writes rows under headers. Plain output aligns columns with spaces,
// styled output draws a bordered lipgloss table, JSON mode emits the rows.
func (p *Printer) Table(headers []string, rows [][]string) {
	if p.mode == ModeJSON {
		p.writeJSON(map[string]any{"type": "table", "headers": headers, "rows": rows})
		return
	}

	rows = p.truncateRows(rows)
	if !p.styled() {
		p.write(plainTable(headers, rows))
		return
	}

	headerStyle := p.lipglossStyle(SemanticHeading).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.lipglossStyle(SemanticBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	p.write(t.Render() + "\n")
}

// List writes items as a bulleted list.
func (p *Printer) List(items []string) {
	if p.mode == ModeJSON {
		p.writeJSON(map[string]any{"type": "list", "items": items})
		return
	}
	if len(items) == 0 {
		return
	}
	if !p.styled() {
		var b strings.Builder
		for _, item := range items {
			b.WriteString("- " + item + "\n")
		}
		p.write(b.String())
		return
	}

	l := list.New().
		Enumerator(list.Bullet).
		EnumeratorStyle(p.lipglossStyle(SemanticBorder))
	for _, item := range items {
		l.Item(item)
	}
	p.write(l.String() + "\n")
}

// Data writes v as one JSON document in JSON mode and as indented JSON otherwise.
func (p *Printer) Data(v any) error {
	if p.mode == ModeJSON {
		return p.writeJSON(map[string]any{"type": "data", "data": v})
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	p.write(string(out) + "\n")
	return nil
}

// IsStylable reports whether output from this printer will carry styles.
func (p *Printer) IsStylable() bool {
	return p.styled()
}

// String returns a representation for debugging.
func (p *Printer) String() string {
	return fmt.Sprintf("Printer{mode: %v, styled: %t, writer: %T}", p.mode, p.styled(), p.writer)
}

func (p *Printer) styled() bool {
	if p.styleProvider == nil || !p.styleProvider.IsAvailable() {
		return false
	}
	switch p.mode {
	case ModeStyled:
		return true
	case ModeAuto:
		return !p.testMode && !NoColor() && IsTerminal(p.writer)
	default:
		return false
	}
}

// lipglossStyle returns the provider's lipgloss style for semantic, or an empty style.
func (p *Printer) lipglossStyle(semantic SemanticType) lipgloss.Style {
	if s, ok := p.styleProvider.GetStyle(string(semantic)).(lipgloss.Style); ok {
		return s
	}
	return lipgloss.NewStyle()
}

func (p *Printer) message(semantic SemanticType, text string, newline bool) {
	if p.mode == ModeJSON {
		p.writeJSON(map[string]any{"type": semantic, "message": text})
		return
	}

	var result string
	if p.styled() {
		result = p.styleProvider.GetStyle(string(semantic)).Render(text)
	} else {
		result = plainProvider.GetStyle(string(semantic)).Render(text)
	}
	if newline && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	p.write(result)
}

func (p *Printer) writeJSON(v any) error {
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	p.write(string(out) + "\n")
	return nil
}

func (p *Printer) write(text string) {
	if p.silent {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.writer, text)
}

func (p *Printer) truncateRows(rows [][]string) [][]string {
	if p.maxCellWidth <= 0 {
		return rows
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = ansi.Truncate(cell, p.maxCellWidth, "…")
		}
	}
	return out
}

// plainTable aligns cells by their display width.
func plainTable(headers []string, rows [][]string) string {
	cols := len(headers)
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	widths := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			widths[i] = max(widths[i], ansi.StringWidth(cell))
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	var b strings.Builder
	writeRow := func(row []string) {
		for i := range cols {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i == cols-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-ansi.StringWidth(cell)+2))
		}
		b.WriteString("\n")
	}

	if len(headers) > 0 {
		writeRow(headers)
		rule := make([]string, cols)
		for i, w := range widths {
			rule[i] = strings.Repeat("-", w)
		}
		writeRow(rule)
	}
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
