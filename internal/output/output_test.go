package output

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPrinterBasicOutput(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	printer.Print("hello")
	printer.Println(" world")
	printer.Printf("number: %d", 42)

	if got, want := buffer.String(), "hello world\nnumber: 42"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPrinterSemanticOutput(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	printer.Info("loaded")
	printer.Success("saved")
	printer.Warning("seed skipped")
	printer.Error("failed")
	printer.Heading("Schedulers")

	expected := []string{
		"ℹ loaded",
		"✓ saved",
		"⚠ seed skipped",
		"✗ failed",
		"Schedulers",
	}
	lines := buffer.Lines()
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %v", len(expected), len(lines), lines)
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("line %d: expected %q, got %q", i, want, lines[i])
		}
	}
}

func TestPrinterStyledMode(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithStyles(NewMockStyleProvider()), WithMode(ModeStyled))

	printer.Info("message")
	printer.KeyValue("quantum", "4")

	out := buffer.String()
	if !strings.Contains(out, "[info]message[/info]") {
		t.Errorf("expected styled info output, got: %s", out)
	}
	if !strings.Contains(out, "[key]quantum[/key][muted] = [/muted][value]4[/value]") {
		t.Errorf("expected styled key/value output, got: %s", out)
	}
	if !printer.IsStylable() {
		t.Error("expected styled printer to report stylable")
	}
}

func TestPrinterAutoModeWithoutTerminal(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithStyles(NewMockStyleProvider()))

	printer.Info("message")

	if got := buffer.String(); got != "ℹ message\n" {
		t.Errorf("expected plain output for a non-terminal writer, got %q", got)
	}
}

func TestPrinterUnavailableProvider(t *testing.T) {
	provider := NewMockStyleProvider()
	provider.SetAvailable(false)
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithStyles(provider), WithMode(ModeStyled))

	printer.Success("done")

	if got := buffer.String(); got != "✓ done\n" {
		t.Errorf("expected plain fallback, got %q", got)
	}
}

func TestPrinterJSONMode(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithMode(ModeJSON))

	printer.Info("loaded")
	printer.Table([]string{"scheduler", "utilization"}, [][]string{{"rr", "99.20"}})
	printer.List([]string{"1", "2"})
	printer.KeyValue("alpha", "10")

	lines := buffer.Lines()
	if len(lines) != 4 {
		t.Fatalf("expected 4 JSON lines, got %d: %v", len(lines), lines)
	}

	var msg map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &msg); err != nil {
		t.Fatalf("invalid JSON %q: %v", lines[0], err)
	}
	if msg["type"] != "info" || msg["message"] != "loaded" {
		t.Errorf("unexpected message object: %v", msg)
	}

	var tbl struct {
		Type    string     `json:"type"`
		Headers []string   `json:"headers"`
		Rows    [][]string `json:"rows"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &tbl); err != nil {
		t.Fatalf("invalid JSON %q: %v", lines[1], err)
	}
	if tbl.Type != "table" || len(tbl.Rows) != 1 || tbl.Rows[0][0] != "rr" {
		t.Errorf("unexpected table object: %+v", tbl)
	}
	if !strings.Contains(lines[2], `"items":["1","2"]`) {
		t.Errorf("unexpected list object: %s", lines[2])
	}
	if !strings.Contains(lines[3], `"key":"alpha"`) {
		t.Errorf("unexpected value object: %s", lines[3])
	}
}

func TestPrinterSilentMode(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), Silent())

	printer.Info("message")
	printer.Table([]string{"a"}, [][]string{{"1"}})
	printer.List([]string{"x"})

	if out := buffer.String(); out != "" {
		t.Errorf("expected no output in silent mode, got %q", out)
	}
}

func TestPlainTable(t *testing.T) {
	out := CaptureOutput(func(p *Printer) {
		p.Table(
			[]string{"process", "cpuTime"},
			[][]string{{"idle_process", "20"}, {"process_1", "80"}},
		)
	})

	expected := "process       cpuTime\n" +
		"------------  -------\n" +
		"idle_process  20\n" +
		"process_1     80\n"
	if out != expected {
		t.Errorf("unexpected table:\n%s\nwant:\n%s", out, expected)
	}
}

func TestTableTruncatesCells(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode(), WithMaxCellWidth(5))

	printer.Table([]string{"name"}, [][]string{{"a-very-long-value"}})

	lines := buffer.Lines()
	if len(lines) != 3 || lines[2] != "a-ve…" {
		t.Errorf("expected truncated cell, got %v", lines)
	}
}

func TestStyledTable(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithStyles(NewMockStyleProvider()), WithMode(ModeStyled))

	printer.Table([]string{"seed"}, [][]string{{"7"}})

	out := buffer.String()
	if !strings.Contains(out, "╭") || !strings.Contains(out, "seed") || !strings.Contains(out, "7") {
		t.Errorf("expected bordered table, got:\n%s", out)
	}
}

func TestPlainList(t *testing.T) {
	out := CaptureOutput(func(p *Printer) {
		p.List([]string{"fcfs", "rr"})
		p.List(nil)
	})
	if out != "- fcfs\n- rr\n" {
		t.Errorf("unexpected list output %q", out)
	}
}

func TestPrinterData(t *testing.T) {
	out := CaptureOutput(func(p *Printer) {
		if err := p.Data(map[string]int{"seeds": 2}); err != nil {
			t.Fatal(err)
		}
	})
	if out != "{\n  \"seeds\": 2\n}\n" {
		t.Errorf("unexpected data output %q", out)
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"":       ModeAuto,
		"auto":   ModeAuto,
		"Plain":  ModePlain,
		"styled": ModeStyled,
		" json ": ModeJSON,
	}
	for in, want := range tests {
		got, err := ParseMode(in)
		if err != nil {
			t.Errorf("ParseMode(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseMode(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseMode("fancy"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if ModeJSON.String() != "json" {
		t.Errorf("unexpected mode name %q", ModeJSON.String())
	}
}

func TestGlobalPrinter(t *testing.T) {
	original := GetGlobalPrinter()
	defer SetGlobalPrinter(original)

	buffer := NewCaptureBuffer()
	p := ConfigureGlobal(WithWriter(buffer), TestMode())
	if GetGlobalPrinter() != p {
		t.Fatal("expected configured printer to become global")
	}
	GetGlobalPrinter().Info("hi")
	if buffer.String() != "ℹ hi\n" {
		t.Errorf("unexpected output %q", buffer.String())
	}
}

func TestCaptureBuffer(t *testing.T) {
	buffer := NewCaptureBuffer()
	if lines := buffer.Lines(); len(lines) != 0 {
		t.Errorf("expected no lines, got %v", lines)
	}
	_, _ = buffer.Write([]byte("a\nb\n"))
	if lines := buffer.Lines(); len(lines) != 2 || lines[1] != "b" {
		t.Errorf("unexpected lines %v", lines)
	}
	buffer.Reset()
	if buffer.String() != "" {
		t.Error("expected empty buffer after reset")
	}
}

func BenchmarkPlainTable(b *testing.B) {
	rows := make([][]string, 100)
	for i := range rows {
		rows[i] = []string{"process_1", "12.5", "40", "52.5"}
	}
	printer := NewPrinter(WithWriter(NewCaptureBuffer()), TestMode())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		printer.Table([]string{"process", "cpuTime", "startedTime", "turnaroundTime"}, rows)
	}
}
