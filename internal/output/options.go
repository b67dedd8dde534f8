package output

import "io"

// Option configures a Printer.
type Option func(*Printer)

// WithStyles sets the style provider. A nil provider leaves output plain.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		p.styleProvider = provider
	}
}

// WithWriter sets the destination. Default is os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithMode sets the render mode.
func WithMode(mode Mode) Option {
	return func(p *Printer) {
		p.mode = mode
	}
}

// WithMaxCellWidth truncates table cells wider than n terminal columns.
// Zero disables truncation.
func WithMaxCellWidth(n int) Option {
	return func(p *Printer) {
		p.maxCellWidth = n
	}
}

// TestMode makes output deterministic: plain, no terminal detection.
func TestMode() Option {
	return func(p *Printer) {
		p.mode = ModePlain
		p.testMode = true
	}
}

// Silent discards all output.
func Silent() Option {
	return func(p *Printer) {
		p.silent = true
	}
}
