package output

import (
	"io"
	"os"
	"sync"
)

var (
	globalPrinter = NewPrinter()
	globalMu      sync.RWMutex
)

// SetGlobalPrinter replaces the process-wide printer.
func SetGlobalPrinter(printer *Printer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPrinter = printer
}

// GetGlobalPrinter returns the process-wide printer.
func GetGlobalPrinter() *Printer {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalPrinter
}

// ConfigureGlobal replaces the process-wide printer with one built from options.
func ConfigureGlobal(options ...Option) *Printer {
	p := NewPrinter(options...)
	SetGlobalPrinter(p)
	return p
}

// IsTerminal reports whether w is a character device such as a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// NoColor reports whether the NO_COLOR convention asks for unstyled output.
func NoColor() bool {
	return os.Getenv("NO_COLOR") != ""
}
