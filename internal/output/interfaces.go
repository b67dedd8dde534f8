// Package output provides the console output system for schedlab.
// Printers render semantic text, tables and lists either plain, styled through
// a StyleProvider, or as JSON lines for scripting.
package output

import (
	"fmt"
	"strings"
)

// StyleProvider supplies styles for semantic text. Themes implement it; the
// printer falls back to plain text when no provider is available.
type StyleProvider interface {
	// GetStyle returns the style for a semantic type such as "info" or "seed".
	GetStyle(semantic string) TextStyle

	// IsAvailable reports whether styling can be applied right now.
	IsAvailable() bool
}

// TextStyle renders text. lipgloss.Style satisfies it.
type TextStyle interface {
	Render(strs ...string) string
}

// Mode selects how a printer renders output.
type Mode int

const (
	// ModeAuto styles output only when writing to a colour-capable terminal.
	ModeAuto Mode = iota
	// ModeStyled always applies the style provider.
	ModeStyled
	// ModePlain never styles output.
	ModePlain
	// ModeJSON writes one JSON object per message, table or list.
	ModeJSON
)

var modeNames = map[Mode]string{
	ModeAuto:   "auto",
	ModeStyled: "styled",
	ModePlain:  "plain",
	ModeJSON:   "json",
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name (auto, styled, plain, json) to a Mode.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ModeAuto, nil
	}
	for mode, n := range modeNames {
		if n == name {
			return mode, nil
		}
	}
	return ModeAuto, fmt.Errorf("unknown output mode %q (want auto, styled, plain or json)", name)
}

// SemanticType names the meaning of a piece of output so themes can style it.
type SemanticType string

const (
	SemanticPlain   SemanticType = "plain"
	SemanticInfo    SemanticType = "info"
	SemanticSuccess SemanticType = "success"
	SemanticWarning SemanticType = "warning"
	SemanticError   SemanticType = "error"

	// SemanticHeading marks titles and table headers.
	SemanticHeading SemanticType = "heading"
	// SemanticMuted marks secondary text such as separators and units.
	SemanticMuted SemanticType = "muted"

	// Domain values.
	SemanticScheduler SemanticType = "scheduler"
	SemanticSeed      SemanticType = "seed"
	SemanticColumn    SemanticType = "column"
	SemanticKey       SemanticType = "key"
	SemanticValue     SemanticType = "value"
	SemanticNumber    SemanticType = "number"
	SemanticPath      SemanticType = "path"

	// SemanticBorder styles table borders and list enumerators.
	SemanticBorder SemanticType = "border"
)
