// Package embedded holds data files compiled into the schedlab binary.
package embedded

import _ "embed"

// DefaultThemeData is the default console theme (adaptive colours).
//
//go:embed themes/default.yaml
var DefaultThemeData []byte

// DarkThemeData is tuned for dark terminal backgrounds.
//
//go:embed themes/dark.yaml
var DarkThemeData []byte

// LightThemeData is tuned for light terminal backgrounds.
//
//go:embed themes/light.yaml
var LightThemeData []byte

// PlainThemeData defines no styles.
//
//go:embed themes/plain.yaml
var PlainThemeData []byte
