// Package stringprocessing provides small string helpers shared by schedlab packages.
// It currently covers boolean evaluation of parameter values written by the simulator.
package stringprocessing

import (
	"fmt"
	"strings"
)

var (
	truthyValues = map[string]bool{
		"true":    true,
		"1":       true,
		"yes":     true,
		"on":      true,
		"enabled": true,
	}

	falsyValues = map[string]bool{
		"false":    true,
		"0":        true,
		"no":       true,
		"off":      true,
		"disabled": true,
	}
)

// ParseBool accepts the explicit truthy spellings ('true', '1', 'yes', 'on',
// 'enabled') and falsy spellings ('false', '0', 'no', 'off', 'disabled'),
// case-insensitively and ignoring surrounding space. Anything else is an error.
func ParseBool(value string) (bool, error) {
	v := normalize(value)
	if truthyValues[v] {
		return true, nil
	}
	if falsyValues[v] {
		return false, nil
	}
	return false, fmt.Errorf("not a boolean value: %q", value)
}

func normalize(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
