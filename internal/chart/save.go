package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"schedlab/internal/logger"
)

// Default canvas size, matching a 16x8 inch figure.
const (
	DefaultWidth  = 16 * vg.Inch
	DefaultHeight = 8 * vg.Inch
)

// Formats supported by Save.
var Formats = []string{"svg", "png", "pdf", "eps", "jpg", "tif"}

var log = logger.NewStyledLogger("Chart")

// Save writes p to path, creating parent directories. The format is taken
// from the file extension.
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !IsFormat(ext) {
		return fmt.Errorf("unsupported chart format %q (want one of %s)", ext, strings.Join(Formats, ", "))
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	log.Debug("Saved chart", "path", path)
	return nil
}

// IsFormat reports whether ext (without dot) is a supported output format.
func IsFormat(ext string) bool {
	return slices.Contains(Formats, ext)
}

// FileName builds a chart file name from its parts, e.g. "rr_7_gantt.svg".
func FileName(format string, parts ...string) string {
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		clean = append(clean, strings.NewReplacer("/", "-", string(filepath.Separator), "-", " ", "-").Replace(p))
	}
	return strings.Join(clean, "_") + "." + format
}
