package output

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"schedlab/internal/data/embedded"
)

// ThemeConfig is the YAML form of a theme.
type ThemeConfig struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description,omitempty"`
	Styles      map[string]StyleConfig `yaml:"styles"`
}

// StyleConfig describes one semantic style. Colours are either a string
// ("#5A56E0", "12") or a map with light and dark keys.
type StyleConfig struct {
	Foreground any   `yaml:"foreground,omitempty"`
	Background any   `yaml:"background,omitempty"`
	Bold       *bool `yaml:"bold,omitempty"`
	Italic     *bool `yaml:"italic,omitempty"`
	Underline  *bool `yaml:"underline,omitempty"`
	Faint      *bool `yaml:"faint,omitempty"`
}

// Theme maps semantic types to lipgloss styles. It implements StyleProvider.
type Theme struct {
	Name        string
	Description string
	styles      map[string]lipgloss.Style
}

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "default"

var themeData = map[string][]byte{
	"default": embedded.DefaultThemeData,
	"dark":    embedded.DarkThemeData,
	"light":   embedded.LightThemeData,
	"plain":   embedded.PlainThemeData,
}

// ThemeNames lists the embedded themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themeData))
	for name := range themeData {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LoadTheme returns the embedded theme called name.
func LoadTheme(name string) (*Theme, error) {
	if name == "" {
		name = DefaultTheme
	}
	data, ok := themeData[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return ParseTheme(data)
}

// ParseTheme builds a theme from YAML.
func ParseTheme(data []byte) (*Theme, error) {
	var cfg ThemeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	t := &Theme{
		Name:        cfg.Name,
		Description: cfg.Description,
		styles:      make(map[string]lipgloss.Style, len(cfg.Styles)),
	}
	for semantic, sc := range cfg.Styles {
		style, err := createStyle(sc)
		if err != nil {
			return nil, fmt.Errorf("theme %s: style %s: %w", cfg.Name, semantic, err)
		}
		t.styles[semantic] = style
	}
	return t, nil
}

// GetStyle implements StyleProvider. Unknown semantics get an empty style.
func (t *Theme) GetStyle(semantic string) TextStyle {
	return t.Style(semantic)
}

// Style returns the lipgloss style for semantic.
func (t *Theme) Style(semantic string) lipgloss.Style {
	if s, ok := t.styles[semantic]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// IsAvailable implements StyleProvider. Styling is off on terminals without
// colour and for themes that define no styles.
func (t *Theme) IsAvailable() bool {
	return len(t.styles) > 0 && lipgloss.ColorProfile() != termenv.Ascii
}

func createStyle(cfg StyleConfig) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()
	if cfg.Foreground != nil {
		c, err := parseColor(cfg.Foreground)
		if err != nil {
			return style, err
		}
		style = style.Foreground(c)
	}
	if cfg.Background != nil {
		c, err := parseColor(cfg.Background)
		if err != nil {
			return style, err
		}
		style = style.Background(c)
	}
	if cfg.Bold != nil {
		style = style.Bold(*cfg.Bold)
	}
	if cfg.Italic != nil {
		style = style.Italic(*cfg.Italic)
	}
	if cfg.Underline != nil {
		style = style.Underline(*cfg.Underline)
	}
	if cfg.Faint != nil {
		style = style.Faint(*cfg.Faint)
	}
	return style, nil
}

func parseColor(v any) (lipgloss.TerminalColor, error) {
	switch c := v.(type) {
	case string:
		return lipgloss.Color(c), nil
	case int:
		return lipgloss.Color(fmt.Sprint(c)), nil
	case map[string]any:
		light, okLight := c["light"].(string)
		dark, okDark := c["dark"].(string)
		if okLight && okDark {
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}, nil
		}
	}
	return nil, fmt.Errorf("invalid colour %v", v)
}
