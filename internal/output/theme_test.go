package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTheme_Embedded(t *testing.T) {
	for _, name := range ThemeNames() {
		t.Run(name, func(t *testing.T) {
			theme, err := LoadTheme(name)
			require.NoError(t, err)
			assert.Equal(t, name, theme.Name)
		})
	}
	assert.Equal(t, []string{"dark", "default", "light", "plain"}, ThemeNames())
}

func TestLoadTheme_DefaultAndUnknown(t *testing.T) {
	theme, err := LoadTheme("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, theme.Name)

	_, err = LoadTheme("neon")
	assert.ErrorContains(t, err, "unknown theme")
}

func TestParseTheme_Styles(t *testing.T) {
	theme, err := ParseTheme([]byte(`
name: test
styles:
  heading:
    foreground: "#112233"
    bold: true
  seed:
    foreground: { light: "#000000", dark: "#FFFFFF" }
    background: 12
`))
	require.NoError(t, err)

	heading := theme.Style("heading")
	assert.True(t, heading.GetBold())
	assert.Equal(t, lipgloss.Color("#112233"), heading.GetForeground())

	seed := theme.Style("seed")
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}, seed.GetForeground())
	assert.Equal(t, lipgloss.Color("12"), seed.GetBackground())

	// Unknown semantics get an empty style.
	assert.False(t, theme.Style("nope").GetBold())
	_, ok := theme.GetStyle("heading").(lipgloss.Style)
	assert.True(t, ok)
}

func TestParseTheme_Errors(t *testing.T) {
	_, err := ParseTheme([]byte("name: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse theme file")

	_, err = ParseTheme([]byte("name: bad\nstyles:\n  info:\n    foreground: { light: x }\n"))
	assert.ErrorContains(t, err, "invalid colour")
}

func TestPlainThemeIsNeverAvailable(t *testing.T) {
	theme, err := LoadTheme("plain")
	require.NoError(t, err)
	assert.False(t, theme.IsAvailable())
}
