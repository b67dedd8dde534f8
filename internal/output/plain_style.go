package output

// PlainTextStyle renders text with an optional marker prefix and no escapes.
type PlainTextStyle struct {
	prefix string
}

// NewPlainTextStyle creates a plain style with prefix.
func NewPlainTextStyle(prefix string) *PlainTextStyle {
	return &PlainTextStyle{prefix: prefix}
}

// Render implements TextStyle.
func (p *PlainTextStyle) Render(strs ...string) string {
	text := joinStrings(strs)
	if p.prefix != "" {
		return p.prefix + text
	}
	return text
}

// PlainStyleProvider marks status lines with a symbol prefix and leaves
// everything else unstyled. Printers use it whenever styling is off.
type PlainStyleProvider struct{}

var plainProvider = NewPlainStyleProvider()

var plainPrefixes = map[string]string{
	string(SemanticSuccess): "✓ ",
	string(SemanticWarning): "⚠ ",
	string(SemanticError):   "✗ ",
	string(SemanticInfo):    "ℹ ",
}

// NewPlainStyleProvider creates a plain style provider.
func NewPlainStyleProvider() *PlainStyleProvider {
	return &PlainStyleProvider{}
}

// GetStyle implements StyleProvider.
func (p *PlainStyleProvider) GetStyle(semantic string) TextStyle {
	return NewPlainTextStyle(plainPrefixes[semantic])
}

// IsAvailable implements StyleProvider.
func (p *PlainStyleProvider) IsAvailable() bool {
	return true
}

func joinStrings(strs []string) string {
	switch len(strs) {
	case 0:
		return ""
	case 1:
		return strs[0]
	}
	out := strs[0]
	for _, s := range strs[1:] {
		out += " " + s
	}
	return out
}
