// Package theme holds the user display preferences and the lipgloss palette
// they resolve to.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

type Font string

const (
	Sans  Font = "sans"
	Serif Font = "serif"
	Mono  Font = "mono"
)

// Themes and Fonts list the selectable values in display order.
var (
	Themes = []Theme{Light, Dark, System}
	Fonts  = []Font{Sans, Serif, Mono}
)

// Preferences are persisted separately from notes.
type Preferences struct {
	Theme Theme `json:"theme" yaml:"theme"`
	Font  Font  `json:"font"  yaml:"font"`
}

// Defaults returns the preferences used when nothing is stored.
func Defaults() Preferences {
	return Preferences{Theme: Dark, Font: Sans}
}

// WithDefaults fills empty fields from Defaults.
func (p Preferences) WithDefaults() Preferences {
	d := Defaults()
	if p.Theme == "" {
		p.Theme = d.Theme
	}
	if p.Font == "" {
		p.Font = d.Font
	}
	return p
}

// NormalizeTheme maps a user facing label such as "Light Mode" onto its
// theme value. Blank input yields "" and unknown values pass through
// lowercased.
func NormalizeTheme(name string) Theme {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "light mode", "lightmode":
		return Light
	case "dark mode", "darkmode":
		return Dark
	case "system theme", "systemtheme":
		return System
	}
	return Theme(s)
}

// NormalizeFont maps a user facing label such as "Inter" or "monospace"
// onto its font value.
func NormalizeFont(name string) Font {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "inter", "sans-serif", "sansserif":
		return Sans
	case "monospace":
		return Mono
	}
	return Font(s)
}

// Valid reports whether t is one of the selectable themes.
func (t Theme) Valid() bool {
	return t == Light || t == Dark || t == System
}

// Valid reports whether f is one of the selectable fonts.
func (f Font) Valid() bool {
	return f == Sans || f == Serif || f == Mono
}

// Label is the name shown in settings.
func (t Theme) Label() string {
	switch t {
	case Light:
		return "Light Mode"
	case Dark:
		return "Dark Mode"
	case System:
		return "System"
	}
	return string(t)
}

// Label is the name shown in settings.
func (f Font) Label() string {
	switch f {
	case Sans:
		return "Sans-serif"
	case Serif:
		return "Serif"
	case Mono:
		return "Monospace"
	}
	return string(f)
}

// DarkBackground reports whether the terminal background is dark. It is a
// variable so tests can pin the answer.
var DarkBackground = termenv.HasDarkBackground

// Resolve turns a stored theme into light or dark. System follows the
// terminal background, anything unrecognised falls back to dark.
func Resolve(t Theme) Theme {
	switch NormalizeTheme(string(t)) {
	case Light:
		return Light
	case System:
		if DarkBackground() {
			return Dark
		}
		return Light
	}
	return Dark
}

// ResolveFont normalizes f and falls back to sans.
func ResolveFont(f Font) Font {
	if n := NormalizeFont(string(f)); n.Valid() {
		return n
	}
	return Sans
}

// Palette is the set of colours a resolved theme paints with.
type Palette struct {
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Selection lipgloss.Color
	Danger    lipgloss.Color
	Success   lipgloss.Color
}

var (
	darkPalette = Palette{
		Accent:    lipgloss.Color("#0AF"),
		Text:      lipgloss.Color("#CCC"),
		Muted:     lipgloss.Color("#666666"),
		Border:    lipgloss.Color("#334455"),
		Selection: lipgloss.Color("#224"),
		Danger:    lipgloss.Color("#FB3748"),
		Success:   lipgloss.Color("#21C16B"),
	}
	lightPalette = Palette{
		Accent:    lipgloss.Color("#335CFF"),
		Text:      lipgloss.Color("#0E121B"),
		Muted:     lipgloss.Color("#717784"),
		Border:    lipgloss.Color("#CACFD8"),
		Selection: lipgloss.Color("#F3F5F8"),
		Danger:    lipgloss.Color("#FB3748"),
		Success:   lipgloss.Color("#21C16B"),
	}
)

// PaletteFor returns the palette for the resolved form of t.
func PaletteFor(t Theme) Palette {
	if Resolve(t) == Light {
		return lightPalette
	}
	return darkPalette
}

// Body applies the font preference to a text style. Terminals cannot switch
// typefaces, so serif renders italic and mono renders on a tinted block.
func Body(f Font, p Palette, base lipgloss.Style) lipgloss.Style {
	switch ResolveFont(f) {
	case Serif:
		return base.Copy().Italic(true)
	case Mono:
		return base.Copy().Background(p.Selection)
	}
	return base.Copy()
}

// MarkdownStyle names the glamour style matching t.
func MarkdownStyle(t Theme) string {
	if Resolve(t) == Light {
		return "light"
	}
	return "dark"
}
