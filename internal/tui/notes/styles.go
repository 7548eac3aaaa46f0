package notes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kwadjo-wusu-ansah/notes/internal/theme"
	"github.com/kwadjo-wusu-ansah/notes/internal/views"
)

var appStyle = lipgloss.NewStyle().Padding(1, 2)

// styles are rebuilt whenever the theme or font preference changes.
type styles struct {
	views     views.Styles
	title     lipgloss.Style
	text      lipgloss.Style
	muted     lipgloss.Style
	selected  lipgloss.Style
	focused   lipgloss.Style
	list      lipgloss.Style
	preview   lipgloss.Style
	input     lipgloss.Style
	modal     lipgloss.Style
	danger    lipgloss.Style
	toast     lipgloss.Style
	toastFail lipgloss.Style
	help      lipgloss.Style
}

func newStyles(prefs theme.Preferences) styles {
	p := theme.PaletteFor(prefs.Theme)
	text := lipgloss.NewStyle().Foreground(p.Text)

	return styles{
		views: views.NewStyles(p),
		title: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			Padding(0, 1),
		text:  theme.Body(prefs.Font, p, text),
		muted: lipgloss.NewStyle().Foreground(p.Muted),
		selected: lipgloss.NewStyle().
			Foreground(p.Accent).
			Background(p.Selection),
		focused: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		list: lipgloss.NewStyle().
			MarginRight(1),
		preview: lipgloss.NewStyle().
			MarginLeft(1).
			PaddingLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Border),
		input: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),
		danger: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Danger),
		toast: lipgloss.NewStyle().
			Foreground(p.Success),
		toastFail: lipgloss.NewStyle().
			Foreground(p.Danger),
		help: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}

func renderHelpWithinWidth(st lipgloss.Style, width int, content string) string {
	if width <= 0 {
		return st.Render(content)
	}

	return st.Copy().
		Width(width).
		MaxWidth(width).
		Render(content)
}
