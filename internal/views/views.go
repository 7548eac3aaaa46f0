package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kwadjo-wusu-ansah/notes/internal/theme"
)

var navPrefixMap = map[string]string{
	KeyAllNotes:      "[1] All Notes",
	KeyArchivedNotes: "[2] Archived Notes",
}

var navOrder = []string{KeyAllNotes, KeyArchivedNotes}

// Styles paint headers and navigation for one palette.
type Styles struct {
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
	Active    lipgloss.Style
	Inactive  lipgloss.Style
	Divider   lipgloss.Style
}

func NewStyles(p theme.Palette) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),
		Active: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			Padding(0, 1),
		Inactive: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		Divider: lipgloss.NewStyle().
			Foreground(p.Muted).
			SetString("│"),
	}
}

// RenderHeader renders h as a single line.
func RenderHeader(h Header, st Styles) string {
	if h.MutedPrefix != "" {
		return fmt.Sprintf("%s %s",
			st.Muted.Render(h.MutedPrefix),
			st.Highlight.Render(h.Highlight),
		)
	}
	return st.Title.Render(h.Title)
}

// RenderInfo renders the sidebar helper line, or "" when there is none.
func RenderInfo(i SidebarInfo, st Styles) string {
	if i.Empty() {
		return ""
	}
	return st.Muted.Render(i.Prefix) + st.Highlight.Render(i.Highlight) + st.Muted.Render(i.Suffix)
}

// RenderNav renders the route switcher with navRoute highlighted.
func RenderNav(navRoute string, st Styles) string {
	var items []string
	for _, key := range navOrder {
		prefix := navPrefixMap[key]
		if key == navRoute {
			items = append(items, st.Active.Render(prefix))
		} else {
			items = append(items, st.Inactive.Render(prefix))
		}
	}

	return fmt.Sprintf("%s %s",
		st.Title.Render("Views:"),
		strings.Join(items, st.Divider.String()),
	)
}

// RenderTags renders the tag index, marking the tag of the current route.
func RenderTags(vs ViewState, st Styles) string {
	if len(vs.Tags) == 0 {
		return st.Muted.Render("No tags yet")
	}

	current := ""
	if vs.Route.Kind == Tag {
		current = vs.Route.TagName
	}

	lines := make([]string, 0, len(vs.Tags)+1)
	lines = append(lines, st.Title.Render("Tags"))
	for _, tag := range vs.Tags {
		if tag == current {
			lines = append(lines, st.Active.Render("# "+tag))
		} else {
			lines = append(lines, st.Inactive.Render("# "+tag))
		}
	}
	return strings.Join(lines, "\n")
}
