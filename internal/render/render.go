// Package render turns note content into styled terminal output.
package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/kwadjo-wusu-ansah/notes/internal/cache"
	"github.com/kwadjo-wusu-ansah/notes/internal/theme"
)

const (
	previewHorizontalSpace = 4
	defaultWrapWidth       = 80
	cacheEntries           = 64
)

type cacheKey struct {
	content string
	wrap    int
	style   string
}

var rendered = cache.NewLRUCache[cacheKey, string](cacheEntries)

// WrapWidth is the word wrap applied to a preview pane width wide.
func WrapWidth(width int) int {
	wrap := width - previewHorizontalSpace
	if wrap <= 0 {
		return defaultWrapWidth
	}
	return wrap
}

// Markdown renders content for a pane width wide using the glamour style
// matching t. Results are cached by content, width and style.
func Markdown(content string, width int, t theme.Theme) string {
	key := cacheKey{content: content, wrap: WrapWidth(width), style: theme.MarkdownStyle(t)}
	if out, ok := rendered.Get(key); ok {
		return out
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(key.style),
		glamour.WithWordWrap(key.wrap),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return "Error rendering markdown"
	}

	out, err := r.Render(content)
	if err != nil {
		return "Error rendering markdown"
	}

	rendered.Put(key, out)
	return out
}

// Document renders a note as markdown: the title as a heading, then the
// content.
func Document(title, content string) string {
	var b strings.Builder
	if title = strings.TrimSpace(title); title != "" {
		b.WriteString("# ")
		b.WriteString(title)
		b.WriteString("\n\n")
	}
	b.WriteString(content)
	return b.String()
}

// Title fits a note title into width cells, falling back to the placeholder
// for untitled notes.
func Title(title string, width int) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled Note"
	}
	if width <= 0 {
		return title
	}
	return truncate.StringWithTail(title, uint(width), "…")
}
