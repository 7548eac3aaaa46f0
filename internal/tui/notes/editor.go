package notes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kwadjo-wusu-ansah/notes/internal/note"
)

type editorField int

const (
	fieldTitle editorField = iota
	fieldTags
	fieldContent
	fieldCount
)

// editorSession holds the form for the open note. noteID is "" while
// creating.
type editorSession struct {
	title   textinput.Model
	tags    textinput.Model
	content textarea.Model
	field   editorField
	noteID  string
	loaded  bool
}

func newEditorSession(width, height int) *editorSession {
	title := textinput.New()
	title.Placeholder = "Enter a title…"
	title.CharLimit = 0

	tags := textinput.New()
	tags.Placeholder = "Add tags separated by commas (e.g. Work, Planning)"

	content := textarea.New()
	content.Placeholder = "Start typing your note here…"
	content.CharLimit = 0
	content.MaxHeight = 0
	content.ShowLineNumbers = false

	s := &editorSession{title: title, tags: tags, content: content}
	s.setSize(width, height)
	return s
}

// load fills the form from n, or clears it when n is nil.
func (s *editorSession) load(n *note.Note) {
	if n == nil {
		s.noteID = ""
		s.title.SetValue("")
		s.tags.SetValue("")
		s.content.SetValue("")
	} else {
		s.noteID = n.ID
		s.title.SetValue(n.Title)
		s.tags.SetValue(strings.Join(n.Tags, ", "))
		s.content.SetValue(n.Content)
	}
	s.loaded = true
}

func (s *editorSession) values() note.Values {
	return note.Values{
		Title:   s.title.Value(),
		Content: s.content.Value(),
		Tags:    note.ParseTags(s.tags.Value()),
	}
}

func (s *editorSession) setSize(width, height int) {
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}
	s.title.Width = width - 4
	s.tags.Width = width - 4
	s.content.SetWidth(width)
	s.content.SetHeight(height)
}

func (s *editorSession) focus(field editorField) tea.Cmd {
	s.blur()
	s.field = field
	switch field {
	case fieldTags:
		return s.tags.Focus()
	case fieldContent:
		return s.content.Focus()
	default:
		return s.title.Focus()
	}
}

func (s *editorSession) blur() {
	s.title.Blur()
	s.tags.Blur()
	s.content.Blur()
}

func (s *editorSession) next(step int) tea.Cmd {
	f := (int(s.field) + step + int(fieldCount)) % int(fieldCount)
	return s.focus(editorField(f))
}

func (s *editorSession) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.field {
	case fieldTags:
		s.tags, cmd = s.tags.Update(msg)
	case fieldContent:
		s.content, cmd = s.content.Update(msg)
	default:
		s.title, cmd = s.title.Update(msg)
	}
	return cmd
}
