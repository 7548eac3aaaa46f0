package notes

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	up           key.Binding
	down         key.Binding
	edit         key.Binding
	toggleFocus  key.Binding
	allNotes     key.Binding
	archived     key.Binding
	tags         key.Binding
	search       key.Binding
	create       key.Binding
	archive      key.Binding
	restore      key.Binding
	delete       key.Binding
	copy         key.Binding
	settings     key.Binding
	dismissToast key.Binding
	followToast  key.Binding
	quit         key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("↵", "edit"),
		),
		toggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		allNotes: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all notes"),
		),
		archived: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "archived"),
		),
		tags: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tags"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		create: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		archive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "archive"),
		),
		restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
		delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		dismissToast: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss"),
		),
		followToast: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (m listKeyMap) shortHelp() []key.Binding {
	return []key.Binding{
		m.edit,
		m.create,
		m.search,
		m.archive,
		m.restore,
		m.delete,
		m.settings,
		m.quit,
	}
}

type editorKeyMap struct {
	save      key.Binding
	cancel    key.Binding
	nextField key.Binding
	prevField key.Binding
}

func newEditorKeyMap() *editorKeyMap {
	return &editorKeyMap{
		save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		nextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		prevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
	}
}

func (m editorKeyMap) shortHelp() []key.Binding {
	return []key.Binding{m.save, m.cancel, m.nextField}
}

type modalKeyMap struct {
	confirm key.Binding
	cancel  key.Binding
	escape  key.Binding
}

func newModalKeyMap() *modalKeyMap {
	return &modalKeyMap{
		confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		cancel: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "cancel"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

type inputKeyMap struct {
	submit key.Binding
	exit   key.Binding
}

func newInputKeyMap() *inputKeyMap {
	return &inputKeyMap{
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "done"),
		),
		exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}
