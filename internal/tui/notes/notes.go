// Package notes is the interactive note browser and editor.
package notes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kwadjo-wusu-ansah/notes/internal/confirm"
	"github.com/kwadjo-wusu-ansah/notes/internal/controller"
	"github.com/kwadjo-wusu-ansah/notes/internal/render"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	"github.com/kwadjo-wusu-ansah/notes/internal/toast"
	"github.com/kwadjo-wusu-ansah/notes/internal/tui/settings"
	"github.com/kwadjo-wusu-ansah/notes/internal/views"
)

const (
	sidebarWidth = 34
	chromeHeight = 8
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusEditor
	focusSearch
	focusTags
	focusSettings
)

type toastExpiredMsg struct {
	id int
}

// decisionMsg carries the answer to an archive or delete prompt.
type decisionMsg struct {
	decision *controller.Decision
	result   confirm.Result
}

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

type Options struct {
	Controller *controller.Controller
	Tray       *toast.Tray
	Watcher    *state.NotesWatcher
	Logger     *slog.Logger
	// Route and NoteID choose the first page. Both may be empty.
	Route  string
	NoteID string
}

type NoteListModel struct {
	ctx        context.Context
	ctl        *controller.Controller
	tray       *toast.Tray
	watcher    *state.NotesWatcher
	logger     *slog.Logger
	list       list.Model
	editor     *editorSession
	search     textinput.Model
	settings   *settings.ListModel
	help       help.Model
	keys       *listKeyMap
	editorKeys *editorKeyMap
	modalKeys  *modalKeyMap
	inputKeys  *inputKeyMap
	styles     styles
	vs         views.ViewState
	focus      focusArea
	tagCursor  int
	pending    *controller.Decision
	status     string
	width      int
	height     int
}

func NewNoteListModel(ctx context.Context, opts Options) (*NoteListModel, error) {
	if opts.Controller == nil {
		return nil, errors.New("notes: a controller is required")
	}
	if opts.Tray == nil {
		opts.Tray = toast.NewTray(toast.DefaultDuration)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	d := list.NewDefaultDelegate()
	l := list.New(nil, d, sidebarWidth, 20)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)

	search := textinput.New()
	search.Placeholder = "Search by title, content, or tags…"
	search.Prompt = "/ "
	search.Width = sidebarWidth - 4

	m := &NoteListModel{
		ctx:        ctx,
		ctl:        opts.Controller,
		tray:       opts.Tray,
		watcher:    opts.Watcher,
		logger:     opts.Logger,
		list:       l,
		editor:     newEditorSession(60, 20),
		search:     search,
		help:       help.New(),
		keys:       newListKeyMap(),
		editorKeys: newEditorKeyMap(),
		modalKeys:  newModalKeyMap(),
		inputKeys:  newInputKeyMap(),
	}

	switch {
	case opts.Route != "":
		m.ctl.NavigateTo(opts.Route, controller.NavOptions{NoteID: opts.NoteID})
	case opts.NoteID != "":
		m.ctl.SelectNote(opts.NoteID)
	}
	m.sync(true)
	return m, nil
}

func (m *NoteListModel) Init() tea.Cmd {
	return tea.Batch(m.watcher.Start(), m.toastCmds())
}

// View state currently shown.
func (m *NoteListModel) ViewState() views.ViewState { return m.vs }

// sync pulls the latest page from the controller. The form is refilled
// when reset is set, when the open note changed, or when it is not being
// edited.
func (m *NoteListModel) sync(reset bool) {
	vs := m.ctl.View()
	m.vs = vs
	m.styles = newStyles(m.ctl.Preferences())

	m.list.SetItems(castToListItems(vs))
	m.list.Select(m.selectedIndex())

	want := vs.ActiveNoteID
	if vs.IsCreateMode || vs.ActiveNote == nil {
		want = ""
	}
	if reset || !m.editor.loaded || m.editor.noteID != want || m.focus != focusEditor {
		if vs.IsCreateMode {
			m.editor.load(nil)
		} else {
			m.editor.load(vs.ActiveNote)
		}
	}

	if !vs.IsSearchMode && m.focus != focusSearch {
		m.search.SetValue("")
	}
	if m.tagCursor >= len(vs.Tags) {
		m.tagCursor = max(len(vs.Tags)-1, 0)
	}
}

func (m *NoteListModel) selectedIndex() int {
	if m.vs.CreatePlaceholder {
		return 0
	}
	for i, n := range m.vs.Notes {
		if n.ID == m.vs.ActiveNoteID {
			return i
		}
	}
	return 0
}

// toastCmds starts the expiry timer of every new toast.
func (m *NoteListModel) toastCmds() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range m.tray.Unscheduled() {
		id := t.ID
		cmds = append(cmds, tea.Tick(t.Duration, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		}))
	}
	return tea.Batch(cmds...)
}

// after refreshes the model once the controller has acted.
func (m *NoteListModel) after(reset bool, cmds ...tea.Cmd) tea.Cmd {
	m.sync(reset)
	return tea.Batch(append(cmds, m.toastCmds())...)
}

func (m *NoteListModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.editor.blur()
	m.search.Blur()

	switch f {
	case focusEditor:
		return m.editor.focus(fieldTitle)
	case focusSearch:
		m.search.SetValue(m.vs.SearchQuery)
		m.search.CursorEnd()
		return m.search.Focus()
	}
	return nil
}

func (m *NoteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case toastExpiredMsg:
		m.tray.Dismiss(msg.id)
		return m, nil

	case decisionMsg:
		m.pending = nil
		if _, err := m.ctl.Finish(m.ctx, msg.decision, msg.result); err != nil {
			m.logger.Error("action failed", "action", msg.decision.Action, "err", err)
		}
		return m, m.after(false)

	case state.NotesChangedMsg:
		changed, err := m.ctl.Reload(m.ctx)
		if err != nil {
			m.logger.Error("reload failed", "path", msg.Path, "err", err)
		}
		if changed {
			return m, m.after(false, m.watcher.Start())
		}
		return m, m.watcher.Start()

	case state.NotesWatcherErrMsg:
		m.logger.Warn("notes watcher error", "err", msg.Err)
		return m, m.watcher.Start()

	case settings.ClosedMsg:
		m.settings = nil
		return m, m.setFocus(focusSidebar)

	case settings.AppliedMsg:
		return m, m.after(false)

	case tea.KeyMsg:
		if m.ctl.Modal().IsOpen() {
			return m, m.handleModalKey(msg)
		}

		switch m.focus {
		case focusEditor:
			return m, m.handleEditorKey(msg)
		case focusSearch:
			return m, m.handleSearchKey(msg)
		case focusTags:
			return m, m.handleTagKey(msg)
		case focusSettings:
			if m.settings != nil {
				_, cmd := m.settings.Update(msg)
				return m, cmd
			}
		}
		return m, m.handleSidebarKey(msg)
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusEditor:
		cmd = m.editor.update(msg)
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	case focusSettings:
		if m.settings != nil {
			_, cmd = m.settings.Update(msg)
		}
	}
	return m, cmd
}

func (m *NoteListModel) resize(width, height int) {
	m.width = width
	m.height = height

	h, v := appStyle.GetFrameSize()
	m.list.SetSize(sidebarWidth, max(height-v-chromeHeight-len(m.vs.Tags)-2, 4))
	m.editor.setSize(width-h-sidebarWidth-4, height-v-chromeHeight-4)
	if m.settings != nil {
		m.settings.SetSize(width, height)
	}
}

func (m *NoteListModel) handleSidebarKey(msg tea.KeyMsg) tea.Cmd {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.quit):
		return tea.Quit

	case key.Matches(msg, m.keys.up), key.Matches(msg, m.keys.down):
		if key.Matches(msg, m.keys.up) {
			m.list.CursorUp()
		} else {
			m.list.CursorDown()
		}
		item, ok := m.list.SelectedItem().(ListItem)
		if !ok || item.placeholder {
			return nil
		}
		m.ctl.SelectNote(item.id)
		return m.after(false)

	case key.Matches(msg, m.keys.edit), key.Matches(msg, m.keys.toggleFocus):
		if m.vs.ActiveNote == nil && !m.vs.IsCreateMode {
			return nil
		}
		return m.setFocus(focusEditor)

	case key.Matches(msg, m.keys.allNotes):
		m.ctl.NavigateTo(views.KeyAllNotes, controller.NavOptions{})
		return m.after(false)

	case key.Matches(msg, m.keys.archived):
		m.ctl.NavigateTo(views.KeyArchivedNotes, controller.NavOptions{})
		return m.after(false)

	case key.Matches(msg, m.keys.tags):
		if len(m.vs.Tags) == 0 {
			return nil
		}
		return m.setFocus(focusTags)

	case key.Matches(msg, m.keys.search):
		return m.setFocus(focusSearch)

	case key.Matches(msg, m.keys.create):
		m.ctl.NavigateTo(views.KeyCreateNote, controller.NavOptions{})
		m.sync(true)
		return m.setFocus(focusEditor)

	case key.Matches(msg, m.keys.archive):
		return m.begin(controller.ActionArchive)

	case key.Matches(msg, m.keys.delete):
		return m.begin(controller.ActionDelete)

	case key.Matches(msg, m.keys.restore):
		if _, err := m.ctl.Restore(m.ctx, ""); err != nil {
			m.logger.Error("restore failed", "err", err)
		}
		return m.after(false)

	case key.Matches(msg, m.keys.copy):
		if m.vs.ActiveNote == nil {
			return nil
		}
		if err := clipboardWrite(m.vs.ActiveNote.Content); err != nil {
			m.status = fmt.Sprintf("Error copying note: %v", err)
		} else {
			m.status = "Copied note content to the clipboard"
		}
		return nil

	case key.Matches(msg, m.keys.settings):
		m.settings = settings.NewListModel(m.ctx, m.ctl, false)
		if m.width > 0 {
			m.settings.SetSize(m.width, m.height)
		}
		m.focus = focusSettings
		return m.settings.Init()

	case key.Matches(msg, m.keys.dismissToast):
		if t, ok := m.tray.Latest(); ok {
			m.tray.Dismiss(t.ID)
		}
		return nil

	case key.Matches(msg, m.keys.followToast):
		t, ok := m.tray.Latest()
		if !ok || t.Action == nil {
			return nil
		}
		m.tray.Dismiss(t.ID)
		m.ctl.NavigateTo(t.Action.Route, controller.NavOptions{})
		return m.after(false)
	}
	return nil
}

// begin opens the prompt for action and waits for it off the update loop.
func (m *NoteListModel) begin(action controller.Action) tea.Cmd {
	d, ok := m.ctl.Begin(action, "")
	if !ok {
		return nil
	}
	m.pending = d
	ctx := m.ctx
	return func() tea.Msg {
		return decisionMsg{decision: d, result: d.Pending.Wait(ctx)}
	}
}

func (m *NoteListModel) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	modal := m.ctl.Modal()
	switch {
	case key.Matches(msg, m.modalKeys.confirm):
		modal.Confirm()
	case key.Matches(msg, m.modalKeys.cancel):
		modal.Cancel()
	case key.Matches(msg, m.modalKeys.escape):
		modal.Escape()
	}
	return nil
}

func (m *NoteListModel) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.editorKeys.save):
		res, err := m.ctl.Save(m.ctx, m.editor.values())
		if err != nil {
			m.logger.Error("save failed", "err", err)
		}
		switch res {
		case controller.SaveIgnored, controller.SaveFailed:
			return m.after(false)
		}
		m.setFocus(focusSidebar)
		return m.after(true)

	case key.Matches(msg, m.editorKeys.cancel):
		m.setFocus(focusSidebar)
		m.ctl.Cancel()
		return m.after(true)

	case key.Matches(msg, m.editorKeys.nextField):
		return m.editor.next(1)

	case key.Matches(msg, m.editorKeys.prevField):
		return m.editor.next(-1)
	}
	return m.editor.update(msg)
}

func (m *NoteListModel) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.inputKeys.submit), key.Matches(msg, m.inputKeys.exit):
		return m.setFocus(focusSidebar)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.ctl.SearchInput(m.search.Value())
	return m.after(false, cmd)
}

func (m *NoteListModel) handleTagKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.up):
		if m.tagCursor > 0 {
			m.tagCursor--
		}
	case key.Matches(msg, m.keys.down):
		if m.tagCursor < len(m.vs.Tags)-1 {
			m.tagCursor++
		}
	case key.Matches(msg, m.inputKeys.submit):
		if m.tagCursor >= len(m.vs.Tags) {
			return nil
		}
		m.ctl.NavigateTo(views.TagRoute(m.vs.Tags[m.tagCursor]), controller.NavOptions{})
		m.setFocus(focusSidebar)
		return m.after(false)
	case key.Matches(msg, m.inputKeys.exit), key.Matches(msg, m.keys.tags):
		return m.setFocus(focusSidebar)
	}
	return nil
}

func (m *NoteListModel) View() string {
	if m.focus == focusSettings && m.settings != nil {
		return m.settings.View()
	}

	st := m.styles
	header := lipgloss.JoinVertical(lipgloss.Left,
		views.RenderNav(m.vs.NavRoute, st.views),
		views.RenderHeader(m.vs.Header, st.views),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		st.list.Width(sidebarWidth).Render(m.sidebarView()),
		st.preview.Render(m.mainView()),
	)

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		"",
		m.footerView(),
	))
}

func (m *NoteListModel) sidebarView() string {
	st := m.styles
	sections := []string{}

	if m.focus == focusSearch || m.vs.IsSearchMode {
		sections = append(sections, st.input.Render(m.search.View()))
	}
	if info := views.RenderInfo(m.vs.Info, st.views); info != "" {
		sections = append(sections, lipgloss.NewStyle().Width(sidebarWidth).Render(info))
	}
	if m.vs.ShowTopDivider {
		sections = append(sections, st.muted.Render(strings.Repeat("─", sidebarWidth)))
	}
	if len(m.list.Items()) > 0 {
		sections = append(sections, m.list.View())
	}
	sections = append(sections, "", m.tagsView())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *NoteListModel) tagsView() string {
	if m.focus != focusTags {
		return views.RenderTags(m.vs, m.styles.views)
	}

	lines := []string{m.styles.title.Render("Tags")}
	for i, tag := range m.vs.Tags {
		if i == m.tagCursor {
			lines = append(lines, m.styles.selected.Render("> # "+tag))
		} else {
			lines = append(lines, m.styles.muted.Render("  # "+tag))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *NoteListModel) mainView() string {
	st := m.styles

	if p, ok := m.ctl.Modal().Current(); ok {
		return modalView(p.Request, st)
	}

	if m.vs.EmptyState != views.EmptyNone {
		text := m.vs.EmptyState.Text()
		if m.vs.EmptyState.LinksToCreate() {
			text += "\n\n" + st.focused.Render("Press n to create a new note.")
		}
		return st.text.Render(text)
	}

	if m.focus == focusEditor || m.vs.IsCreateMode {
		return m.editorView()
	}

	n := m.vs.ActiveNote
	if n == nil {
		return ""
	}

	meta := []string{
		st.muted.Render("Tags: ") + st.text.Render(tagsOrNone(n.Tags)),
		st.muted.Render("Last edited: ") + st.text.Render(n.LastEdited),
	}
	if n.Archived {
		meta = append(meta, st.muted.Render("Status: ")+st.text.Render("Archived"))
	}

	width := m.width - sidebarWidth - 8
	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(meta, "\n"),
		render.Markdown(render.Document(n.Title, n.Content), width, m.ctl.Preferences().Theme),
	)
}

func (m *NoteListModel) editorView() string {
	st := m.styles
	label := func(field editorField, text string) string {
		if m.focus == focusEditor && m.editor.field == field {
			return st.focused.Render(text)
		}
		return st.muted.Render(text)
	}

	heading := "Editing"
	if m.vs.IsCreateMode {
		heading = "New note"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(heading),
		label(fieldTitle, "Title"),
		m.editor.title.View(),
		label(fieldTags, "Tags"),
		m.editor.tags.View(),
		label(fieldContent, "Content"),
		m.editor.content.View(),
	)
}

func modalView(req confirm.Request, st styles) string {
	title := st.title.Render(req.Title)
	if req.Danger {
		title = st.danger.Render(req.Title)
	}
	return st.modal.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		st.text.Render(req.Message),
		"",
		st.muted.Render(fmt.Sprintf("y %s · n cancel · esc close", req.ConfirmLabel)),
	))
}

func (m *NoteListModel) footerView() string {
	st := m.styles
	lines := []string{}

	for _, t := range m.tray.Items() {
		style := st.toast
		if t.Kind == toast.Failure {
			style = st.toastFail
		}
		line := style.Render(t.Message)
		if t.Action != nil {
			line += st.muted.Render(fmt.Sprintf("  (g: %s)", t.Action.Label))
		}
		lines = append(lines, line)
	}
	if m.status != "" {
		lines = append(lines, st.muted.Render(m.status))
	}

	var bindings []key.Binding
	switch m.focus {
	case focusEditor:
		bindings = m.editorKeys.shortHelp()
	default:
		bindings = m.keys.shortHelp()
	}
	lines = append(lines, renderHelpWithinWidth(st.help, m.width, m.help.ShortHelpView(bindings)))

	return strings.Join(lines, "\n")
}

func tagsOrNone(tags []string) string {
	if len(tags) == 0 {
		return "No tags yet"
	}
	return strings.Join(tags, ", ")
}

// Run starts the browser in the alternate screen and blocks until it quits.
func Run(ctx context.Context, opts Options) error {
	m, err := NewNoteListModel(ctx, opts)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
