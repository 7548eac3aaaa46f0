// Package settings is the theme and font picker.
package settings

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erikgeiser/promptkit/selection"

	"github.com/kwadjo-wusu-ansah/notes/internal/theme"
)

const (
	SettingTheme = "Color Theme"
	SettingFont  = "Font Theme"
)

// Applier stores a chosen preference.
type Applier interface {
	Preferences() theme.Preferences
	ApplyTheme(ctx context.Context, value string) error
	ApplyFont(ctx context.Context, value string) error
}

// ClosedMsg is sent when an embedded settings panel is left.
type ClosedMsg struct{}

// AppliedMsg reports a stored preference.
type AppliedMsg struct {
	Setting string
	Value   string
	Err     error
}

type ListItem struct {
	title       string
	description string
}

func (i ListItem) Title() string       { return i.title }
func (i ListItem) Description() string { return i.description }
func (i ListItem) FilterValue() string { return i.title }

type listKeyMap struct {
	toggleEditItem key.Binding
	exitInputMode  key.Binding
	quit           key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		toggleEditItem: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit item"),
		),
		exitInputMode: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type ListModel struct {
	ctx        context.Context
	list       list.Model
	keys       *listKeyMap
	applier    Applier
	selects    map[string]*selection.Model[string]
	active     string
	standalone bool
	status     string
}

// NewListModel builds the picker. A standalone model quits the program when
// left; an embedded one sends ClosedMsg instead.
func NewListModel(ctx context.Context, a Applier, standalone bool) *ListModel {
	listKeys := newListKeyMap()

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	settingsList := list.New(items(a.Preferences()), d, 0, 0)
	settingsList.Title = "Settings"
	settingsList.Styles.Title = titleStyle
	settingsList.SetFilteringEnabled(false)
	settingsList.SetShowStatusBar(false)
	settingsList.KeyMap.Quit.SetEnabled(false)
	settingsList.SetSize(60, 12)

	return &ListModel{
		ctx:        ctx,
		list:       settingsList,
		keys:       listKeys,
		applier:    a,
		standalone: standalone,
		selects: map[string]*selection.Model[string]{
			SettingTheme: newSelect("Choose a color theme.", themeLabels()),
			SettingFont:  newSelect("Choose a font theme.", fontLabels()),
		},
	}
}

func items(p theme.Preferences) []list.Item {
	return []list.Item{
		ListItem{title: SettingTheme, description: p.Theme.Label()},
		ListItem{title: SettingFont, description: p.Font.Label()},
	}
}

func themeLabels() []string {
	labels := make([]string, 0, len(theme.Themes))
	for _, t := range theme.Themes {
		labels = append(labels, t.Label())
	}
	return labels
}

func fontLabels() []string {
	labels := make([]string, 0, len(theme.Fonts))
	for _, f := range theme.Fonts {
		labels = append(labels, f.Label())
	}
	return labels
}

func newSelect(prompt string, choices []string) *selection.Model[string] {
	sel := selection.New(prompt, choices)
	sel.Filter = nil
	return selection.NewModel(sel)
}

// Selecting reports which setting's choices are open, or "".
func (m *ListModel) Selecting() string { return m.active }

func (m *ListModel) Init() tea.Cmd {
	return nil
}

func (m *ListModel) SetSize(width, height int) {
	h, v := appStyle.GetFrameSize()
	m.list.SetSize(width-h, height-v)
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.active != "" {
			return m.updateSelect(msg)
		}

		switch {
		case key.Matches(msg, m.keys.toggleEditItem):
			i, ok := m.list.SelectedItem().(ListItem)
			if !ok {
				return m, nil
			}
			sel := m.selects[i.title]
			if sel == nil {
				return m, nil
			}
			m.active = i.title
			return m, sel.Init()

		case key.Matches(msg, m.keys.exitInputMode), key.Matches(msg, m.keys.quit):
			return m, m.close()
		}
	}

	newListModel, cmd := m.list.Update(msg)
	m.list = newListModel
	return m, cmd
}

func (m *ListModel) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.selects[m.active]

	if key.Matches(msg, m.keys.exitInputMode) {
		m.active = ""
		return m, nil
	}

	if !key.Matches(msg, m.keys.toggleEditItem) {
		// The selection quits on its own keys; only movement is forwarded.
		_, cmd := sel.Update(msg)
		return m, filterQuit(cmd)
	}

	choice, err := sel.Value()
	setting := m.active
	m.active = ""
	if err != nil {
		return m, nil
	}

	switch setting {
	case SettingTheme:
		err = m.applier.ApplyTheme(m.ctx, choice)
	case SettingFont:
		err = m.applier.ApplyFont(m.ctx, choice)
	}

	if err != nil {
		m.status = fmt.Sprintf("Could not update %s: %v", setting, err)
	} else {
		m.status = "Updated and Saved: " + setting
		m.list.SetItems(items(m.applier.Preferences()))
	}
	m.list.NewStatusMessage(statusMessageStyle(m.status))

	applied := AppliedMsg{Setting: setting, Value: choice, Err: err}
	return m, func() tea.Msg { return applied }
}

func filterQuit(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return nil
		}
		return msg
	}
}

func (m *ListModel) close() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return func() tea.Msg { return ClosedMsg{} }
}

func (m *ListModel) View() string {
	if m.active != "" {
		return appStyle.Render(m.selects[m.active].View())
	}
	return appStyle.Render(m.list.View())
}

// Run opens the picker as its own program.
func Run(ctx context.Context, a Applier) error {
	if _, err := tea.NewProgram(NewListModel(ctx, a, true), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running settings: %w", err)
	}
	return nil
}
