// Package initialize is the first-run setup form behind `notes init`.
package initialize

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kwadjo-wusu-ansah/notes/internal/config"
)

var (
	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF"))
	focusedDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#585b70"))
	blurredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FB3748"))
	cursorStyle         = focusedStyle.Copy()
	noStyle             = lipgloss.NewStyle()
	helpStyle           = blurredStyle.Copy()
	cursorModeHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF"))

	focusedButton = focusedStyle.Copy().Render("[ Submit ]")
	blurredButton = fmt.Sprintf(
		"[ %s ]",
		blurredStyle.Render("Submit"),
	)
)

const (
	inputBackend = iota
	inputDataDir
	inputBucket
	inputDSN
	inputCount
)

type InitPromptModel struct {
	home       string
	inputs     []textinput.Model
	focusIndex int
	cursorMode cursor.Mode
	cfg        *config.Config
	err        error
	done       bool
}

func InitialPrompt(home string) InitPromptModel {
	m := InitPromptModel{
		home:   home,
		inputs: make([]textinput.Model, inputCount),
	}

	defaults := config.Default(home)

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 256
		t.PlaceholderStyle = focusedDimStyle
		t.PromptStyle = noStyle

		switch i {
		case inputBackend:
			t.Prompt = "Storage Backend (file, s3, postgres): "
			t.Placeholder = defaults.Storage.Backend
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
			t.CharLimit = 16
		case inputDataDir:
			t.Prompt = "Data Directory: "
			t.Placeholder = defaults.Storage.Dir
		case inputBucket:
			t.Prompt = "S3 Bucket: "
			t.Placeholder = "only for the s3 backend"
		case inputDSN:
			t.Prompt = "Postgres DSN: "
			t.Placeholder = "only for the postgres backend"
		}

		m.inputs[i] = t
	}

	return m
}

// Config is the saved configuration once the form was submitted.
func (m InitPromptModel) Config() (*config.Config, bool) {
	return m.cfg, m.done
}

func (m InitPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m InitPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+r":
			m.cursorMode++
			if m.cursorMode > cursor.CursorHide {
				m.cursorMode = cursor.CursorBlink
			}
			cmds := make([]tea.Cmd, len(m.inputs))
			for i := range m.inputs {
				cmds[i] = m.inputs[i].Cursor.SetMode(m.cursorMode)
			}
			return m, tea.Batch(cmds...)

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m.submit()
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := 0; i <= len(m.inputs)-1; i++ {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle
					continue
				}
				m.inputs[i].Blur()
				m.inputs[i].PromptStyle = noStyle
				m.inputs[i].TextStyle = noStyle
			}

			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)

	return m, cmd
}

// submit builds the configuration from the form, filling blanks with
// defaults. An invalid form stays open with the error shown.
func (m InitPromptModel) submit() (tea.Model, tea.Cmd) {
	cfg := config.Default(m.home)

	if v := strings.TrimSpace(m.inputs[inputBackend].Value()); v != "" {
		cfg.Storage.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(m.inputs[inputDataDir].Value()); v != "" {
		cfg.Storage.Dir = v
	}
	cfg.Storage.S3.Bucket = strings.TrimSpace(m.inputs[inputBucket].Value())
	cfg.Storage.Postgres.DSN = strings.TrimSpace(m.inputs[inputDSN].Value())

	if err := cfg.Validate(); err != nil {
		m.err = err
		return m, nil
	}
	if err := cfg.Save(); err != nil {
		m.err = err
		return m, nil
	}

	m.cfg = cfg
	m.done = true
	m.err = nil
	return m, tea.Quit
}

func (m *InitPromptModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m InitPromptModel) View() string {
	var b strings.Builder

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		if i < len(m.inputs)-1 {
			b.WriteRune('\n')
		}
	}

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}
	fmt.Fprintf(&b, "\n\n%s\n\n", *button)

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("cursor mode is "))
	b.WriteString(cursorModeHelpStyle.Render(m.cursorMode.String()))
	b.WriteString(helpStyle.Render(" (ctrl+r to change style)"))
	b.WriteString(
		helpStyle.Render("\n(Leave inputs blank for default values)"),
	)

	return b.String()
}

// Run shows the form and returns the saved configuration, or false when the
// form was left without submitting.
func Run(home string) (*config.Config, bool, error) {
	final, err := tea.NewProgram(InitialPrompt(home)).Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := final.(InitPromptModel)
	if !ok {
		return nil, false, nil
	}
	cfg, done := m.Config()
	return cfg, done, nil
}
