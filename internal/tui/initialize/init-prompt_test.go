package initialize

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/kwadjo-wusu-ansah/notes/internal/config"
)

func submitForm(t *testing.T, m InitPromptModel) (InitPromptModel, tea.Cmd) {
	t.Helper()

	var model tea.Model = m
	var cmd tea.Cmd
	for model.(InitPromptModel).focusIndex != inputCount {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	model, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return model.(InitPromptModel), cmd
}

func TestSubmitBlankFormWritesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Cleanup(viper.Reset)

	m, cmd := submitForm(t, InitialPrompt(home))

	cfg, done := m.Config()
	if !done || cmd == nil {
		t.Fatalf("expected the form to finish, err=%v", m.err)
	}
	if cfg.Storage.Backend != config.BackendFile {
		t.Fatalf("unexpected backend: %q", cfg.Storage.Backend)
	}
	if _, err := os.Stat(config.GetConfigPath(home)); err != nil {
		t.Fatalf("expected config file: %v", err)
	}
}

func TestSubmitUsesTypedValues(t *testing.T) {
	home := t.TempDir()
	t.Cleanup(viper.Reset)
	dir := filepath.Join(home, "elsewhere")

	var model tea.Model = InitialPrompt(home)
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(dir)})

	m, _ := submitForm(t, model.(InitPromptModel))
	loaded, err := config.Load(home)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Storage.Dir != dir {
		t.Fatalf("unexpected data dir: got %q, want %q (err=%v)", loaded.Storage.Dir, dir, m.err)
	}
}

func TestSubmitRejectsIncompleteS3(t *testing.T) {
	home := t.TempDir()
	t.Cleanup(viper.Reset)

	var model tea.Model = InitialPrompt(home)
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s3")})

	m, cmd := submitForm(t, model.(InitPromptModel))
	if _, done := m.Config(); done || cmd != nil {
		t.Fatal("expected the form to stay open")
	}
	if m.err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestEscapeQuitsWithoutSaving(t *testing.T) {
	home := t.TempDir()

	model, cmd := InitialPrompt(home).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if _, done := model.(InitPromptModel).Config(); done {
		t.Fatal("escape must not save")
	}
	if _, err := os.Stat(config.GetConfigPath(home)); !os.IsNotExist(err) {
		t.Fatalf("expected no config file, got %v", err)
	}
}
