package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/kwadjo-wusu-ansah/notes/internal/config"
)

func writeConfig(t *testing.T, home string, cfgData map[string]any) {
	t.Helper()

	configPath := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}

	data, err := yaml.Marshal(cfgData)
	if err != nil {
		t.Fatalf("failed to marshal config data: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestLoadAcceptsSupportedBackends(t *testing.T) {
	cases := map[string]map[string]any{
		"file": {"backend": "file"},
		"s3":   {"backend": "s3", "s3": map[string]any{"bucket": "notes"}},
		"postgres": {
			"backend":  "postgres",
			"postgres": map[string]any{"dsn": "postgres://localhost/notes"},
		},
	}

	for backend, storage := range cases {
		backend, storage := backend, storage
		t.Run(backend, func(t *testing.T) {
			home := t.TempDir()
			writeConfig(t, home, map[string]any{"storage": storage})

			cfg, err := config.Load(home)
			if err != nil {
				t.Fatalf("expected load to succeed for backend %q: %v", backend, err)
			}

			if cfg.Storage.Backend != backend {
				t.Fatalf("expected backend %q, got %q", backend, cfg.Storage.Backend)
			}
		})
	}
}

func TestLoadRejectsUnsupportedBackend(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"storage": map[string]any{"backend": "floppy"},
	})

	_, err := config.Load(home)
	if err == nil {
		t.Fatal("expected load to fail for unsupported backend")
	}

	if !strings.Contains(err.Error(), "invalid backend") {
		t.Fatalf("expected invalid backend error, got %v", err)
	}
}

func TestLoadRequiresBucketForS3(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"storage": map[string]any{"backend": "s3"},
	})

	_, err := config.Load(home)
	var initErr *config.ConfigInitError
	if err == nil || !errors.As(err, &initErr) {
		t.Fatalf("expected ConfigInitError, got %v", err)
	}
}

func TestLoadMigratesLegacyConfig(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{"datadir": "/srv/notes"})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Storage.Dir != "/srv/notes" {
		t.Fatalf("expected migrated dir, got %q", cfg.Storage.Dir)
	}
	if cfg.Storage.Backend != config.BackendFile {
		t.Fatalf("expected file backend, got %q", cfg.Storage.Backend)
	}
}

func TestEmptyFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	configPath := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}
	if err := os.WriteFile(configPath, nil, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	wantDir := filepath.Join(home, ".notes", "data")
	if cfg.Storage.Dir != wantDir {
		t.Fatalf("expected dir %q, got %q", wantDir, cfg.Storage.Dir)
	}
	if cfg.UI.ToastSeconds != 4 {
		t.Fatalf("expected 4 second toasts, got %d", cfg.UI.ToastSeconds)
	}
}

func TestEnsureConfigExistsWritesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)
	home := t.TempDir()

	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists returned error: %v", err)
	}

	data, err := os.ReadFile(config.GetConfigPath(home))
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if !strings.Contains(string(data), "backend: file") {
		t.Fatalf("expected default backend in config, got:\n%s", data)
	}
}

func TestChangeBackendPersists(t *testing.T) {
	t.Cleanup(viper.Reset)
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"storage": map[string]any{
			"backend":  "file",
			"postgres": map[string]any{"dsn": "postgres://localhost/notes"},
		},
	})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := cfg.ChangeBackend("tape"); err == nil {
		t.Fatal("expected ChangeBackend to reject unknown backend")
	}

	if err := cfg.ChangeBackend(config.BackendPostgres); err != nil {
		t.Fatalf("ChangeBackend returned error: %v", err)
	}

	reloaded, err := config.Load(home)
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	if reloaded.Storage.Backend != config.BackendPostgres {
		t.Fatalf("expected persisted backend, got %q", reloaded.Storage.Backend)
	}
	if viper.GetString("storage.backend") != config.BackendPostgres {
		t.Fatalf("expected viper to follow saved backend")
	}
}

func TestApplyOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg := config.Default(t.TempDir())
	viper.Set("data_dir", "/tmp/elsewhere")

	if err := cfg.ApplyOverrides(); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}
	if cfg.Storage.Dir != "/tmp/elsewhere" {
		t.Fatalf("expected overridden dir, got %q", cfg.Storage.Dir)
	}

	viper.Set("backend", "s3")
	if err := cfg.ApplyOverrides(); err == nil {
		t.Fatal("expected s3 without bucket to fail validation")
	}
}
