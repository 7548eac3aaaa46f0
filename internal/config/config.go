package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	BackendFile     = "file"
	BackendS3       = "s3"
	BackendPostgres = "postgres"

	defaultToastSeconds = 4
	defaultDataDir      = "data"
	defaultLogFile      = "notes.log"
)

var validBackendNames = []string{BackendFile, BackendS3, BackendPostgres}

var ValidBackends = func() map[string]bool {
	backends := make(map[string]bool, len(validBackendNames))
	for _, b := range validBackendNames {
		backends[b] = true
	}
	return backends
}()

type S3Config struct {
	Bucket   string `yaml:"bucket"   json:"bucket"`
	Prefix   string `yaml:"prefix"   json:"prefix"`
	Region   string `yaml:"region"   json:"region"`
	Endpoint string `yaml:"endpoint" json:"endpoint"`
}

type PostgresConfig struct {
	DSN       string `yaml:"dsn"       json:"dsn"`
	Namespace string `yaml:"namespace" json:"namespace"`
}

type StorageConfig struct {
	Backend    string         `yaml:"backend"     json:"backend"`
	Dir        string         `yaml:"dir"         json:"dir"`
	QuotaBytes int64          `yaml:"quota_bytes" json:"quota_bytes"`
	S3         S3Config       `yaml:"s3"          json:"s3"`
	Postgres   PostgresConfig `yaml:"postgres"    json:"postgres"`
}

type UIConfig struct {
	ToastSeconds int    `yaml:"toast_seconds" json:"toast_seconds"`
	LogFile      string `yaml:"log_file"      json:"log_file"`
}

type Config struct {
	Storage  StorageConfig `yaml:"storage"   json:"storage"`
	UI       UIConfig      `yaml:"ui"        json:"ui"`
	SeedFile string        `yaml:"seed_file" json:"seed_file"`

	home string
}

// legacyConfig is the flat layout written by early releases.
type legacyConfig struct {
	DataDir string `yaml:"datadir"`
	Backend string `yaml:"backend"`
}

func ValidateBackend(backend string) error {
	if _, valid := ValidBackends[backend]; valid {
		return nil
	}

	return fmt.Errorf(
		"invalid backend: %q. Please choose from %s.",
		backend,
		validBackendList(),
	)
}

func validBackendList() string {
	quoted := make([]string, len(validBackendNames))
	for i, name := range validBackendNames {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

// Default returns the configuration written on first run.
func Default(home string) *Config {
	cfg := &Config{home: home}
	cfg.ensureDefaults()
	return cfg
}

func (cfg *Config) ensureDefaults() {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendFile
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = filepath.Join(filepath.Dir(GetConfigPath(cfg.home)), defaultDataDir)
	}
	if cfg.UI.ToastSeconds <= 0 {
		cfg.UI.ToastSeconds = defaultToastSeconds
	}
	if cfg.UI.LogFile == "" {
		cfg.UI.LogFile = filepath.Join(filepath.Dir(GetConfigPath(cfg.home)), defaultLogFile)
	}
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) > 0 {
		raw := make(map[string]interface{})
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}

		if _, ok := raw["storage"]; ok {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		} else {
			var legacy legacyConfig
			if err := yaml.Unmarshal(data, &legacy); err != nil {
				return nil, err
			}
			cfg = migrateLegacyConfig(&legacy)
		}
	}

	cfg.home = home
	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func migrateLegacyConfig(legacy *legacyConfig) *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: legacy.Backend,
			Dir:     legacy.DataDir,
		},
	}
}

// Validate checks the settings the selected backend depends on.
func (cfg *Config) Validate() error {
	if err := ValidateBackend(cfg.Storage.Backend); err != nil {
		return err
	}
	if cfg.Storage.QuotaBytes < 0 {
		return fmt.Errorf("invalid quota_bytes: %d. It cannot be negative.", cfg.Storage.QuotaBytes)
	}

	switch cfg.Storage.Backend {
	case BackendS3:
		if strings.TrimSpace(cfg.Storage.S3.Bucket) == "" {
			return &ConfigInitError{msg: `required config variable "storage.s3.bucket" is not set`}
		}
	case BackendPostgres:
		if strings.TrimSpace(cfg.Storage.Postgres.DSN) == "" {
			return &ConfigInitError{msg: `required config variable "storage.postgres.dsn" is not set`}
		}
	}
	return nil
}

// ApplyOverrides copies flag and NOTES_* environment values bound in viper
// over the file settings.
func (cfg *Config) ApplyOverrides() error {
	if viper.IsSet("backend") {
		if b := viper.GetString("backend"); b != "" {
			cfg.Storage.Backend = b
		}
	}
	if viper.IsSet("data_dir") {
		if d := viper.GetString("data_dir"); d != "" {
			cfg.Storage.Dir = d
		}
	}
	if viper.IsSet("s3_bucket") {
		cfg.Storage.S3.Bucket = viper.GetString("s3_bucket")
	}
	if viper.IsSet("postgres_dsn") {
		cfg.Storage.Postgres.DSN = viper.GetString("postgres_dsn")
	}
	return cfg.Validate()
}

func (cfg *Config) ChangeBackend(backend string) error {
	if err := ValidateBackend(backend); err != nil {
		return err
	}

	cfg.Storage.Backend = backend
	return cfg.Save()
}

func (cfg *Config) syncViper() {
	viper.Set("storage.backend", cfg.Storage.Backend)
	viper.Set("storage.dir", cfg.Storage.Dir)
	viper.Set("ui.toast_seconds", cfg.UI.ToastSeconds)
}

func (cfg *Config) GetConfigPath() string {
	if cfg.home != "" {
		return GetConfigPath(cfg.home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return GetConfigPath(homeDir)
}

// Home is the directory the configuration was loaded from.
func (cfg *Config) Home() string {
	return cfg.home
}

func (cfg *Config) Save() error {
	if err := ValidateBackend(cfg.Storage.Backend); err != nil {
		return err
	}

	cfg.syncViper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}
