package state

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kwadjo-wusu-ansah/notes/internal/config"
	"github.com/kwadjo-wusu-ansah/notes/internal/constants"
	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/seed"
	"github.com/kwadjo-wusu-ansah/notes/internal/storage"
	"github.com/kwadjo-wusu-ansah/notes/internal/storage/filestore"
	"github.com/kwadjo-wusu-ansah/notes/internal/storage/pgstore"
	"github.com/kwadjo-wusu-ansah/notes/internal/storage/s3store"
)

// State carries what every command needs. Config is read when the state is
// built; the store and logger are created by Open once flags are parsed.
type State struct {
	Config  *config.Config
	Logger  *slog.Logger
	Store   *storage.Store
	Starter []note.Raw
	Home    string
	Watcher *NotesWatcher

	logFile *os.File
	opened  bool
}

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	return &State{
		Config: cfg,
		Home:   home,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

// LoadConfig reads the config file, creating it on first run. Variables in
// a .env file beside it are loaded first without replacing ones already set,
// so backend credentials can live there.
func LoadConfig(home string) (*config.Config, error) {
	if err := godotenv.Load(EnvFile(home)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", EnvFile(home), err)
	}

	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}

	return config.Load(home)
}

// EnvFile is the optional .env file read by LoadConfig.
func EnvFile(home string) string {
	return filepath.Join(home+constants.ConfigDir, ".env")
}

// OpenOptions control logging for the process.
type OpenOptions struct {
	Verbose bool
	// LogToFile sends logs to the configured log file instead of stderr.
	// The TUI owns the terminal and uses this.
	LogToFile bool
}

// Open applies flag overrides, builds the logger, connects the configured
// backend and loads the starter notes. Calling it again is a no-op.
func (s *State) Open(ctx context.Context, opts OpenOptions) error {
	if s.opened {
		return nil
	}

	if err := s.Config.ApplyOverrides(); err != nil {
		return err
	}

	if err := s.openLogger(opts); err != nil {
		return err
	}

	backend, err := OpenBackend(ctx, s.Config)
	if err != nil {
		return err
	}
	s.Store = storage.NewStore(backend, s.Logger)

	starter, err := seed.Load(s.Config.SeedFile)
	if err != nil {
		s.Logger.Warn("falling back to bundled starter notes", "file", s.Config.SeedFile, "err", err)
		starter, _ = seed.Load("")
	}
	s.Starter = starter

	s.opened = true
	s.Logger.Debug("state opened", "backend", s.Config.Storage.Backend, "home", s.Home)
	return nil
}

func (s *State) openLogger(opts OpenOptions) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	if opts.LogToFile {
		path := s.Config.UI.LogFile
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		s.logFile = f
		w = f
	}

	s.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return nil
}

// OpenBackend builds the backend named by cfg.Storage.Backend.
func OpenBackend(ctx context.Context, cfg *config.Config) (storage.Backend, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		return filestore.New(cfg.Storage.Dir, cfg.Storage.QuotaBytes)
	case config.BackendS3:
		return s3store.New(ctx, s3store.Options{
			Bucket:          cfg.Storage.S3.Bucket,
			Prefix:          cfg.Storage.S3.Prefix,
			Region:          cfg.Storage.S3.Region,
			Endpoint:        cfg.Storage.S3.Endpoint,
			AccessKeyID:     os.Getenv("NOTES_S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("NOTES_S3_SECRET_ACCESS_KEY"),
		})
	case config.BackendPostgres:
		return pgstore.Open(ctx, cfg.Storage.Postgres.DSN, cfg.Storage.Postgres.Namespace)
	}
	return nil, config.ValidateBackend(cfg.Storage.Backend)
}

// WatchNotes starts watching the notes file when the file backend is in
// use. Other backends have nothing to watch and leave Watcher nil.
func (s *State) WatchNotes() error {
	if s.Config.Storage.Backend != config.BackendFile || s.Watcher != nil {
		return nil
	}

	w, err := NewNotesWatcher(s.Config.Storage.Dir, storage.KeyNotes+".json")
	if err != nil {
		return fmt.Errorf("failed to create notes watcher: %w", err)
	}
	s.Watcher = w
	return nil
}

// Close releases the watcher, the store and the log file.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Watcher != nil {
		if err := s.Watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Watcher = nil
	}
	if s.Store != nil {
		if err := s.Store.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Store = nil
	}
	if s.logFile != nil {
		if err := s.logFile.Close(); err != nil {
			errs = append(errs, err)
		}
		s.logFile = nil
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
