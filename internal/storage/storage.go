// Package storage persists notes and preferences through a small key/value
// backend. Notes, preferences and the seed flag each live under one key.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/theme"
)

const (
	KeyNotes  = "notes"
	KeyPrefs  = "prefs"
	KeySeeded = "seeded_v1"
)

var (
	// ErrQuotaExceeded is returned when a backend has no room left for a
	// write.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrNotFound is returned by a Backend when a key holds no value.
	ErrNotFound = errors.New("key not found")
)

// Backend is a byte oriented key/value store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Gateway is everything the application needs from persistence.
type Gateway interface {
	LoadNotes(ctx context.Context) ([]note.Raw, error)
	SaveNotes(ctx context.Context, notes []note.Note) error
	LoadPreferences(ctx context.Context) (theme.Preferences, error)
	SavePreferences(ctx context.Context, prefs theme.Preferences) error
	SeedOnce(ctx context.Context, starter []note.Raw) (bool, error)
}

// Store implements Gateway on top of a Backend.
type Store struct {
	backend Backend
	logger  *slog.Logger
}

// NewStore wraps b. A nil logger discards output.
func NewStore(b Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{backend: b, logger: logger}
}

// LoadNotes returns the stored records as-is. Missing or unreadable data
// yields an empty list; only backend failures are returned as errors.
func (s *Store) LoadNotes(ctx context.Context) ([]note.Raw, error) {
	data, err := s.backend.Get(ctx, KeyNotes)
	if errors.Is(err, ErrNotFound) {
		return []note.Raw{}, nil
	}
	if err != nil {
		return []note.Raw{}, fmt.Errorf("load notes: %w", err)
	}

	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("stored notes are unreadable, starting empty", "err", err)
		return []note.Raw{}, nil
	}

	raws := make([]note.Raw, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			raws = append(raws, note.Raw(m))
		}
	}
	return raws, nil
}

// SaveNotes replaces the stored collection.
func (s *Store) SaveNotes(ctx context.Context, notes []note.Note) error {
	if notes == nil {
		notes = []note.Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err := s.backend.Put(ctx, KeyNotes, data); err != nil {
		s.logger.Error("failed to save notes", "err", err)
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

// LoadPreferences returns the stored preferences merged over the defaults.
func (s *Store) LoadPreferences(ctx context.Context) (theme.Preferences, error) {
	data, err := s.backend.Get(ctx, KeyPrefs)
	if errors.Is(err, ErrNotFound) {
		return theme.Defaults(), nil
	}
	if err != nil {
		return theme.Defaults(), fmt.Errorf("load preferences: %w", err)
	}

	var saved theme.Preferences
	if err := json.Unmarshal(data, &saved); err != nil {
		s.logger.Warn("stored preferences are unreadable, using defaults", "err", err)
		return theme.Defaults(), nil
	}
	return saved.WithDefaults(), nil
}

// SavePreferences replaces the stored preferences.
func (s *Store) SavePreferences(ctx context.Context, prefs theme.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := s.backend.Put(ctx, KeyPrefs, data); err != nil {
		s.logger.Error("failed to save preferences", "err", err)
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// SeedOnce stores starter as the note collection the first time it runs.
// Once seeded, or when notes already exist, the seeded flag is set and later
// calls do nothing.
func (s *Store) SeedOnce(ctx context.Context, starter []note.Raw) (bool, error) {
	flag, err := s.backend.Get(ctx, KeySeeded)
	switch {
	case err == nil && strings.TrimSpace(string(flag)) == "true":
		return false, nil
	case err != nil && !errors.Is(err, ErrNotFound):
		return false, fmt.Errorf("read seed flag: %w", err)
	}

	existing, err := s.LoadNotes(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, s.markSeeded(ctx)
	}

	if starter == nil {
		starter = []note.Raw{}
	}
	data, err := json.Marshal(starter)
	if err != nil {
		return false, fmt.Errorf("encode starter notes: %w", err)
	}
	if err := s.backend.Put(ctx, KeyNotes, data); err != nil {
		return false, fmt.Errorf("seed notes: %w", err)
	}
	if err := s.markSeeded(ctx); err != nil {
		return false, err
	}

	s.logger.Info("seeded starter notes", "count", len(starter))
	return true, nil
}

func (s *Store) markSeeded(ctx context.Context) error {
	if err := s.backend.Put(ctx, KeySeeded, []byte("true")); err != nil {
		return fmt.Errorf("write seed flag: %w", err)
	}
	return nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Message is the text shown to the user when saving notes failed.
func Message(err error) string {
	if errors.Is(err, ErrQuotaExceeded) {
		return "Storage is full. Delete some notes to free space."
	}
	return "Could not save notes."
}
