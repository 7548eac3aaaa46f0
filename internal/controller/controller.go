// Package controller turns user gestures into state changes. It is the only
// writer of the application state: every mutation goes through it, is
// persisted, and is followed by a fresh view derivation.
package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/kwadjo-wusu-ansah/notes/internal/confirm"
	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	"github.com/kwadjo-wusu-ansah/notes/internal/storage"
	"github.com/kwadjo-wusu-ansah/notes/internal/theme"
	"github.com/kwadjo-wusu-ansah/notes/internal/toast"
	"github.com/kwadjo-wusu-ansah/notes/internal/views"
)

// Renderer receives every derived page.
type Renderer interface {
	Render(vs views.ViewState)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(vs views.ViewState)

func (f RendererFunc) Render(vs views.ViewState) { f(vs) }

type discardRenderer struct{}

func (discardRenderer) Render(views.ViewState) {}

type discardNotifier struct{}

func (discardNotifier) Notify(toast.Kind, toast.Options) {}

// Options are the collaborators of a Controller. Only Gateway is required.
type Options struct {
	Gateway  storage.Gateway
	Notifier toast.Notifier
	Renderer Renderer
	Modal    *confirm.Modal
	Logger   *slog.Logger
}

type Controller struct {
	state  *state.AppState
	store  storage.Gateway
	notify toast.Notifier
	render Renderer
	modal  *confirm.Modal
	logger *slog.Logger
	prefs  theme.Preferences
	last   views.ViewState
}

func New(opts Options) *Controller {
	c := &Controller{
		state:  state.NewAppState(nil),
		store:  opts.Gateway,
		notify: opts.Notifier,
		render: opts.Renderer,
		modal:  opts.Modal,
		logger: opts.Logger,
		prefs:  theme.Defaults(),
	}
	if c.notify == nil {
		c.notify = discardNotifier{}
	}
	if c.render == nil {
		c.render = discardRenderer{}
	}
	if c.modal == nil {
		c.modal = confirm.NewModal()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// State exposes the application state for reading.
func (c *Controller) State() *state.AppState { return c.state }

// View returns the most recently rendered page.
func (c *Controller) View() views.ViewState { return c.last }

func (c *Controller) Modal() *confirm.Modal { return c.modal }

func (c *Controller) Preferences() theme.Preferences { return c.prefs }

// Startup seeds the store on first run, loads the notes and preferences and
// renders all-notes with the first note selected.
func (c *Controller) Startup(ctx context.Context, starter []note.Raw) error {
	seeded, err := c.store.SeedOnce(ctx, starter)
	if err != nil {
		c.logger.Warn("could not seed starter notes", "err", err)
	} else if seeded {
		c.logger.Debug("starter notes seeded", "count", len(starter))
	}

	notes, err := c.load(ctx)
	if err != nil {
		return err
	}

	prefs, err := c.store.LoadPreferences(ctx)
	if err != nil {
		c.logger.Warn("could not load preferences", "err", err)
	}
	c.prefs = prefs.WithDefaults()

	c.state = state.NewAppState(notes)
	c.NavigateTo(views.KeyAllNotes, NavOptions{})
	return nil
}

// load reads and normalizes the stored notes. Records that had no id are
// written back so their generated ids stay stable between runs.
func (c *Controller) load(ctx context.Context) ([]note.Note, error) {
	raws, err := c.store.LoadNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}

	notes := note.NormalizeAll(raws)
	if slices.ContainsFunc(raws, func(r note.Raw) bool { return !r.HasID() }) {
		if err := c.store.SaveNotes(ctx, notes); err != nil {
			c.logger.Warn("could not persist generated note ids", "err", err)
		} else {
			c.logger.Debug("persisted generated note ids")
		}
	}
	return notes, nil
}

// Reload replaces the collection with what is stored, keeping the current
// page. It reports whether anything changed.
func (c *Controller) Reload(ctx context.Context) (bool, error) {
	notes, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	if slices.EqualFunc(notes, c.state.Notes, note.Note.Equal) {
		return false, nil
	}

	c.logger.Debug("notes changed on disk", "count", len(notes))
	c.state.Notes = notes
	c.Refresh()
	return true, nil
}

// NavOptions adjust a navigation. NoteID selects a note before the page is
// derived; Query sets the search query.
type NavOptions struct {
	NoteID string
	Query  *string
}

// NavigateTo switches to route and renders it.
func (c *Controller) NavigateTo(route string, opts NavOptions) views.ViewState {
	if opts.NoteID != "" {
		c.state.ActiveNoteID = opts.NoteID
	}
	if opts.Query != nil {
		c.state.SearchQuery = views.NormalizeSearchQuery(*opts.Query)
	} else if views.ResolveRoute(route).Kind != views.Search {
		c.state.SearchQuery = ""
	}
	return c.renderPage(route)
}

// Refresh derives and renders the current page again.
func (c *Controller) Refresh() views.ViewState {
	return c.renderPage(c.state.CurrentPage)
}

func (c *Controller) renderPage(route string) views.ViewState {
	vs := views.Derive(c.state, route, views.Options{})
	c.last = vs
	c.render.Render(vs)
	return vs
}

// SelectNote opens id from the sidebar. Archived, tag and search views stay
// where they are; every other page switches to all-notes.
func (c *Controller) SelectNote(id string) views.ViewState {
	route := c.state.CurrentPage
	switch views.ResolveRoute(route).Kind {
	case views.ArchivedNotes, views.Tag, views.Search:
	default:
		route = views.KeyAllNotes
	}
	return c.NavigateTo(route, NavOptions{NoteID: id})
}

// SearchInput follows the search box. Clearing it returns to all-notes.
func (c *Controller) SearchInput(text string) views.ViewState {
	q := views.NormalizeSearchQuery(text)
	if q == "" {
		return c.NavigateTo(views.KeyAllNotes, NavOptions{})
	}
	return c.NavigateTo(views.KeySearch, NavOptions{Query: &q})
}

// Cancel leaves the create form for the previously active note, or throws
// away unsaved edits by rendering the current page again.
func (c *Controller) Cancel() views.ViewState {
	if views.ResolveRoute(c.state.CurrentPage).Kind == views.CreateNote {
		return c.NavigateTo(views.KeyAllNotes, NavOptions{NoteID: c.state.ActiveNoteID})
	}
	return c.Refresh()
}

// persist writes the collection. A failure leaves the in-memory change in
// place and is reported through a toast.
func (c *Controller) persist(ctx context.Context) error {
	if err := c.store.SaveNotes(ctx, c.state.Notes); err != nil {
		c.logger.Error("failed to persist notes", "err", err)
		c.notify.Notify(toast.Failure, toast.Options{Message: storage.Message(err)})
		return err
	}
	return nil
}

func blank(v note.Values) bool {
	return strings.TrimSpace(v.Title) == "" &&
		v.Content == "" &&
		len(note.NormalizeTags(v.Tags)) == 0
}
