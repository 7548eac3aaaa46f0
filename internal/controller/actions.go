package controller

import (
	"context"
	"fmt"

	"github.com/kwadjo-wusu-ansah/notes/internal/confirm"
	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/theme"
	"github.com/kwadjo-wusu-ansah/notes/internal/toast"
)

type Action string

const (
	ActionArchive Action = "archive"
	ActionDelete  Action = "delete"
)

// Decision is a destructive action waiting on its prompt.
type Decision struct {
	Action  Action
	NoteID  string
	Pending *confirm.Pending
}

// Begin opens the prompt for action on id, or on the active note when id is
// empty. It returns false when there is nothing to act on: an unknown note,
// or archiving a note that already is.
func (c *Controller) Begin(action Action, id string) (*Decision, bool) {
	if id == "" {
		id = c.state.ActiveNoteID
	}
	n, ok := note.Find(c.state.Notes, id)
	if !ok {
		return nil, false
	}

	var req confirm.Request
	switch action {
	case ActionArchive:
		if n.Archived {
			return nil, false
		}
		req = confirm.ArchiveRequest
	case ActionDelete:
		req = confirm.DeleteRequest
	default:
		return nil, false
	}

	return &Decision{Action: action, NoteID: id, Pending: c.modal.Open(req)}, true
}

// Finish applies d when result is Confirmed. Any other result leaves
// everything untouched. It reports whether the collection changed.
func (c *Controller) Finish(ctx context.Context, d *Decision, result confirm.Result) (bool, error) {
	if d == nil || result != confirm.Confirmed {
		if d != nil {
			c.logger.Debug("action not confirmed", "action", d.Action, "result", result)
		}
		return false, nil
	}

	switch d.Action {
	case ActionArchive:
		return c.archive(ctx, d.NoteID)
	case ActionDelete:
		return c.delete(ctx, d.NoteID)
	}
	return false, nil
}

// Prompter asks the user to confirm req.
type Prompter interface {
	Prompt(ctx context.Context, req confirm.Request) (bool, error)
}

// Do runs a destructive action start to finish, blocking on p for the
// answer.
func (c *Controller) Do(ctx context.Context, action Action, id string, p Prompter) (bool, error) {
	d, ok := c.Begin(action, id)
	if !ok {
		return false, nil
	}

	yes, err := p.Prompt(ctx, d.Pending.Request)
	if err != nil {
		c.modal.Escape()
		return false, fmt.Errorf("confirm %s: %w", action, err)
	}
	if yes {
		c.modal.Confirm()
	} else {
		c.modal.Cancel()
	}

	return c.Finish(ctx, d, d.Pending.Wait(ctx))
}

func (c *Controller) archive(ctx context.Context, id string) (bool, error) {
	n, ok := note.Find(c.state.Notes, id)
	if !ok || n.Archived {
		return false, nil
	}

	c.state.Notes = note.ToggleArchive(c.state.Notes, id)
	if err := c.persist(ctx); err != nil {
		return true, err
	}

	c.logger.Info("note archived", "id", id)
	c.Refresh()
	c.notify.Notify(toast.NoteArchived, toast.Options{})
	return true, nil
}

func (c *Controller) delete(ctx context.Context, id string) (bool, error) {
	if !note.Contains(c.state.Notes, id) {
		return false, nil
	}

	c.state.Notes = note.Delete(c.state.Notes, id)
	if c.state.ActiveNoteID == id {
		c.state.ActiveNoteID = ""
	}
	if err := c.persist(ctx); err != nil {
		return true, err
	}

	c.logger.Info("note deleted", "id", id)
	c.Refresh()
	c.notify.Notify(toast.NoteDeleted, toast.Options{})
	return true, nil
}

// Restore unarchives id, or the active note when id is empty. It needs no
// confirmation.
func (c *Controller) Restore(ctx context.Context, id string) (bool, error) {
	if id == "" {
		id = c.state.ActiveNoteID
	}
	n, ok := note.Find(c.state.Notes, id)
	if !ok || !n.Archived {
		return false, nil
	}

	c.state.Notes = note.ToggleArchive(c.state.Notes, id)
	if err := c.persist(ctx); err != nil {
		return true, err
	}

	c.logger.Info("note restored", "id", id)
	c.Refresh()
	c.notify.Notify(toast.NoteRestored, toast.Options{})
	return true, nil
}

// ApplyTheme stores a theme chosen in settings. Labels such as "Light Mode"
// are accepted.
func (c *Controller) ApplyTheme(ctx context.Context, value string) error {
	t := theme.NormalizeTheme(value)
	if !t.Valid() {
		return fmt.Errorf("invalid theme: %q. Please choose from 'light', 'dark', or 'system'.", value)
	}
	prefs := c.prefs
	prefs.Theme = t
	return c.savePreferences(ctx, prefs)
}

// ApplyFont stores a font chosen in settings.
func (c *Controller) ApplyFont(ctx context.Context, value string) error {
	f := theme.NormalizeFont(value)
	if !f.Valid() {
		return fmt.Errorf("invalid font: %q. Please choose from 'sans', 'serif', or 'mono'.", value)
	}
	prefs := c.prefs
	prefs.Font = f
	return c.savePreferences(ctx, prefs)
}

func (c *Controller) savePreferences(ctx context.Context, prefs theme.Preferences) error {
	prefs = prefs.WithDefaults()
	if err := c.store.SavePreferences(ctx, prefs); err != nil {
		c.logger.Error("failed to save preferences", "err", err)
		c.notify.Notify(toast.Failure, toast.Options{Message: "Could not save preferences."})
		return err
	}

	c.prefs = prefs
	c.logger.Info("preferences updated", "theme", prefs.Theme, "font", prefs.Font)
	c.notify.Notify(toast.SettingsUpdated, toast.Options{})
	c.Refresh()
	return nil
}
