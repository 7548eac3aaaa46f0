// Package toast keeps the short-lived notifications shown after an action.
package toast

import (
	"sync"
	"time"
)

type Kind string

const (
	NoteSaved       Kind = "note-saved"
	NoteArchived    Kind = "note-archived"
	NoteDeleted     Kind = "note-deleted"
	NoteRestored    Kind = "note-restored"
	SettingsUpdated Kind = "settings-updated"
	TagAdded        Kind = "tag-added"
	TagRemoved      Kind = "tag-removed"
	Failure         Kind = "failure"
)

// DefaultDuration is how long a toast stays up unless told otherwise.
const DefaultDuration = 4 * time.Second

// Action is a link on a toast that navigates to Route.
type Action struct {
	Label string
	Route string
}

type definition struct {
	message string
	action  *Action
}

var definitions = map[Kind]definition{
	NoteSaved:       {message: "Note saved successfully!"},
	NoteArchived:    {message: "Note archived.", action: &Action{Label: "Archived Notes", Route: "archived-notes"}},
	NoteDeleted:     {message: "Note permanently deleted."},
	NoteRestored:    {message: "Note restored to active notes.", action: &Action{Label: "All Notes", Route: "all-notes"}},
	SettingsUpdated: {message: "Settings updated successfully!"},
	TagAdded:        {message: "Tag added successfully!"},
	TagRemoved:      {message: "Tag removed successfully!"},
}

// Options override parts of a toast's definition.
type Options struct {
	Message string
	// NoAction drops the definition's action link.
	NoAction bool
	// Duration of zero uses the tray default; negative keeps the toast
	// until dismissed.
	Duration time.Duration
}

type Toast struct {
	ID       int
	Kind     Kind
	Message  string
	Action   *Action
	Duration time.Duration
}

// Notifier receives notifications from the controller.
type Notifier interface {
	Notify(kind Kind, opts Options)
}

// Tray holds the visible toasts, oldest first.
type Tray struct {
	mu          sync.Mutex
	items       []Toast
	nextID      int
	duration    time.Duration
	unscheduled []Toast
}

// NewTray returns a tray whose toasts last d. A non-positive d uses
// DefaultDuration.
func NewTray(d time.Duration) *Tray {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Tray{duration: d}
}

// Build resolves kind and opts into a toast without showing it.
func Build(kind Kind, opts Options) Toast {
	def := definitions[kind]
	t := Toast{Kind: kind, Message: def.message}
	if opts.Message != "" {
		t.Message = opts.Message
	}
	if t.Message == "" {
		t.Message = string(kind)
	}
	if def.action != nil && !opts.NoAction {
		a := *def.action
		t.Action = &a
	}
	t.Duration = opts.Duration
	return t
}

// Push shows a toast and returns it with its id assigned.
func (tr *Tray) Push(kind Kind, opts Options) Toast {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	t := Build(kind, opts)
	if t.Duration == 0 {
		t.Duration = tr.duration
	}
	tr.nextID++
	t.ID = tr.nextID
	tr.items = append(tr.items, t)
	if t.Duration > 0 {
		tr.unscheduled = append(tr.unscheduled, t)
	}
	return t
}

// Notify implements Notifier.
func (tr *Tray) Notify(kind Kind, opts Options) {
	tr.Push(kind, opts)
}

// Unscheduled returns, once, the toasts whose expiry timer has not been
// started yet.
func (tr *Tray) Unscheduled() []Toast {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	out := tr.unscheduled
	tr.unscheduled = nil
	return out
}

// Dismiss removes the toast with id. It reports false when the toast is
// already gone, which makes a late expiry harmless.
func (tr *Tray) Dismiss(id int) bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	for i, t := range tr.items {
		if t.ID == id {
			tr.items = append(tr.items[:i:i], tr.items[i+1:]...)
			return true
		}
	}
	return false
}

// Latest returns the newest visible toast.
func (tr *Tray) Latest() (Toast, bool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if len(tr.items) == 0 {
		return Toast{}, false
	}
	return tr.items[len(tr.items)-1], true
}

// Items returns a copy of the visible toasts.
func (tr *Tray) Items() []Toast {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	return append([]Toast(nil), tr.items...)
}
