package controller

import (
	"context"
	"strings"

	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/toast"
	"github.com/kwadjo-wusu-ansah/notes/internal/views"
)

type SaveResult int

const (
	// SaveIgnored means there was nothing to save: an empty create form or
	// no active note.
	SaveIgnored SaveResult = iota
	// SaveUnchanged means the form matched the stored note.
	SaveUnchanged
	SaveCreated
	SaveUpdated
	// SaveFailed means the change is in memory but could not be persisted.
	SaveFailed
)

func (r SaveResult) String() string {
	switch r {
	case SaveUnchanged:
		return "unchanged"
	case SaveCreated:
		return "created"
	case SaveUpdated:
		return "updated"
	case SaveFailed:
		return "failed"
	}
	return "ignored"
}

// Save stores the form. On the create page it adds a note at the top of the
// collection; anywhere else it edits the active note.
func (c *Controller) Save(ctx context.Context, v note.Values) (SaveResult, error) {
	v.Title = strings.TrimSpace(v.Title)
	v.Tags = note.NormalizeTags(v.Tags)

	if views.ResolveRoute(c.state.CurrentPage).Kind == views.CreateNote {
		return c.create(ctx, v)
	}
	return c.update(ctx, v)
}

func (c *Controller) create(ctx context.Context, v note.Values) (SaveResult, error) {
	if blank(v) {
		return SaveIgnored, nil
	}

	n := note.New(v.Title, v.Content, note.DedupeTags(v.Tags))
	c.state.Notes = append([]note.Note{n}, c.state.Notes...)
	c.state.ActiveNoteID = n.ID

	if err := c.persist(ctx); err != nil {
		return SaveFailed, err
	}

	c.logger.Info("note created", "id", n.ID, "tags", len(n.Tags))
	c.NavigateTo(views.KeyAllNotes, NavOptions{NoteID: n.ID})
	c.notify.Notify(toast.NoteSaved, toast.Options{})
	if len(n.Tags) > 0 {
		c.notify.Notify(toast.TagAdded, toast.Options{})
	}
	return SaveCreated, nil
}

func (c *Controller) update(ctx context.Context, v note.Values) (SaveResult, error) {
	active, ok := c.state.ActiveNote()
	if !ok {
		return SaveIgnored, nil
	}

	if !note.HasChanges(active, v) {
		c.Refresh()
		return SaveUnchanged, nil
	}

	// Stored tags drop case-insensitive duplicates.
	tags := note.DedupeTags(v.Tags)
	added, removed := note.DiffTags(active.Tags, tags)
	c.state.Notes = note.Update(c.state.Notes, active.ID, note.Fields{
		Title:   &v.Title,
		Content: &v.Content,
		Tags:    tags,
	})

	if err := c.persist(ctx); err != nil {
		return SaveFailed, err
	}

	c.logger.Info("note updated", "id", active.ID, "added", added, "removed", removed)
	c.Refresh()
	c.notify.Notify(toast.NoteSaved, toast.Options{})
	if len(added) > 0 {
		c.notify.Notify(toast.TagAdded, toast.Options{})
	}
	if len(removed) > 0 {
		c.notify.Notify(toast.TagRemoved, toast.Options{})
	}
	return SaveUpdated, nil
}
