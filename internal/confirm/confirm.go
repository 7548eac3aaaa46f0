// Package confirm implements the yes/no prompt guarding destructive actions.
// At most one prompt is open; each prompt resolves exactly once.
package confirm

import (
	"context"
	"sync"
)

type Result int

const (
	Cancelled Result = iota
	Confirmed
	// Detached means a newer prompt replaced this one before it was
	// answered. Callers treat it like Cancelled.
	Detached
)

func (r Result) String() string {
	switch r {
	case Confirmed:
		return "confirmed"
	case Detached:
		return "detached"
	}
	return "cancelled"
}

// Request is the content of a prompt.
type Request struct {
	Title        string
	Message      string
	ConfirmLabel string
	Danger       bool
}

// ArchiveRequest and DeleteRequest are the prompts for the two destructive
// note actions.
var (
	ArchiveRequest = Request{
		Title:        "Archive Note",
		Message:      "Are you sure you want to archive this note? You can find it in the Archived Notes section and restore it anytime.",
		ConfirmLabel: "Archive Note",
	}
	DeleteRequest = Request{
		Title:        "Delete Note",
		Message:      "Are you sure you want to permanently delete this note? This action cannot be undone.",
		ConfirmLabel: "Delete Note",
		Danger:       true,
	}
)

// Pending is an open prompt awaiting its answer.
type Pending struct {
	Request Request

	once   sync.Once
	done   chan struct{}
	result Result
}

func newPending(req Request) *Pending {
	return &Pending{Request: req, done: make(chan struct{})}
}

// resolve records r unless the prompt was already answered. It reports
// whether this call decided the outcome.
func (p *Pending) resolve(r Result) bool {
	decided := false
	p.once.Do(func() {
		p.result = r
		close(p.done)
		decided = true
	})
	return decided
}

// Done is closed once the prompt is answered.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Result returns the answer, or Cancelled while still open.
func (p *Pending) Result() Result {
	select {
	case <-p.done:
		return p.result
	default:
		return Cancelled
	}
}

// Wait blocks until the prompt is answered or ctx ends. An ended context
// resolves the prompt as Cancelled.
func (p *Pending) Wait(ctx context.Context) Result {
	select {
	case <-p.done:
		return p.result
	case <-ctx.Done():
		p.resolve(Cancelled)
		return p.result
	}
}

// Modal owns the single open prompt.
type Modal struct {
	mu      sync.Mutex
	current *Pending
}

func NewModal() *Modal {
	return &Modal{}
}

// Open shows req. A prompt that is still open is resolved as Detached first
// so two prompts never compete for the same action.
func (m *Modal) Open(req Request) *Pending {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.current.resolve(Detached)
	}
	m.current = newPending(req)
	return m.current
}

// Current returns the open prompt.
func (m *Modal) Current() (*Pending, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.current != nil
}

func (m *Modal) IsOpen() bool {
	_, ok := m.Current()
	return ok
}

// Confirm answers the open prompt with yes.
func (m *Modal) Confirm() bool { return m.close(Confirmed) }

// Cancel answers the open prompt with no.
func (m *Modal) Cancel() bool { return m.close(Cancelled) }

// Escape closes the prompt from the keyboard.
func (m *Modal) Escape() bool { return m.close(Cancelled) }

// Dismiss closes the prompt from outside the dialog.
func (m *Modal) Dismiss() bool { return m.close(Cancelled) }

func (m *Modal) close(r Result) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return false
	}
	decided := m.current.resolve(r)
	m.current = nil
	return decided
}
