package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/kwadjo-wusu-ansah/notes/internal/confirm"
	"github.com/kwadjo-wusu-ansah/notes/internal/controller"
	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	"github.com/kwadjo-wusu-ansah/notes/internal/toast"
)

// ErrNotFound is returned when a note argument matches nothing.
var ErrNotFound = errors.New("note not found")

// Controller builds a controller over the opened store and loads the notes.
// A nil notifier prints toasts to out.
func Controller(ctx context.Context, s *state.State, out io.Writer, n toast.Notifier) (*controller.Controller, error) {
	if s == nil || s.Store == nil {
		return nil, fmt.Errorf("state is not opened")
	}
	if n == nil {
		n = NewPrintNotifier(out)
	}

	ctl := controller.New(controller.Options{
		Gateway:  s.Store,
		Notifier: n,
		Logger:   s.Logger,
	})
	if err := ctl.Startup(ctx, s.Starter); err != nil {
		return nil, err
	}
	return ctl, nil
}

// PrintNotifier writes each toast as a line, failures in red.
type PrintNotifier struct {
	out    io.Writer
	output *termenv.Output
}

func NewPrintNotifier(out io.Writer) *PrintNotifier {
	if out == nil {
		out = os.Stdout
	}
	return &PrintNotifier{out: out, output: termenv.NewOutput(out)}
}

func (p *PrintNotifier) Notify(kind toast.Kind, opts toast.Options) {
	t := toast.Build(kind, opts)
	if t.Message == "" {
		return
	}
	if kind == toast.Failure {
		fmt.Fprintln(p.out, p.output.String(t.Message).Foreground(p.output.Color("1")))
		return
	}
	fmt.Fprintln(p.out, t.Message)
}

// FindNote resolves arg against notes: an exact id first, then a
// case-insensitive title, then a unique id prefix.
func FindNote(notes []note.Note, arg string) (note.Note, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return note.Note{}, fmt.Errorf("a note id or title is required")
	}

	if n, ok := note.Find(notes, arg); ok {
		return n, nil
	}

	var matches []note.Note
	for _, n := range notes {
		if strings.EqualFold(strings.TrimSpace(n.Title), arg) {
			matches = append(matches, n)
		}
	}
	if len(matches) == 0 {
		for _, n := range notes {
			if strings.HasPrefix(n.ID, arg) {
				matches = append(matches, n)
			}
		}
	}

	switch len(matches) {
	case 0:
		return note.Note{}, fmt.Errorf("%w: %q", ErrNotFound, arg)
	case 1:
		return matches[0], nil
	}
	return note.Note{}, fmt.Errorf("%q matches %d notes, use the note id instead", arg, len(matches))
}

// Prompter answers destructive prompts on the command line.
type Prompter struct {
	// Yes skips the question.
	Yes bool
	// Interactive reports whether a question can be asked at all.
	Interactive func() bool
}

func NewPrompter(yes bool) Prompter {
	return Prompter{
		Yes: yes,
		Interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

func (p Prompter) Prompt(_ context.Context, req confirm.Request) (bool, error) {
	if p.Yes {
		return true, nil
	}
	if p.Interactive == nil || !p.Interactive() {
		return false, fmt.Errorf("%s needs confirmation, run again with --yes", strings.ToLower(req.Title))
	}

	input := confirmation.New(req.Message, confirmation.No)
	return input.RunPrompt()
}

// Annotations read by the root command before a subcommand runs.
const (
	// AnnotationTUI marks commands that own the terminal; their logs go to
	// the log file.
	AnnotationTUI = "notes/tui"
	// AnnotationSkipOpen marks commands that run without a storage backend.
	AnnotationSkipOpen = "notes/skip-open"
)

// Width is the terminal width of stdout, or 80 when it is not a terminal.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// RunAction confirms and applies action on the note matching arg.
func RunAction(ctx context.Context, s *state.State, out io.Writer, action controller.Action, arg string, p controller.Prompter) error {
	ctl, err := Controller(ctx, s, out, nil)
	if err != nil {
		return err
	}
	n, err := FindNote(ctl.State().Notes, arg)
	if err != nil {
		return err
	}
	if action == controller.ActionArchive && n.Archived {
		return fmt.Errorf("%q is already archived", n.Title)
	}

	changed, err := ctl.Do(ctx, action, n.ID, p)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintln(out, "Nothing changed.")
	}
	return nil
}
