package open

import (
	"errors"
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/fzf"
	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	"github.com/kwadjo-wusu-ansah/notes/internal/toast"
	"github.com/kwadjo-wusu-ansah/notes/internal/tui/notes"
	"github.com/kwadjo-wusu-ansah/notes/internal/views"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
)

var (
	runBrowser = notes.Run
	pickNote   = func(f *fzf.FuzzyFinder, query string) (note.Note, error) { return f.Run(query) }
)

func NewCmdOpen(s *state.State) *cobra.Command {
	var printID bool

	cmd := &cobra.Command{
		Use:     "open [query]",
		Aliases: []string{"o"},
		Short:   "Fuzzy find a note and open it in the browser.",
		Long: heredoc.Doc(`
			Opens a fuzzy finder over every note, previewing the one under the
			cursor. The picked note is opened in the browser, on Archived Notes
			when it is archived.
		`),
		Example:     "notes open perf",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{cmdpkg.AnnotationTUI: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			tray := toast.NewTray(time.Duration(s.Config.UI.ToastSeconds) * time.Second)
			ctl, err := cmdpkg.Controller(cmd.Context(), s, cmd.OutOrStdout(), tray)
			if err != nil {
				return err
			}

			finder := fzf.NewFuzzyFinder(ctl.State().Notes, "Select a note.")
			finder.Theme = ctl.Preferences().Theme
			n, err := pickNote(finder, query)
			if errors.Is(err, fzf.ErrNoSelection) {
				return nil
			}
			if err != nil {
				return err
			}

			if printID {
				fmt.Fprintln(cmd.OutOrStdout(), n.ID)
				return nil
			}

			route := views.KeyAllNotes
			if n.Archived {
				route = views.KeyArchivedNotes
			}
			if err := s.WatchNotes(); err != nil {
				s.Logger.Warn("notes will not reload on change", "err", err)
			}
			return runBrowser(cmd.Context(), notes.Options{
				Controller: ctl,
				Tray:       tray,
				Watcher:    s.Watcher,
				Logger:     s.Logger,
				Route:      route,
				NoteID:     n.ID,
			})
		},
	}

	cmd.Flags().BoolVarP(&printID, "print", "p", false, "Print the id of the picked note instead of opening it.")
	return cmd
}
