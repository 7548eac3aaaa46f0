package notes

import (
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	"github.com/kwadjo-wusu-ansah/notes/internal/toast"
	"github.com/kwadjo-wusu-ansah/notes/internal/tui/notes"
	"github.com/kwadjo-wusu-ansah/notes/internal/views"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
)

// runBrowser starts the TUI; tests swap it to inspect the options.
var runBrowser = notes.Run

func NewCmdNotes(s *state.State) *cobra.Command {
	var route, noteID string

	cmd := &cobra.Command{
		Use:     "tui",
		Aliases: []string{"browse", "b"},
		Short:   "Open the notes browser.",
		Long: heredoc.Doc(`
			Opens the interactive notes browser. The sidebar lists the notes of
			the current page; the main pane previews or edits the open note.

			Pages: all-notes, archived-notes, create-note, search, tag-<name>.
		`),
		Example:     "notes tui --route archived-notes",
		Annotations: map[string]string{cmdpkg.AnnotationTUI: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, route, noteID)
		},
	}

	cmd.Flags().StringVarP(&route, "route", "r", views.KeyAllNotes, "Page to open first.")
	cmd.Flags().StringVar(&noteID, "note", "", "Id of the note to open first.")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, route, noteID string) error {
	if err := s.WatchNotes(); err != nil {
		s.Logger.Warn("notes will not reload on change", "err", err)
	}

	tray := toast.NewTray(time.Duration(s.Config.UI.ToastSeconds) * time.Second)
	ctl, err := cmdpkg.Controller(cmd.Context(), s, cmd.OutOrStdout(), tray)
	if err != nil {
		return err
	}

	return runBrowser(cmd.Context(), notes.Options{
		Controller: ctl,
		Tray:       tray,
		Watcher:    s.Watcher,
		Logger:     s.Logger,
		Route:      route,
		NoteID:     noteID,
	})
}
