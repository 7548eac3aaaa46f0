package restore

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
)

func NewCmdRestore(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "restore [id or title]",
		Aliases: []string{"unarchive"},
		Short:   "Restore an archived note.",
		Long: heredoc.Doc(`
			Moves an archived note back to All Notes.

			Example:
			  notes restore "Release checklist"
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := cmdpkg.Controller(cmd.Context(), s, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			n, err := cmdpkg.FindNote(ctl.State().Notes, args[0])
			if err != nil {
				return err
			}
			if !n.Archived {
				return fmt.Errorf("%q is not archived", n.Title)
			}

			_, err = ctl.Restore(cmd.Context(), n.ID)
			return err
		},
	}

	return cmd
}
