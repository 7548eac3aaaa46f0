package trash

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/controller"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
)

func NewCmdDelete(s *state.State) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete [id or title]",
		Aliases: []string{"rm", "trash"},
		Short:   "Permanently delete a note.",
		Long: heredoc.Doc(`
			Deletes a note, active or archived, after asking for confirmation.
			This cannot be undone.

			Example:
			  notes delete 3f2a --yes
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdpkg.RunAction(cmd.Context(), s, cmd.OutOrStdout(), controller.ActionDelete, args[0], cmdpkg.NewPrompter(yes))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking.")
	return cmd
}
