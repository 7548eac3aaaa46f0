package archive

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/controller"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
)

func NewCmdArchive(s *state.State) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "archive [id or title]",
		Short: "Archive a note.",
		Long: heredoc.Doc(`
			Moves a note to Archived Notes after asking for confirmation. It can
			be brought back at any time with 'notes restore'.

			Example:
			  notes archive "Release checklist"
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdpkg.RunAction(cmd.Context(), s, cmd.OutOrStdout(), controller.ActionArchive, args[0], cmdpkg.NewPrompter(yes))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Archive without asking.")
	return cmd
}
