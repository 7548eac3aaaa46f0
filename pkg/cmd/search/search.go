package search

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/controller"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	"github.com/kwadjo-wusu-ansah/notes/internal/views"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/list"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search [query]",
		Aliases: []string{"find", "f"},
		Short:   "Search notes by title, content and tags.",
		Long:    "Matches are case-insensitive and include archived notes.",
		Example: "notes search react hooks",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := cmdpkg.Controller(cmd.Context(), s, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			list.Print(cmd, ctl.NavigateTo(views.KeySearch, controller.NavOptions{Query: &query}))
			return nil
		},
	}

	return cmd
}
