package clip

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/fzf"
	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/render"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

func NewCmdCopy(s *state.State) *cobra.Command {
	var document bool

	cmd := &cobra.Command{
		Use:     "copy [id or title]",
		Aliases: []string{"yank", "y"},
		Short:   "Copy a note's content to the clipboard.",
		Long: heredoc.Doc(`
			Copies the content of a note. Without an argument a fuzzy finder
			picks the note. With --document the title is included as a heading.
		`),
		Example: "notes copy Alpha --document",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := cmdpkg.Controller(cmd.Context(), s, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}

			var n note.Note
			if len(args) > 0 {
				n, err = cmdpkg.FindNote(ctl.State().Notes, args[0])
			} else {
				n, err = fzf.NewFuzzyFinder(ctl.State().Notes, "Select a note to copy.").Run("")
				if errors.Is(err, fzf.ErrNoSelection) {
					return nil
				}
			}
			if err != nil {
				return err
			}

			text := n.Content
			if document {
				text = render.Document(n.Title, n.Content)
			}
			if err := clipboardWrite(text); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %q to the clipboard.\n", render.Title(n.Title, 0))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&document, "document", "d", false, "Copy the title as a heading above the content.")
	return cmd
}
