package show

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/render"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
)

func NewCmdShow(s *state.State) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:     "show [id or title]",
		Aliases: []string{"cat", "view"},
		Short:   "Print a note.",
		Long: heredoc.Doc(`
			Prints a note rendered as markdown in the current color theme,
			followed by its tags and dates. Use --raw for plain markdown.
		`),
		Example: `notes show "Release checklist"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := cmdpkg.Controller(cmd.Context(), s, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			n, err := cmdpkg.FindNote(ctl.State().Notes, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			doc := render.Document(n.Title, n.Content)
			if raw {
				fmt.Fprintln(out, doc)
			} else {
				fmt.Fprint(out, render.Markdown(doc, cmdpkg.Width(), ctl.Preferences().Theme))
			}
			fmt.Fprintln(out, Metadata(n))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown without styling.")
	return cmd
}

// Metadata is the footer printed under a note.
func Metadata(n note.Note) string {
	tags := "No tags"
	if len(n.Tags) > 0 {
		tags = strings.Join(n.Tags, ", ")
	}

	lines := []string{
		"Tags: " + tags,
		"Created: " + n.Created,
		"Last edited: " + n.LastEdited,
	}
	if n.Archived {
		lines = append(lines, "Archived")
	}
	return strings.Join(lines, "\n")
}
