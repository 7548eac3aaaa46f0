package new

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/controller"
	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	"github.com/kwadjo-wusu-ansah/notes/internal/templater"
	"github.com/kwadjo-wusu-ansah/notes/internal/views"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
)

func NewCmdNew(s *state.State) *cobra.Command {
	var tags, content, tmpl string

	cmd := &cobra.Command{
		Use:     "new [title]",
		Aliases: []string{"n"},
		Short:   "Create a new note.",
		Long: heredoc.Doc(`
			Creates a note at the top of the collection. Tags are comma
			separated; blank entries are dropped and duplicates are merged
			without regard to case.

			A template fills in the starting content. Templates placed in the
			templates folder next to the configuration file take precedence over
			the bundled blank, checklist, daily and meeting templates.
		`),
		Example: `notes new "Release checklist" --tags "work, release" --content "- tag the build"`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := ""
			if len(args) > 0 {
				title = args[0]
			}
			return run(cmd, s, tmpl, note.Values{
				Title:   title,
				Content: content,
				Tags:    note.ParseTags(tags),
			})
		},
	}

	cmd.Flags().StringVarP(&tags, "tags", "t", "", "Comma separated tags for the new note.")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Body of the new note.")
	cmd.Flags().StringVar(&tmpl, "template", templater.DefaultTemplate, "Template for the starting content.")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, tmpl string, v note.Values) error {
	t, err := templater.NewTemplater(filepath.Join(filepath.Dir(s.Config.GetConfigPath()), "templates"))
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	if v, err = t.Values(tmpl, v, time.Now()); err != nil {
		return err
	}

	ctl, err := cmdpkg.Controller(cmd.Context(), s, cmd.OutOrStdout(), nil)
	if err != nil {
		return err
	}

	ctl.NavigateTo(views.KeyCreateNote, controller.NavOptions{})
	result, err := ctl.Save(cmd.Context(), v)
	if err != nil {
		return err
	}
	if result == controller.SaveIgnored {
		return fmt.Errorf("nothing to save: give the note a title, content or tags")
	}

	n, _ := ctl.State().ActiveNote()
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", n.ID, strings.TrimSpace(n.Title))
	return nil
}
