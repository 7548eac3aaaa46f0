package capture

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/controller"
	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/parser"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	"github.com/kwadjo-wusu-ansah/notes/internal/toast"
	"github.com/kwadjo-wusu-ansah/notes/internal/views"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
)

func NewCmdImport(s *state.State) *cobra.Command {
	var tags string
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "import [path...]",
		Aliases: []string{"capture"},
		Short:   "Import markdown files as notes.",
		Long: heredoc.Doc(`
			Creates a note for every markdown file found under the given paths.
			Directories are searched recursively for .md files.

			The title comes from the front matter, the first level one heading or
			the file name, in that order. Tags come from the front matter and a
			"tags:" line, plus any given with --tags.
		`),
		Example: `notes import ~/obsidian/atoms --tags imported`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := parser.NewParser(args...)
			if err := p.Walk(); err != nil {
				return err
			}
			if len(p.Documents) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No markdown files found.")
				return nil
			}

			extra := note.ParseTags(tags)
			if dryRun {
				for _, d := range p.Documents {
					v := d.Values(extra)
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %q %v\n", d.Path, v.Title, v.Tags)
				}
				return nil
			}
			return run(cmd, s, p.Documents, extra)
		},
	}

	cmd.Flags().StringVarP(&tags, "tags", "t", "", "Comma separated tags added to every imported note.")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print what would be imported without saving.")
	return cmd
}

// quiet drops per-note toasts so an import prints one summary.
type quiet struct{ failures []string }

func (q *quiet) Notify(kind toast.Kind, opts toast.Options) {
	if kind == toast.Failure {
		q.failures = append(q.failures, toast.Build(kind, opts).Message)
	}
}

func run(cmd *cobra.Command, s *state.State, docs []parser.Document, extra []string) error {
	q := &quiet{}
	ctl, err := cmdpkg.Controller(cmd.Context(), s, cmd.OutOrStdout(), q)
	if err != nil {
		return err
	}

	created := 0
	for _, d := range docs {
		ctl.NavigateTo(views.KeyCreateNote, controller.NavOptions{})
		result, err := ctl.Save(cmd.Context(), d.Values(extra))
		if err != nil {
			return fmt.Errorf("import %s: %w", d.Path, err)
		}
		if result == controller.SaveCreated {
			created++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d files.\n", created, len(docs))
	return nil
}
