package list

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/controller"
	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/render"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	"github.com/kwadjo-wusu-ansah/notes/internal/views"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
)

func NewCmdList(s *state.State) *cobra.Command {
	var route, query, tag string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List the notes of a page.",
		Long: heredoc.Doc(`
			Prints the notes a page of the browser would show, in the order the
			browser lists them. Without flags that is every active note.
		`),
		Example: heredoc.Doc(`
			notes list --route archived-notes
			notes list --tag work
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tag != "" {
				route = views.TagRoute(tag)
			}
			ctl, err := cmdpkg.Controller(cmd.Context(), s, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}

			opts := controller.NavOptions{}
			if query != "" {
				route = views.KeySearch
				opts.Query = &query
			}
			vs := ctl.NavigateTo(route, opts)
			Print(cmd, vs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&route, "route", "r", views.KeyAllNotes, "Page to list: all-notes, archived-notes or tag-<name>.")
	cmd.Flags().StringVarP(&query, "query", "q", "", "List the notes matching the query.")
	cmd.Flags().StringVar(&tag, "tag", "", "List the notes with this tag.")
	return cmd
}

// Print writes the page header and its notes as a table, or the page's
// empty message.
func Print(cmd *cobra.Command, vs views.ViewState) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerText(vs.Header))
	if !vs.Info.Empty() {
		fmt.Fprintln(out, vs.Info.String())
	}

	if !vs.HasNotes {
		if text := vs.EmptyState.Text(); text != "" {
			fmt.Fprintln(out, text)
		} else {
			fmt.Fprintln(out, "No notes.")
		}
		return
	}

	fmt.Fprintln(out, Table(vs.Notes).View())
}

func headerText(h views.Header) string {
	if h.Title != "" {
		return h.Title
	}
	return h.MutedPrefix + " " + h.Highlight
}

// Table lays notes out with their id, title, tags and last edit date.
func Table(notes []note.Note) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Title", Width: 32},
		{Title: "Tags", Width: 24},
		{Title: "Last Edited", Width: 12},
	}

	rows := make([]table.Row, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, table.Row{
			shortID(n.ID),
			render.Title(n.Title, 32),
			tagsCell(n.Tags),
			n.LastEdited,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Cell
	t.SetStyles(st)
	return t
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func tagsCell(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return fmt.Sprint(tags)
}
