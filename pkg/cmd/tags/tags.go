/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package tags

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/note"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
)

func NewCmdTags(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List every tag and how many notes carry it.",
		Long:  "Tags that differ only in case are listed separately, the way the browser shows them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := cmdpkg.Controller(cmd.Context(), s, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}

			notes := ctl.State().Notes
			if len(note.AllTags(notes)) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tags yet")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), Table(notes).View())
			return nil
		},
	}

	return cmd
}

// Counts maps each tag, exactly as written, to the number of notes with it.
func Counts(notes []note.Note) map[string]int {
	counts := make(map[string]int)
	for _, n := range notes {
		for _, t := range n.Tags {
			counts[t]++
		}
	}
	return counts
}

func Table(notes []note.Note) table.Model {
	counts := Counts(notes)
	tags := note.AllTags(notes)

	rows := make([]table.Row, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, table.Row{t, strconv.Itoa(counts[t])})
	}

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Tag", Width: 24},
			{Title: "Notes", Width: 6},
		}),
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
	tbl.SetStyles(st)
	return tbl
}
