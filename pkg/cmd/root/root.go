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
package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kwadjo-wusu-ansah/notes/internal/constants"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/archive"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/capture"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/clip"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/initialize"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/list"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/new"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/notes"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/open"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/restore"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/search"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/settings"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/show"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/tags"
	"github.com/kwadjo-wusu-ansah/notes/pkg/cmd/trash"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	var verbose bool

	notesCmd := notes.NewCmdNotes(s)

	cmd := &cobra.Command{
		Use:     "notes",
		Short:   "Capture, tag, search and archive notes from the terminal.",
		Version: constants.Version,
		Long: heredoc.Doc(`
			A personal notes manager. Running it without a command opens the
			notes browser; every action is also available as a command.

			  notes new "Standup" --tags "work, daily"
			  notes list --route archived-notes
			  notes search performance
		`),
		Annotations:  map[string]string{cmdpkg.AnnotationTUI: "true"},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[cmdpkg.AnnotationSkipOpen] == "true" {
				return nil
			}
			return s.Open(cmd.Context(), state.OpenOptions{
				Verbose:   verbose,
				LogToFile: cmd.Annotations[cmdpkg.AnnotationTUI] == "true",
			})
		},
		RunE: notesCmd.RunE,
	}

	cmd.Flags().AddFlagSet(notesCmd.Flags())

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug output.")
	flags.String("backend", "", "Storage backend to use: file, s3 or postgres.")
	flags.String("data-dir", "", "Directory for the file backend.")
	flags.String("s3-bucket", "", "Bucket for the s3 backend.")
	flags.String("postgres-dsn", "", "Connection string for the postgres backend.")

	viper.BindPFlag("backend", flags.Lookup("backend"))
	viper.BindPFlag("data_dir", flags.Lookup("data-dir"))
	viper.BindPFlag("s3_bucket", flags.Lookup("s3-bucket"))
	viper.BindPFlag("postgres_dsn", flags.Lookup("postgres-dsn"))

	cmd.AddCommand(
		initialize.NewCmdInit(s),
		notesCmd,
		new.NewCmdNew(s),
		list.NewCmdList(s),
		show.NewCmdShow(s),
		search.NewCmdSearch(s),
		tags.NewCmdTags(s),
		archive.NewCmdArchive(s),
		trash.NewCmdDelete(s),
		restore.NewCmdRestore(s),
		open.NewCmdOpen(s),
		clip.NewCmdCopy(s),
		capture.NewCmdImport(s),
		settings.NewCmdSettings(s),
	)

	return cmd, nil
}
