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
package initialize

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/config"
	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	"github.com/kwadjo-wusu-ansah/notes/internal/tui/initialize"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
)

func NewCmdInit(s *state.State) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:         "initialize",
		Aliases:     []string{"i", "init"},
		Short:       "Set up the notes configuration.",
		Long:        "This command walks you through choosing a storage backend and writes the configuration file.",
		Example:     "notes init",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{cmdpkg.AnnotationSkipOpen: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg  *config.Config
				done bool
			)
			if defaults {
				cfg = config.Default(s.Home)
				if err := cfg.Save(); err != nil {
					return err
				}
				done = true
			} else {
				var err error
				if cfg, done, err = initialize.Run(s.Home); err != nil {
					return err
				}
			}

			if !done {
				fmt.Fprintln(cmd.OutOrStdout(), "Configuration unchanged.")
				return nil
			}
			s.Config = cfg
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", cfg.GetConfigPath())
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "Write the default configuration without prompting.")
	return cmd
}
