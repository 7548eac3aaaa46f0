package settings

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kwadjo-wusu-ansah/notes/internal/state"
	"github.com/kwadjo-wusu-ansah/notes/internal/tui/settings"
	cmdpkg "github.com/kwadjo-wusu-ansah/notes/pkg/cmd"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings [theme|font] [value]",
		Aliases: []string{"s"},
		Short:   "Change the color and font themes.",
		Long: heredoc.Doc(`
			Without arguments this opens the settings menu. Give a setting and a
			value to change it directly.

			  theme: light, dark or system
			  font:  sans, serif or mono
		`),
		Example:     "notes settings theme dark",
		Args:        cobra.MatchAll(cobra.MaximumNArgs(2), validArgs),
		Annotations: map[string]string{cmdpkg.AnnotationTUI: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := cmdpkg.Controller(cmd.Context(), s, cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return settings.Run(cmd.Context(), ctl)
			}

			switch strings.ToLower(args[0]) {
			case "theme":
				return ctl.ApplyTheme(cmd.Context(), args[1])
			case "font":
				return ctl.ApplyFont(cmd.Context(), args[1])
			}
			return nil
		},
	}

	return cmd
}

func validArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("a value is required for %q", args[0])
	}
	switch strings.ToLower(args[0]) {
	case "theme", "font":
		return nil
	}
	return fmt.Errorf("unknown setting %q, expected theme or font", args[0])
}
