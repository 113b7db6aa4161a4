package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/satchel/pkg/clock"
	"tableflip.dev/satchel/pkg/commands/options"
	"tableflip.dev/satchel/pkg/runner/now"
)

func addNow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Resolve the subject folder for the current time",
		Example: `
satchel now
satchel now note "remember the homework"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return err
			}
			n := now.Now{
				Schedule: e.Schedule,
				Tree:     e.Tree,
				Clock:    clock.System{},
				RootID:   e.RootID,
			}
			return n.Do(cmd.Context())
		},
	}

	cmd.AddCommand(newNowNoteCmd())
	topLevel.AddCommand(cmd)
}

func newNowNoteCmd() *cobra.Command {
	do := &options.DescriptionOptions{}
	cmd := &cobra.Command{
		Use:   "note <text>",
		Short: "File a note into the folder of the subject active right now",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return err
			}
			n := now.Now{
				Schedule:    e.Schedule,
				Tree:        e.Tree,
				Clock:       clock.System{},
				RootID:      e.RootID,
				Note:        strings.Join(args, " "),
				Description: do.GetDescription(cmd),
			}
			return n.Do(cmd.Context())
		},
	}
	options.AddDescriptionArgs(cmd, do)
	return cmd
}
