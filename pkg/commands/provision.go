package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/satchel/pkg/runner/provision"
)

func addProvision(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create a remote folder for every timetable subject",
		Example: `
satchel provision
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return err
			}
			p := provision.Provision{
				Schedule:    e.Schedule,
				Provisioner: e.provisioner(),
			}
			return p.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
