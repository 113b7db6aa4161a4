package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/satchel/pkg/commands/options"
	"tableflip.dev/satchel/pkg/runner/folders"
)

func addFolders(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "folders",
		Short: "Browse and manage remote material folders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newFoldersListCmd())
	cmd.AddCommand(newFoldersCreateCmd())
	cmd.AddCommand(newFoldersRenameCmd())
	cmd.AddCommand(newFoldersDeleteCmd())

	topLevel.AddCommand(cmd)
}

func newFoldersListCmd() *cobra.Command {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "list [id...]",
		Short: "List folder contents; defaults to the root folder",
		Example: `
satchel folders list
satchel folders list --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return err
			}
			l := folders.List{
				Tree:   e.Tree,
				IDs:    args,
				RootID: e.RootID,
				ShowID: io.ShowID,
			}
			return l.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(cmd, io)
	return cmd
}

func newFoldersCreateCmd() *cobra.Command {
	fo := &options.FolderOptions{}
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a folder",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return err
			}
			parent := fo.ParentID
			if parent == "" {
				parent = e.RootID
			}
			c := folders.Create{
				Tree:     e.Tree,
				ParentID: parent,
				Name:     strings.Join(args, " "),
			}
			return c.Do(cmd.Context())
		},
	}
	options.AddParentArgs(cmd, fo)
	return cmd
}

func newFoldersRenameCmd() *cobra.Command {
	fo := &options.FolderOptions{}
	cmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a folder",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return err
			}
			parent := fo.ParentID
			if parent == "" {
				parent = e.RootID
			}
			r := folders.Rename{
				Tree:     e.Tree,
				ParentID: parent,
				ID:       args[0],
				Name:     strings.Join(args[1:], " "),
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddParentArgs(cmd, fo)
	return cmd
}

func newFoldersDeleteCmd() *cobra.Command {
	fo := &options.FolderOptions{}
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a folder (requires --yes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return err
			}
			parent := fo.ParentID
			if parent == "" {
				parent = e.RootID
			}
			d := folders.Delete{
				Tree:      e.Tree,
				ParentID:  parent,
				ID:        args[0],
				Confirmed: co.Yes,
			}
			return d.Do(cmd.Context())
		},
	}
	options.AddParentArgs(cmd, fo)
	options.AddConfirmArgs(cmd, co)
	return cmd
}
