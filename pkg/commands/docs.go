package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/satchel/pkg/commands/options"
	"tableflip.dev/satchel/pkg/runner/docs"
)

func addDocs(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Manage documents inside material folders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newDocsAddCmd())
	cmd.AddCommand(newDocsEditCmd())
	cmd.AddCommand(newDocsRmCmd())

	topLevel.AddCommand(cmd)
}

func newDocsAddCmd() *cobra.Command {
	do := &options.DescriptionOptions{}
	cmd := &cobra.Command{
		Use:   "add <folderId> <text>",
		Short: "Create a document in a folder",
		Example: `
satchel docs add f-physics "today we covered waves" -d "week 3"
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return err
			}
			a := docs.Add{
				Tree:        e.Tree,
				FolderID:    args[0],
				TextContent: strings.Join(args[1:], " "),
				Description: do.GetDescription(cmd),
			}
			return a.Do(cmd.Context())
		},
	}
	options.AddDescriptionArgs(cmd, do)
	return cmd
}

func newDocsEditCmd() *cobra.Command {
	fo := &options.FolderOptions{}
	cmd := &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Replace a document's text content",
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
			ed := docs.Edit{
				Tree:        e.Tree,
				FolderID:    parent,
				ID:          args[0],
				TextContent: strings.Join(args[1:], " "),
			}
			return ed.Do(cmd.Context())
		},
	}
	options.AddParentArgs(cmd, fo)
	return cmd
}

func newDocsRmCmd() *cobra.Command {
	fo := &options.FolderOptions{}
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a document (requires --yes)",
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
			r := docs.Remove{
				Tree:      e.Tree,
				FolderID:  parent,
				ID:        args[0],
				Confirmed: co.Yes,
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddParentArgs(cmd, fo)
	options.AddConfirmArgs(cmd, co)
	return cmd
}
