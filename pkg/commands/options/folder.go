package options

import (
	"github.com/spf13/cobra"
)

// FolderOptions captures the parent folder targeted by a command. When
// left empty the configured root_folder_id is used.
type FolderOptions struct {
	ParentID string
}

func AddParentArgs(cmd *cobra.Command, o *FolderOptions) {
	cmd.Flags().StringVarP(&o.ParentID, "parent", "p", "",
		"Parent folder id. Defaults to the configured root folder.")
}

// ConfirmOptions gates destructive operations; deletes refuse to run
// until the user passes --yes.
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Confirm the destructive operation.")
}

// DescriptionOptions carries the optional document description. The
// Changed flag on the command distinguishes an empty description from an
// absent one.
type DescriptionOptions struct {
	Description string
}

func AddDescriptionArgs(cmd *cobra.Command, o *DescriptionOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Optional document description.")
}

// GetDescription returns the description pointer, nil when the flag was
// never set.
func (o *DescriptionOptions) GetDescription(cmd *cobra.Command) *string {
	if !cmd.Flags().Changed("description") {
		return nil
	}
	return &o.Description
}
