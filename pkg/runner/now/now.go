// Package now contains the runner that resolves the active subject and,
// optionally, files a note into its folder.
package now

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/satchel/pkg/clock"
	"tableflip.dev/satchel/pkg/printers"
	"tableflip.dev/satchel/pkg/resolve"
	"tableflip.dev/satchel/pkg/schedule"
	"tableflip.dev/satchel/pkg/tree"
)

// ErrNoActiveFolder reports that the current time resolves to no subject
// folder. It is an expected outcome, not a service failure.
var ErrNoActiveFolder = errors.New("now: no folder is active right now")

// Now resolves the subject scheduled for the current time against the
// root folder's subfolders. When Note is set, a document is created in
// the resolved folder; otherwise the resolution is printed.
type Now struct {
	Schedule    *schedule.Store
	Tree        *tree.Service
	Clock       clock.Clock
	RootID      string
	Note        string
	Description *string
}

func (n *Now) Do(ctx context.Context) error {
	if n.Schedule == nil || n.Tree == nil {
		return errors.New("now: not configured")
	}
	if n.RootID == "" {
		return errors.New("now: root_folder_id is not configured")
	}
	c := n.Clock
	if c == nil {
		c = clock.System{}
	}

	rows := n.Schedule.Load()
	at := c.Now()

	subject, ok := schedule.ActiveSubject(rows, at)
	if !ok {
		fmt.Println("No subject is scheduled right now.")
		return ErrNoActiveFolder
	}

	root, err := n.Tree.FetchOne(ctx, n.RootID)
	if err != nil {
		return err
	}

	folderID, ok := resolve.TargetFolder(rows, at, root)
	if !ok {
		fmt.Printf("No folder named %q exists yet, run provision first.\n", subject)
		return ErrNoActiveFolder
	}

	if n.Note == "" {
		fmt.Printf("Active subject: %s (folder %s)\n", subject, folderID)
		return nil
	}

	folder, doc, err := n.Tree.CreateDocument(ctx, folderID, n.Note, n.Description)
	if err != nil {
		return err
	}
	fmt.Printf("Filed note %s under %s\n", doc.ID, subject)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Folder(folder)
	return nil
}
