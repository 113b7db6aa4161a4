// Package folders contains runners for remote folder commands.
package folders

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/satchel/pkg/printers"
	"tableflip.dev/satchel/pkg/tree"
)

// ErrNotConfirmed is returned when a destructive operation runs without
// the caller's explicit confirmation.
var ErrNotConfirmed = errors.New("folders: destructive operation not confirmed, pass --yes")

// List fetches and prints folder snapshots. With no IDs the root folder
// is shown.
type List struct {
	Tree   *tree.Service
	IDs    []string
	RootID string
	ShowID bool
}

func (l *List) Do(ctx context.Context) error {
	if l.Tree == nil {
		return errors.New("folders: no tree service")
	}
	ids := l.IDs
	if len(ids) == 0 {
		if l.RootID == "" {
			return errors.New("folders: root_folder_id is not configured")
		}
		ids = []string{l.RootID}
	}
	snapshot, err := l.Tree.Fetch(ctx, ids...)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.NewLine()
	for _, folder := range snapshot {
		pp.Folder(folder)
		pp.NewLine()
	}
	return nil
}

// Create makes a new folder under ParentID.
type Create struct {
	Tree     *tree.Service
	ParentID string
	Name     string
}

func (c *Create) Do(ctx context.Context) error {
	if c.Tree == nil {
		return errors.New("folders: no tree service")
	}
	parent, ref, err := c.Tree.CreateFolder(ctx, c.ParentID, c.Name)
	if err != nil {
		return err
	}
	fmt.Printf("Created folder %q (%s)\n", ref.Name, ref.ID)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Folder(parent)
	return nil
}

// Rename changes a folder's name. Renaming to the same name still
// round-trips through the service.
type Rename struct {
	Tree     *tree.Service
	ParentID string
	ID       string
	Name     string
}

func (r *Rename) Do(ctx context.Context) error {
	if r.Tree == nil {
		return errors.New("folders: no tree service")
	}
	parent, err := r.Tree.RenameFolder(ctx, r.ParentID, r.ID, r.Name)
	if err != nil {
		return err
	}
	fmt.Printf("Renamed folder %s to %q\n", r.ID, r.Name)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Folder(parent)
	return nil
}

// Delete removes a folder. Confirmed must be set by the caller after
// asking the user; the runner refuses otherwise.
type Delete struct {
	Tree      *tree.Service
	ParentID  string
	ID        string
	Confirmed bool
}

func (d *Delete) Do(ctx context.Context) error {
	if d.Tree == nil {
		return errors.New("folders: no tree service")
	}
	if !d.Confirmed {
		return ErrNotConfirmed
	}
	parent, err := d.Tree.DeleteFolder(ctx, d.ParentID, d.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted folder %s\n", d.ID)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Folder(parent)
	return nil
}
