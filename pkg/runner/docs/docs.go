// Package docs contains runners for remote document commands.
package docs

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/satchel/pkg/printers"
	"tableflip.dev/satchel/pkg/tree"
)

// ErrNotConfirmed is returned when a destructive operation runs without
// the caller's explicit confirmation.
var ErrNotConfirmed = errors.New("docs: destructive operation not confirmed, pass --yes")

// Add files a new document into FolderID. Description may be nil to omit
// it entirely.
type Add struct {
	Tree        *tree.Service
	FolderID    string
	TextContent string
	Description *string
}

func (a *Add) Do(ctx context.Context) error {
	if a.Tree == nil {
		return errors.New("docs: no tree service")
	}
	folder, doc, err := a.Tree.CreateDocument(ctx, a.FolderID, a.TextContent, a.Description)
	if err != nil {
		return err
	}
	fmt.Printf("Created document %s\n", doc.ID)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Folder(folder)
	return nil
}

// Edit replaces a document's text content. The description cannot be
// changed here.
type Edit struct {
	Tree        *tree.Service
	FolderID    string
	ID          string
	TextContent string
}

func (e *Edit) Do(ctx context.Context) error {
	if e.Tree == nil {
		return errors.New("docs: no tree service")
	}
	folder, doc, err := e.Tree.UpdateDocument(ctx, e.FolderID, e.ID, e.TextContent)
	if err != nil {
		return err
	}
	fmt.Printf("Updated document %s\n", doc.ID)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Folder(folder)
	return nil
}

// Remove deletes a document, gated on explicit confirmation.
type Remove struct {
	Tree      *tree.Service
	FolderID  string
	ID        string
	Confirmed bool
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Tree == nil {
		return errors.New("docs: no tree service")
	}
	if !r.Confirmed {
		return ErrNotConfirmed
	}
	folder, err := r.Tree.DeleteDocument(ctx, r.FolderID, r.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted document %s\n", r.ID)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Folder(folder)
	return nil
}
