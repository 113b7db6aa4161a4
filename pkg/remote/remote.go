// Package remote defines the contracts for the materials service that owns
// the folder/document hierarchy, plus the GraphQL transport that talks to
// it. Everything above this package treats the service as abstract CRUD.
package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// FolderRef is the shallow view of a folder as listed under its parent.
type FolderRef struct {
	ID            string
	Name          string
	DocumentCount int
}

// Document is a leaf content item owned by exactly one folder.
type Document struct {
	ID          string
	TextContent string
	Description string
	CreatedAt   string
}

// Folder is a full folder snapshot: its own fields plus shallow subfolder
// refs and the documents it holds. Names are mutable and not guaranteed
// unique among siblings.
type Folder struct {
	ID            string
	Name          string
	DocumentCount int
	Subfolders    []FolderRef
	Documents     []Document
}

// FolderService is the folder half of the remote materials service.
type FolderService interface {
	FoldersByIDs(ctx context.Context, ids []string) ([]Folder, error)
	CreateFolder(ctx context.Context, name, parentID string) (FolderRef, error)
	RenameFolder(ctx context.Context, id, name string) error
	DeleteFolder(ctx context.Context, id string) error
}

// DocumentService is the document half of the remote materials service.
// A nil description is passed through as absent, not as an empty string.
type DocumentService interface {
	CreateDocument(ctx context.Context, folderID, textContent string, description *string) (Document, error)
	UpdateDocument(ctx context.Context, id, textContent string) (Document, error)
	DeleteDocument(ctx context.Context, id string) error
}

// Error is a failure reported by the remote service or its transport. The
// caller decides whether to retry or surface it; nothing in this module
// retries automatically.
type Error struct {
	Op       string
	Messages []string
	Err      error
}

func (e *Error) Error() string {
	switch {
	case len(e.Messages) > 0:
		return fmt.Sprintf("remote: %s: %s", e.Op, strings.Join(e.Messages, "; "))
	case e.Err != nil:
		return fmt.Sprintf("remote: %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("remote: %s failed", e.Op)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsRemote reports whether err originated from the remote service.
func IsRemote(err error) bool {
	var re *Error
	return errors.As(err, &re)
}
