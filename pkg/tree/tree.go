// Package tree provides the folder/document view over the remote service.
// Every mutation is followed by a mandatory re-read of the affected folder
// before success is reported, so callers always hold a snapshot the remote
// service agrees with. There is no client-side patching of cached fields.
package tree

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/satchel/pkg/remote"
)

// ErrNotFound reports that a fetch returned no folder for the given id.
var ErrNotFound = errors.New("tree: folder not found")

// Service composes the two halves of the remote materials service.
type Service struct {
	Folders   remote.FolderService
	Documents remote.DocumentService
}

// Fetch reads the folders for the given ids. No caching: every caller
// re-fetches when it needs current state.
func (s *Service) Fetch(ctx context.Context, ids ...string) ([]remote.Folder, error) {
	if s.Folders == nil {
		return nil, errors.New("tree: no folder service configured")
	}
	return s.Folders.FoldersByIDs(ctx, ids)
}

// FetchOne reads a single folder snapshot.
func (s *Service) FetchOne(ctx context.Context, id string) (remote.Folder, error) {
	folders, err := s.Fetch(ctx, id)
	if err != nil {
		return remote.Folder{}, err
	}
	if len(folders) == 0 {
		return remote.Folder{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return folders[0], nil
}

// CreateFolder creates a folder under parentID and returns the refreshed
// parent snapshot along with the new folder's ref.
func (s *Service) CreateFolder(ctx context.Context, parentID, name string) (remote.Folder, remote.FolderRef, error) {
	if s.Folders == nil {
		return remote.Folder{}, remote.FolderRef{}, errors.New("tree: no folder service configured")
	}
	ref, err := s.Folders.CreateFolder(ctx, name, parentID)
	if err != nil {
		return remote.Folder{}, remote.FolderRef{}, err
	}
	parent, err := s.FetchOne(ctx, parentID)
	if err != nil {
		return remote.Folder{}, ref, err
	}
	return parent, ref, nil
}

// RenameFolder renames the folder id and returns the refreshed parent.
// Renaming to the current name still round-trips through the service.
func (s *Service) RenameFolder(ctx context.Context, parentID, id, name string) (remote.Folder, error) {
	if s.Folders == nil {
		return remote.Folder{}, errors.New("tree: no folder service configured")
	}
	if err := s.Folders.RenameFolder(ctx, id, name); err != nil {
		return remote.Folder{}, err
	}
	return s.FetchOne(ctx, parentID)
}

// DeleteFolder removes the folder id and returns the refreshed parent.
// Callers must confirm with the user before invoking; deletion is not
// reversible through this service.
func (s *Service) DeleteFolder(ctx context.Context, parentID, id string) (remote.Folder, error) {
	if s.Folders == nil {
		return remote.Folder{}, errors.New("tree: no folder service configured")
	}
	if err := s.Folders.DeleteFolder(ctx, id); err != nil {
		return remote.Folder{}, err
	}
	return s.FetchOne(ctx, parentID)
}

// CreateDocument files a document into folderID and returns the refreshed
// owning folder plus the created document.
func (s *Service) CreateDocument(ctx context.Context, folderID, textContent string, description *string) (remote.Folder, remote.Document, error) {
	if s.Documents == nil {
		return remote.Folder{}, remote.Document{}, errors.New("tree: no document service configured")
	}
	doc, err := s.Documents.CreateDocument(ctx, folderID, textContent, description)
	if err != nil {
		return remote.Folder{}, remote.Document{}, err
	}
	folder, err := s.FetchOne(ctx, folderID)
	if err != nil {
		return remote.Folder{}, doc, err
	}
	return folder, doc, nil
}

// UpdateDocument replaces a document's text content. The description is
// immutable through this operation. Returns the refreshed owning folder
// and the updated document.
func (s *Service) UpdateDocument(ctx context.Context, folderID, id, textContent string) (remote.Folder, remote.Document, error) {
	if s.Documents == nil {
		return remote.Folder{}, remote.Document{}, errors.New("tree: no document service configured")
	}
	doc, err := s.Documents.UpdateDocument(ctx, id, textContent)
	if err != nil {
		return remote.Folder{}, remote.Document{}, err
	}
	folder, err := s.FetchOne(ctx, folderID)
	if err != nil {
		return remote.Folder{}, doc, err
	}
	return folder, doc, nil
}

// DeleteDocument removes a document and returns the refreshed owning
// folder. Same confirmation contract as DeleteFolder.
func (s *Service) DeleteDocument(ctx context.Context, folderID, id string) (remote.Folder, error) {
	if s.Documents == nil {
		return remote.Folder{}, errors.New("tree: no document service configured")
	}
	if err := s.Documents.DeleteDocument(ctx, id); err != nil {
		return remote.Folder{}, err
	}
	return s.FetchOne(ctx, folderID)
}
