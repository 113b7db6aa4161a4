package tree

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/satchel/pkg/remote"
)

// fakeRemote records call order so tests can assert the write-then-refetch
// sequence.
type fakeRemote struct {
	calls      []string
	folders    map[string]remote.Folder
	failCreate bool
	failDelete bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{folders: map[string]remote.Folder{
		"root": {ID: "root", Name: "Materials"},
	}}
}

func (f *fakeRemote) FoldersByIDs(ctx context.Context, ids []string) ([]remote.Folder, error) {
	f.calls = append(f.calls, "fetch")
	out := make([]remote.Folder, 0, len(ids))
	for _, id := range ids {
		if folder, ok := f.folders[id]; ok {
			out = append(out, folder)
		}
	}
	return out, nil
}

func (f *fakeRemote) CreateFolder(ctx context.Context, name, parentID string) (remote.FolderRef, error) {
	f.calls = append(f.calls, "createFolder")
	if f.failCreate {
		return remote.FolderRef{}, &remote.Error{Op: "createFolder", Messages: []string{"rejected"}}
	}
	ref := remote.FolderRef{ID: "new-" + name, Name: name}
	parent := f.folders[parentID]
	parent.Subfolders = append(parent.Subfolders, ref)
	f.folders[parentID] = parent
	return ref, nil
}

func (f *fakeRemote) RenameFolder(ctx context.Context, id, name string) error {
	f.calls = append(f.calls, "renameFolder")
	parent := f.folders["root"]
	for i := range parent.Subfolders {
		if parent.Subfolders[i].ID == id {
			parent.Subfolders[i].Name = name
		}
	}
	f.folders["root"] = parent
	return nil
}

func (f *fakeRemote) DeleteFolder(ctx context.Context, id string) error {
	f.calls = append(f.calls, "deleteFolder")
	if f.failDelete {
		return &remote.Error{Op: "removeFolder", Messages: []string{"rejected"}}
	}
	parent := f.folders["root"]
	kept := parent.Subfolders[:0]
	for _, ref := range parent.Subfolders {
		if ref.ID != id {
			kept = append(kept, ref)
		}
	}
	parent.Subfolders = kept
	f.folders["root"] = parent
	return nil
}

func (f *fakeRemote) CreateDocument(ctx context.Context, folderID, textContent string, description *string) (remote.Document, error) {
	f.calls = append(f.calls, "createDocument")
	doc := remote.Document{ID: "d1", TextContent: textContent}
	if description != nil {
		doc.Description = *description
	}
	folder := f.folders[folderID]
	folder.Documents = append(folder.Documents, doc)
	f.folders[folderID] = folder
	return doc, nil
}

func (f *fakeRemote) UpdateDocument(ctx context.Context, id, textContent string) (remote.Document, error) {
	f.calls = append(f.calls, "updateDocument")
	return remote.Document{ID: id, TextContent: textContent}, nil
}

func (f *fakeRemote) DeleteDocument(ctx context.Context, id string) error {
	f.calls = append(f.calls, "deleteDocument")
	return nil
}

func newService(f *fakeRemote) *Service {
	return &Service{Folders: f, Documents: f}
}

func TestCreateFolderRefetchesParent(t *testing.T) {
	f := newFakeRemote()
	svc := newService(f)

	parent, ref, err := svc.CreateFolder(context.Background(), "root", "Math")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Name != "Math" {
		t.Fatalf("unexpected ref: %+v", ref)
	}
	want := []string{"createFolder", "fetch"}
	if len(f.calls) != 2 || f.calls[0] != want[0] || f.calls[1] != want[1] {
		t.Fatalf("expected write then refetch, got %v", f.calls)
	}
	if len(parent.Subfolders) != 1 || parent.Subfolders[0].Name != "Math" {
		t.Fatalf("refetched parent missing new folder: %+v", parent)
	}
}

func TestCreateFolderFailureSkipsRefetch(t *testing.T) {
	f := newFakeRemote()
	f.failCreate = true
	svc := newService(f)

	_, _, err := svc.CreateFolder(context.Background(), "root", "Math")
	if !remote.IsRemote(err) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if len(f.calls) != 1 {
		t.Fatalf("expected no refetch after failed write, got %v", f.calls)
	}
}

func TestDeleteFolderRefetchesParent(t *testing.T) {
	f := newFakeRemote()
	svc := newService(f)
	if _, _, err := svc.CreateFolder(context.Background(), "root", "Math"); err != nil {
		t.Fatalf("setup: %v", err)
	}
	f.calls = nil

	parent, err := svc.DeleteFolder(context.Background(), "root", "new-Math")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.calls) != 2 || f.calls[0] != "deleteFolder" || f.calls[1] != "fetch" {
		t.Fatalf("expected delete then refetch, got %v", f.calls)
	}
	if len(parent.Subfolders) != 0 {
		t.Fatalf("expected subfolder gone, got %+v", parent.Subfolders)
	}
}

func TestCreateDocumentRefetchesOwner(t *testing.T) {
	f := newFakeRemote()
	svc := newService(f)

	desc := "week 3"
	folder, doc, err := svc.CreateDocument(context.Background(), "root", "integrals", &desc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Description != "week 3" {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if len(f.calls) != 2 || f.calls[0] != "createDocument" || f.calls[1] != "fetch" {
		t.Fatalf("expected write then refetch, got %v", f.calls)
	}
	if len(folder.Documents) != 1 {
		t.Fatalf("refetched folder missing document: %+v", folder)
	}
}

func TestUpdateDocumentRefetchesOwner(t *testing.T) {
	f := newFakeRemote()
	svc := newService(f)

	_, doc, err := svc.UpdateDocument(context.Background(), "root", "d1", "rewritten")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.TextContent != "rewritten" {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if len(f.calls) != 2 || f.calls[0] != "updateDocument" || f.calls[1] != "fetch" {
		t.Fatalf("expected write then refetch, got %v", f.calls)
	}
}

func TestFetchOneNotFound(t *testing.T) {
	f := newFakeRemote()
	svc := newService(f)

	_, err := svc.FetchOne(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
