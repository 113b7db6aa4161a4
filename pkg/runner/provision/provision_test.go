package provision

import (
	"context"
	"testing"

	"tableflip.dev/satchel/pkg/provision"
	"tableflip.dev/satchel/pkg/remote"
	"tableflip.dev/satchel/pkg/schedule"
)

type mapStore map[string]string

func (m mapStore) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m mapStore) Set(key, value string) error {
	m[key] = value
	return nil
}

type fakeFolders struct {
	created []string
}

func (f *fakeFolders) FoldersByIDs(ctx context.Context, ids []string) ([]remote.Folder, error) {
	return nil, nil
}

func (f *fakeFolders) CreateFolder(ctx context.Context, name, parentID string) (remote.FolderRef, error) {
	f.created = append(f.created, name)
	return remote.FolderRef{ID: "id-" + name, Name: name}, nil
}

func (f *fakeFolders) RenameFolder(ctx context.Context, id, name string) error { return nil }
func (f *fakeFolders) DeleteFolder(ctx context.Context, id string) error       { return nil }

func TestProvisionCreatesMissingFolders(t *testing.T) {
	kv := mapStore{}
	store := &schedule.Store{KV: kv}

	rows := schedule.DefaultRows()
	rows = schedule.SetCell(rows, 0, 0, "Math")
	rows = schedule.SetCell(rows, 1, 2, "Physics")
	if err := store.Save(rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	folders := &fakeFolders{}
	p := &Provision{
		Schedule:    store,
		Provisioner: &provision.Provisioner{Folders: folders, KV: kv, RootID: "root"},
	}
	if err := p.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(folders.created) != 2 {
		t.Fatalf("expected 2 folders created, got %v", folders.created)
	}

	// A second run finds everything provisioned already.
	if err := p.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(folders.created) != 2 {
		t.Fatalf("expected no additional folders, got %v", folders.created)
	}
}
