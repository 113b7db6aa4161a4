package now

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/satchel/pkg/clock"
	"tableflip.dev/satchel/pkg/remote"
	"tableflip.dev/satchel/pkg/schedule"
	"tableflip.dev/satchel/pkg/tree"
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

type fakeRemote struct {
	root    remote.Folder
	physics remote.Folder
	created []remote.Document
}

func (f *fakeRemote) FoldersByIDs(ctx context.Context, ids []string) ([]remote.Folder, error) {
	out := make([]remote.Folder, 0, len(ids))
	for _, id := range ids {
		switch id {
		case f.root.ID:
			out = append(out, f.root)
		case f.physics.ID:
			out = append(out, f.physics)
		}
	}
	return out, nil
}

func (f *fakeRemote) CreateFolder(ctx context.Context, name, parentID string) (remote.FolderRef, error) {
	return remote.FolderRef{}, errors.New("unexpected call")
}

func (f *fakeRemote) RenameFolder(ctx context.Context, id, name string) error { return nil }
func (f *fakeRemote) DeleteFolder(ctx context.Context, id string) error       { return nil }

func (f *fakeRemote) CreateDocument(ctx context.Context, folderID, textContent string, description *string) (remote.Document, error) {
	doc := remote.Document{ID: "d1", TextContent: textContent}
	f.created = append(f.created, doc)
	f.physics.Documents = append(f.physics.Documents, doc)
	return doc, nil
}

func (f *fakeRemote) UpdateDocument(ctx context.Context, id, textContent string) (remote.Document, error) {
	return remote.Document{}, errors.New("unexpected call")
}

func (f *fakeRemote) DeleteDocument(ctx context.Context, id string) error { return nil }

func fixture(t *testing.T) (*Now, *fakeRemote) {
	t.Helper()

	store := &schedule.Store{KV: mapStore{}}
	rows := []schedule.Row{{Time: "8:00 - 10:00", Cells: [schedule.DayCount]string{"Physics"}}}
	if err := store.Save(rows); err != nil {
		t.Fatalf("save rows: %v", err)
	}

	f := &fakeRemote{
		root: remote.Folder{
			ID:         "root",
			Name:       "Materials",
			Subfolders: []remote.FolderRef{{ID: "f-physics", Name: "Physics"}},
		},
		physics: remote.Folder{ID: "f-physics", Name: "Physics"},
	}

	// 2024-03-04 09:00 is a Monday morning inside the first slot.
	n := &Now{
		Schedule: store,
		Tree:     &tree.Service{Folders: f, Documents: f},
		Clock:    clock.Fixed{Time: time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)},
		RootID:   "root",
	}
	return n, f
}

func TestNowResolvesActiveFolder(t *testing.T) {
	n, _ := fixture(t)
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNowFilesNote(t *testing.T) {
	n, f := fixture(t)
	n.Note = "today we covered waves"

	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.created) != 1 || f.created[0].TextContent != "today we covered waves" {
		t.Fatalf("expected note to be filed, got %v", f.created)
	}
}

func TestNowOutsideAnySlot(t *testing.T) {
	n, f := fixture(t)
	n.Clock = clock.Fixed{Time: time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)}
	n.Note = "should not be filed"

	if err := n.Do(context.Background()); !errors.Is(err, ErrNoActiveFolder) {
		t.Fatalf("expected ErrNoActiveFolder, got %v", err)
	}
	if len(f.created) != 0 {
		t.Fatalf("no document should be created, got %v", f.created)
	}
}

func TestNowSubjectWithoutFolder(t *testing.T) {
	n, f := fixture(t)
	f.root.Subfolders = nil

	if err := n.Do(context.Background()); !errors.Is(err, ErrNoActiveFolder) {
		t.Fatalf("expected ErrNoActiveFolder, got %v", err)
	}
}
