package schedule

import (
	"errors"
	"reflect"
	"testing"
)

type mapStore struct {
	values map[string]string
	failed bool
}

func newMapStore() *mapStore {
	return &mapStore{values: make(map[string]string)}
}

func (m *mapStore) Get(key string) (string, bool, error) {
	if m.failed {
		return "", false, errors.New("store offline")
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mapStore) Set(key, value string) error {
	if m.failed {
		return errors.New("store offline")
	}
	m.values[key] = value
	return nil
}

func TestStoreRoundTrip(t *testing.T) {
	s := &Store{KV: newMapStore()}

	rows := DefaultRows()
	rows = SetCell(rows, 0, 0, "Math")
	rows = SetCell(rows, 2, 4, "History")

	if err := s.Save(rows); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded := s.Load()
	if !reflect.DeepEqual(loaded, rows) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded, rows)
	}
}

func TestStoreLoadDefaultWhenEmpty(t *testing.T) {
	s := &Store{KV: newMapStore()}
	if got := s.Load(); !reflect.DeepEqual(got, DefaultRows()) {
		t.Fatalf("expected default rows, got %+v", got)
	}
}

func TestStoreLoadDefaultWhenCorrupt(t *testing.T) {
	kv := newMapStore()
	kv.values[TimetableKey] = "{not json"
	s := &Store{KV: kv}
	if got := s.Load(); !reflect.DeepEqual(got, DefaultRows()) {
		t.Fatalf("expected default rows for corrupt value, got %+v", got)
	}
}

func TestStoreLoadDefaultWhenUnavailable(t *testing.T) {
	s := &Store{KV: &mapStore{failed: true}}
	if got := s.Load(); !reflect.DeepEqual(got, DefaultRows()) {
		t.Fatalf("expected default rows when store errors, got %+v", got)
	}
}

func TestStorePersistedFormat(t *testing.T) {
	kv := newMapStore()
	s := &Store{KV: kv}

	rows := []Row{{Time: "8:00 - 10:00", Cells: [DayCount]string{"Math"}}}
	if err := s.Save(rows); err != nil {
		t.Fatalf("save: %v", err)
	}

	want := `[{"time":"8:00 - 10:00","cells":["Math","","","","","",""]}]`
	if kv.values[TimetableKey] != want {
		t.Fatalf("unexpected serialized timetable:\n got %s\nwant %s", kv.values[TimetableKey], want)
	}
}
