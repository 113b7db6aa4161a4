package schedule

import (
	"encoding/json"
	"fmt"

	"tableflip.dev/satchel/pkg/kv"
)

// TimetableKey is where the serialized timetable lives in the local store.
const TimetableKey = "timetable"

// Store persists the timetable rows through a durable key/value store.
type Store struct {
	KV kv.Store
}

// Load reads the saved rows. A missing or unparseable value falls back to
// DefaultRows so a fresh install always has a usable timetable.
func (s *Store) Load() []Row {
	if s.KV == nil {
		return DefaultRows()
	}
	raw, ok, err := s.KV.Get(TimetableKey)
	if err != nil || !ok {
		return DefaultRows()
	}
	var rows []Row
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return DefaultRows()
	}
	return rows
}

// Save overwrites the stored timetable with the full row list.
func (s *Store) Save(rows []Row) error {
	if s.KV == nil {
		return fmt.Errorf("schedule: no store configured")
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("schedule: encode timetable: %w", err)
	}
	if err := s.KV.Set(TimetableKey, string(data)); err != nil {
		return fmt.Errorf("schedule: save timetable: %w", err)
	}
	return nil
}
