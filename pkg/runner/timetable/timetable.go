// Package timetable contains runners for the weekly schedule commands.
package timetable

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/satchel/pkg/printers"
	"tableflip.dev/satchel/pkg/schedule"
)

// Show prints the saved timetable.
type Show struct {
	Schedule *schedule.Store
}

func (s *Show) Do(ctx context.Context) error {
	if s.Schedule == nil {
		return errors.New("timetable: no schedule store")
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Timetable")
	pp.Timetable(s.Schedule.Load())
	return nil
}

// SetCell writes one subject cell and persists the timetable.
type SetCell struct {
	Schedule *schedule.Store
	RowIndex int
	DayIndex int
	Subject  string
}

func (s *SetCell) Do(ctx context.Context) error {
	if s.Schedule == nil {
		return errors.New("timetable: no schedule store")
	}
	rows := s.Schedule.Load()
	if s.RowIndex < 0 || s.RowIndex >= len(rows) {
		return fmt.Errorf("timetable: row %d out of range", s.RowIndex)
	}
	if s.DayIndex < 0 || s.DayIndex >= schedule.DayCount {
		return fmt.Errorf("timetable: day %d out of range", s.DayIndex)
	}
	rows = schedule.SetCell(rows, s.RowIndex, s.DayIndex, s.Subject)
	if err := s.Schedule.Save(rows); err != nil {
		return err
	}
	fmt.Printf("Set %s %s to %q\n", schedule.Days[s.DayIndex], rows[s.RowIndex].Time, s.Subject)
	return nil
}

// SetTime replaces a row's interval text and persists the timetable.
// Re-setting the same text skips the save.
type SetTime struct {
	Schedule *schedule.Store
	RowIndex int
	Time     string
}

func (s *SetTime) Do(ctx context.Context) error {
	if s.Schedule == nil {
		return errors.New("timetable: no schedule store")
	}
	rows := s.Schedule.Load()
	if s.RowIndex < 0 || s.RowIndex >= len(rows) {
		return fmt.Errorf("timetable: row %d out of range", s.RowIndex)
	}
	if rows[s.RowIndex].Time == s.Time {
		return nil
	}
	updated := schedule.SetInterval(rows, s.RowIndex, s.Time)
	if err := s.Schedule.Save(updated); err != nil {
		return err
	}
	if _, err := schedule.ParseInterval(s.Time); err != nil {
		fmt.Printf("Warning: %q will not match any time slot: %v\n", s.Time, err)
	}
	return nil
}

// AddRow appends an empty row and persists the timetable.
type AddRow struct {
	Schedule *schedule.Store
}

func (a *AddRow) Do(ctx context.Context) error {
	if a.Schedule == nil {
		return errors.New("timetable: no schedule store")
	}
	rows := schedule.AddRow(a.Schedule.Load())
	if err := a.Schedule.Save(rows); err != nil {
		return err
	}
	fmt.Printf("Added row %d\n", len(rows)-1)
	return nil
}

// RemoveRow deletes the row at RowIndex. A stale index is a no-op.
type RemoveRow struct {
	Schedule *schedule.Store
	RowIndex int
}

func (r *RemoveRow) Do(ctx context.Context) error {
	if r.Schedule == nil {
		return errors.New("timetable: no schedule store")
	}
	rows := r.Schedule.Load()
	updated := schedule.RemoveRow(rows, r.RowIndex)
	if len(updated) == len(rows) {
		return nil
	}
	return r.Schedule.Save(updated)
}
