package schedule

import (
	"strings"
	"time"
)

// DayIndex maps a time.Weekday (Sunday-origin) onto the timetable's
// Monday=0 … Sunday=6 columns.
func DayIndex(weekday time.Weekday) int {
	if weekday == time.Sunday {
		return DayCount - 1
	}
	return int(weekday) - 1
}

// ActiveSubject resolves which subject is scheduled at the given instant.
// Rows are checked in stored order and the first interval containing the
// current minute-of-day wins; overlapping rows are allowed. Rows whose
// interval text does not parse are skipped. The second return is false
// when no row matches or the matched cell is blank.
func ActiveSubject(rows []Row, now time.Time) (string, bool) {
	minutes := now.Hour()*60 + now.Minute()
	day := DayIndex(now.Weekday())

	for _, row := range rows {
		interval, err := ParseInterval(row.Time)
		if err != nil {
			continue
		}
		if !interval.Contains(minutes) {
			continue
		}
		subject := strings.TrimSpace(row.Cells[day])
		if subject == "" {
			return "", false
		}
		return subject, true
	}
	return "", false
}

// Subjects collects the distinct, trimmed, non-empty cell values across
// all rows. Iteration order over the returned set is unspecified.
func Subjects(rows []Row) map[string]bool {
	subjects := make(map[string]bool)
	for _, row := range rows {
		for _, cell := range row.Cells {
			if trimmed := strings.TrimSpace(cell); trimmed != "" {
				subjects[trimmed] = true
			}
		}
	}
	return subjects
}
