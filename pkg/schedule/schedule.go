// Package schedule owns the weekly timetable: ordered rows of a time
// interval plus one subject cell per day, Monday first.
package schedule

// DayCount is the number of cells per row, one per day of the week.
const DayCount = 7

// Days are the column headers, index 0 = Monday through 6 = Sunday.
var Days = [DayCount]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Row is one timetable row. Time holds the raw interval text, for example
// "8:00 - 10:00"; Cells holds the subject per day, empty meaning none.
type Row struct {
	Time  string           `json:"time"`
	Cells [DayCount]string `json:"cells"`
}

// NewTimeSentinel is the interval text a freshly added row carries until
// the user fills it in. It never parses, so new rows never match.
const NewTimeSentinel = "New Time"

// DefaultRows returns the canonical four-slot school day used when no
// timetable has been saved yet.
func DefaultRows() []Row {
	return []Row{
		{Time: "8:00 - 10:00"},
		{Time: "10:00 - 12:00"},
		{Time: "13:00 - 15:00"},
		{Time: "15:00 - 17:00"},
	}
}

// SetCell returns a copy of rows with the single cell at (rowIndex,
// dayIndex) replaced. The input is never mutated. Out-of-range indices
// return the input unchanged.
func SetCell(rows []Row, rowIndex, dayIndex int, value string) []Row {
	if rowIndex < 0 || rowIndex >= len(rows) || dayIndex < 0 || dayIndex >= DayCount {
		return rows
	}
	updated := make([]Row, len(rows))
	copy(updated, rows)
	updated[rowIndex].Cells[dayIndex] = value
	return updated
}

// SetInterval returns a copy of rows with the interval text of rowIndex
// replaced. Setting the same value again returns the input as-is so
// callers can skip a redundant save.
func SetInterval(rows []Row, rowIndex int, value string) []Row {
	if rowIndex < 0 || rowIndex >= len(rows) {
		return rows
	}
	if rows[rowIndex].Time == value {
		return rows
	}
	updated := make([]Row, len(rows))
	copy(updated, rows)
	updated[rowIndex].Time = value
	return updated
}

// AddRow returns a copy of rows with one sentinel row appended.
func AddRow(rows []Row) []Row {
	updated := make([]Row, len(rows), len(rows)+1)
	copy(updated, rows)
	return append(updated, Row{Time: NewTimeSentinel})
}

// RemoveRow returns a copy of rows without the row at rowIndex. A stale
// index is a no-op, not an error.
func RemoveRow(rows []Row, rowIndex int) []Row {
	if rowIndex < 0 || rowIndex >= len(rows) {
		return rows
	}
	updated := make([]Row, 0, len(rows)-1)
	updated = append(updated, rows[:rowIndex]...)
	updated = append(updated, rows[rowIndex+1:]...)
	return updated
}
