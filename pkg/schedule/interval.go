package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is a half-open [Start, End) slot within a day, both ends in
// minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Contains reports whether the minute-of-day falls inside the interval.
func (i Interval) Contains(minutes int) bool {
	return minutes >= i.Start && minutes < i.End
}

// ParseInterval parses interval text of the form "H:MM - H:MM" (24-hour,
// no leading zero required). Text that does not split into exactly two
// "-"-delimited clock values is rejected; rows carrying such text are
// skipped by the resolver rather than treated as an error.
func ParseInterval(text string) (Interval, error) {
	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("schedule: interval %q must have two parts", text)
	}
	start, err := parseClock(parts[0])
	if err != nil {
		return Interval{}, err
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

func parseClock(text string) (int, error) {
	text = strings.TrimSpace(text)
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("schedule: clock value %q must be H:MM", text)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("schedule: bad hour in %q: %w", text, err)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("schedule: bad minute in %q: %w", text, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("schedule: clock value %q out of range", text)
	}
	return hour*60 + minute, nil
}
