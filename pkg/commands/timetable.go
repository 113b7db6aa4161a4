package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/satchel/pkg/runner/timetable"
	"tableflip.dev/satchel/pkg/schedule"
	"tableflip.dev/satchel/pkg/tui"
)

func addTimetable(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "timetable",
		Aliases: []string{"tt"},
		Short:   "Show and edit the weekly timetable",
		Example: `
satchel timetable
satchel timetable set 0 monday Math
satchel timetable time 0 "9:00 - 10:30"
satchel timetable edit
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(false)
			if err != nil {
				return err
			}
			s := timetable.Show{Schedule: e.Schedule}
			return s.Do(cmd.Context())
		},
	}

	cmd.AddCommand(newTimetableSetCmd())
	cmd.AddCommand(newTimetableTimeCmd())
	cmd.AddCommand(newTimetableAddCmd())
	cmd.AddCommand(newTimetableRmCmd())
	cmd.AddCommand(newTimetableEditCmd())

	topLevel.AddCommand(cmd)
}

func newTimetableSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <row> <day> [subject]",
		Short: "Set the subject for one cell; omit the subject to clear it",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rowIndex, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("row must be a number: %w", err)
			}
			dayIndex, err := parseDay(args[1])
			if err != nil {
				return err
			}
			e, err := loadEnv(false)
			if err != nil {
				return err
			}
			s := timetable.SetCell{
				Schedule: e.Schedule,
				RowIndex: rowIndex,
				DayIndex: dayIndex,
				Subject:  strings.Join(args[2:], " "),
			}
			return s.Do(cmd.Context())
		},
	}
}

func newTimetableTimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "time <row> <interval>",
		Short: `Set a row's time interval, for example "8:00 - 10:00"`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rowIndex, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("row must be a number: %w", err)
			}
			e, err := loadEnv(false)
			if err != nil {
				return err
			}
			s := timetable.SetTime{Schedule: e.Schedule, RowIndex: rowIndex, Time: args[1]}
			return s.Do(cmd.Context())
		},
	}
}

func newTimetableAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Append an empty row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(false)
			if err != nil {
				return err
			}
			a := timetable.AddRow{Schedule: e.Schedule}
			return a.Do(cmd.Context())
		},
	}
}

func newTimetableRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <row>",
		Short: "Remove a row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rowIndex, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("row must be a number: %w", err)
			}
			e, err := loadEnv(false)
			if err != nil {
				return err
			}
			r := timetable.RemoveRow{Schedule: e.Schedule, RowIndex: rowIndex}
			return r.Do(cmd.Context())
		},
	}
}

func newTimetableEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the timetable interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(false)
			if err != nil {
				return err
			}
			return tui.Run(e.Schedule)
		},
	}
}

// parseDay accepts a day name ("monday", "Mon") or a 0-based index.
func parseDay(arg string) (int, error) {
	if i, err := strconv.Atoi(arg); err == nil {
		if i < 0 || i >= schedule.DayCount {
			return 0, fmt.Errorf("day index %d out of range", i)
		}
		return i, nil
	}
	lower := strings.ToLower(arg)
	for i, day := range schedule.Days {
		if strings.ToLower(day) == lower || strings.ToLower(day[:3]) == lower {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown day %q", arg)
}
