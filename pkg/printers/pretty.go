package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/satchel/pkg/remote"
	"tableflip.dev/satchel/pkg/schedule"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Timetable renders the weekly schedule as a table, one row per interval
// and one column per day.
func (pp *PrettyPrint) Timetable(rows []schedule.Row) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "

	header := make([]interface{}, 0, schedule.DayCount+2)
	header = append(header, bold.Sprint("#"), bold.Sprint("Time"))
	for _, day := range schedule.Days {
		header = append(header, bold.Sprint(day))
	}
	tbl.AddRow(header...)

	for i, row := range rows {
		cells := make([]interface{}, 0, schedule.DayCount+2)
		cells = append(cells, i, row.Time)
		for _, cell := range row.Cells {
			cells = append(cells, cell)
		}
		tbl.AddRow(cells...)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Folder renders a folder snapshot: its subfolders then its documents.
func (pp *PrettyPrint) Folder(f remote.Folder) {
	pp.Title(f.Name)

	faint := color.New(color.Faint, color.Italic)

	if len(f.Subfolders) > 0 {
		tbl := uitable.New()
		tbl.Separator = "  "
		bold := color.New(color.Bold)
		if pp.ShowID {
			tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Folder"), bold.Sprint("Documents"))
		} else {
			tbl.AddRow(bold.Sprint("Folder"), bold.Sprint("Documents"))
		}
		for _, ref := range f.Subfolders {
			if pp.ShowID {
				tbl.AddRow(ref.ID, ref.Name, ref.DocumentCount)
			} else {
				tbl.AddRow(ref.Name, ref.DocumentCount)
			}
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}

	if len(f.Documents) == 0 && len(f.Subfolders) == 0 {
		_, _ = faint.Println(" empty")
		return
	}

	for _, doc := range f.Documents {
		pp.Document(doc)
	}
}

// Document renders one document with its description and creation time.
func (pp *PrettyPrint) Document(doc remote.Document) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	t := color.New()
	faint := color.New(color.Faint)

	if pp.ShowID {
		_, _ = y.Printf("%s  ", doc.ID)
	}
	_, _ = t.Print(strings.TrimSpace(doc.TextContent))
	if doc.Description != "" {
		_, _ = faint.Printf("  (%s)", doc.Description)
	}
	if doc.CreatedAt != "" {
		_, _ = faint.Printf("  %s", doc.CreatedAt)
	}
	fmt.Println("")
}
