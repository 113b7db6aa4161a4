// Package tui implements the interactive timetable editor.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/satchel/pkg/schedule"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	focusedStyle = lipgloss.NewStyle().Reverse(true)
	cellStyle    = lipgloss.NewStyle()
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

const (
	timeColWidth = 15
	dayColWidth  = 12
)

// Run opens the editor on the stored timetable and saves on exit.
func Run(store *schedule.Store) error {
	if store == nil {
		return errors.New("tui: no schedule store")
	}
	m := newModel(store)
	program := tea.NewProgram(m, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	state, ok := final.(model)
	if !ok {
		return fmt.Errorf("tui: unexpected model type %T", final)
	}
	return state.err
}

type model struct {
	store *schedule.Store
	rows  []schedule.Row

	// cursor column 0 is the time interval, 1..7 are the days.
	row int
	col int

	editing bool
	input   textinput.Model

	err error
}

func newModel(store *schedule.Store) model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 64

	rows := schedule.DefaultRows()
	if store != nil {
		rows = store.Load()
	}

	return model{
		store: store,
		rows:  rows,
		input: input,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateNavigation(msg)
	}
	return m, nil
}

func (m model) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.err = m.save()
		return m, tea.Quit
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < len(m.rows)-1 {
			m.row++
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
	case "right", "l":
		if m.col < schedule.DayCount {
			m.col++
		}
	case "a":
		m.rows = schedule.AddRow(m.rows)
		m.row = len(m.rows) - 1
	case "D":
		m.rows = schedule.RemoveRow(m.rows, m.row)
		if m.row >= len(m.rows) && m.row > 0 {
			m.row = len(m.rows) - 1
		}
	case "enter":
		if len(m.rows) == 0 {
			break
		}
		m.editing = true
		m.input.SetValue(m.focusedValue())
		m.input.CursorEnd()
		m.input.Focus()
	}
	return m, nil
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	case "enter":
		value := m.input.Value()
		if m.col == 0 {
			m.rows = schedule.SetInterval(m.rows, m.row, value)
		} else {
			m.rows = schedule.SetCell(m.rows, m.row, m.col-1, value)
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) focusedValue() string {
	if m.row >= len(m.rows) {
		return ""
	}
	if m.col == 0 {
		return m.rows[m.row].Time
	}
	return m.rows[m.row].Cells[m.col-1]
}

func (m model) save() error {
	if m.store == nil {
		return nil
	}
	return m.store.Save(m.rows)
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Timetable"))
	b.WriteString("\n\n")

	b.WriteString(pad("Time", timeColWidth))
	for _, day := range schedule.Days {
		b.WriteString(pad(day, dayColWidth))
	}
	b.WriteString("\n")

	for r, row := range m.rows {
		b.WriteString(m.renderCell(row.Time, timeColWidth, r, 0))
		for d, cell := range row.Cells {
			b.WriteString(m.renderCell(cell, dayColWidth, r, d+1))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.editing {
		b.WriteString(faintStyle.Render("enter save cell · esc cancel"))
	} else {
		b.WriteString(faintStyle.Render("arrows move · enter edit · a add row · D delete row · q save and quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m model) renderCell(value string, width, r, c int) string {
	focused := r == m.row && c == m.col
	if focused && m.editing {
		// The textinput renders its own cursor; do not pad through the
		// ANSI escapes it emits.
		return m.input.View() + " "
	}
	text := pad(value, width)
	if focused {
		return focusedStyle.Render(text)
	}
	return cellStyle.Render(text)
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width-1 {
		runes = append(runes[:width-2], '…')
	}
	return string(runes) + strings.Repeat(" ", width-len(runes))
}
