package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"tido/internal/query"
	"tido/internal/todo"
)

// row is one drawn task. The id is what toggle and delete act on.
type row struct {
	id        int
	text      string
	completed bool
	due       string
}

// rebuild throws away the drawn rows and recomputes them from state.
func (m *Model) rebuild() {
	visible := m.state.Visible()
	m.rows = make([]row, 0, len(visible))
	for _, t := range visible {
		m.rows = append(m.rows, newRow(t))
	}
	m.cursor = clampCursor(m.cursor, len(m.rows))
}

func newRow(t todo.Task) row {
	return row{
		id:        t.ID,
		text:      sanitize(t.Text),
		completed: t.Completed,
		due:       t.DueString(),
	}
}

// sanitize drops terminal escape sequences and control characters so task
// text cannot restyle or move the cursor.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(s))
}

func (m Model) renderTaskList() string {
	if len(m.rows) == 0 {
		if m.state.Tasks.Len() == 0 {
			return m.styles.Muted.Render(fmt.Sprintf("No tasks yet. Press '%s' to add one.", m.keys.Add.Help().Key))
		}
		return m.styles.Muted.Render("Nothing matches.")
	}
	var b strings.Builder
	for i, r := range m.rows {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = m.styles.Cursor.Render(">")
		}

		checkbox := "[ ]"
		text := m.styles.Item.Render(r.text)
		if r.completed {
			checkbox = "[x]"
			text = m.styles.Done.Render(r.text)
		}

		line := fmt.Sprintf("%s %s %s", cursor, checkbox, text)
		if r.due != "" {
			line += " " + m.styles.Due.Render("due "+r.due)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFilterBar() string {
	tabs := make([]string, 0, len(query.Filters))
	for _, f := range query.Filters {
		if f == m.state.Filter() {
			tabs = append(tabs, m.styles.ActiveTab.Render(string(f)))
			continue
		}
		tabs = append(tabs, m.styles.Tab.Render(string(f)))
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("Todo")
	meta := m.styles.Muted.Render(fmt.Sprintf("sort:%s • theme:%s • %d/%d shown",
		m.state.Sort(), m.state.Theme.Get(), len(m.rows), m.state.Tasks.Len()))
	return title + "  " + meta
}
