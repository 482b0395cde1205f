package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tido/internal/app"
	"tido/internal/config"
	"tido/internal/logging"
	"tido/internal/query"
	"tido/internal/todo"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeSearch
	modeDue
)

type Model struct {
	state  *app.State
	styles *Styles
	keys   keyMap
	help   help.Model
	logger *log.Logger

	rows   []row
	cursor int
	mode   mode
	input  textinput.Model
	search textinput.Model
	due    *dueEdit
	status string
}

// dueEdit is the pending due-date prompt for one task.
type dueEdit struct {
	taskID int
	input  textinput.Model
}

// NewModel makes styles the theme root of state and draws the first frame.
func NewModel(state *app.State, cfg config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	styles := NewStyles()
	state.Theme.SetRoot(styles)

	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 256
	ti.Width = 40

	si := textinput.New()
	si.Placeholder = "Search"
	si.Prompt = "/ "
	si.CharLimit = 128
	si.Width = 40

	m := Model{
		state:  state,
		styles: styles,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		logger: logger,
		input:  ti,
		search: si,
		mode:   modeList,
	}
	m.status = fmt.Sprintf("Press '%s' to add, %s to toggle, '%s' to delete.",
		m.keys.Add.Help().Key, m.keys.Toggle.Help().Key, m.keys.Delete.Help().Key)
	m.rebuild()
	return m
}

func Run(state *app.State, cfg config.Config, logger *log.Logger) error {
	program := tea.NewProgram(NewModel(state, cfg, logger), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg)
		case modeSearch:
			return m.updateSearchMode(msg)
		case modeDue:
			return m.updateDueMode(msg)
		}
		return m.updateListMode(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
		m.search.Width = msg.Width - 10
		if m.due != nil {
			m.due.input.Width = msg.Width - 10
		}
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		id, ok := m.state.Add(m.input.Value())
		if !ok {
			return m, nil
		}
		m.rebuild()
		m.selectTask(id)
		m.status = "Added task"
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// updateSearchMode re-filters on every keystroke. Confirm keeps the query,
// cancel clears it.
func (m Model) updateSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.search.SetValue("")
		m.state.SetSearch("")
		m.search.Blur()
		m.mode = modeList
		m.status = "Search cleared"
		m.rebuild()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.search.Blur()
		m.mode = modeList
		m.status = ""
		return m, nil
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.state.SetSearch(m.search.Value())
		m.rebuild()
		return m, cmd
	}
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.rows))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.rows))
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.status = "Add mode: type a task and press Enter"
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.status = "Search: Enter to keep, Esc to clear"
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Toggle):
		if r, ok := m.selected(); ok {
			m.state.Toggle(r.id)
			m.rebuild()
			m.status = "Toggled task"
		}
	case key.Matches(msg, m.keys.Delete):
		if r, ok := m.selected(); ok {
			m.state.Remove(r.id)
			m.rebuild()
			m.status = fmt.Sprintf("Deleted \"%s\"", r.text)
		}
	case key.Matches(msg, m.keys.NextFilter):
		m.setFilter(m.state.NextFilter())
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(query.FilterAll)
	case key.Matches(msg, m.keys.FilterOpen):
		m.setFilter(query.FilterActive)
	case key.Matches(msg, m.keys.FilterDone):
		m.setFilter(query.FilterCompleted)
	case key.Matches(msg, m.keys.CycleSort):
		k := m.state.CycleSort()
		m.logger.Debug("sort changed", "key", k)
		m.rebuild()
		m.status = "Sort: " + string(k)
	case key.Matches(msg, m.keys.Theme):
		t := m.state.Theme.Toggle()
		m.logger.Debug("theme changed", "theme", t)
		m.status = "Theme: " + string(t)
	case key.Matches(msg, m.keys.DueForward):
		m.shiftDue(1)
	case key.Matches(msg, m.keys.DueBack):
		m.shiftDue(-1)
	case key.Matches(msg, m.keys.DueClear):
		if r, ok := m.selected(); ok {
			m.state.ClearDue(r.id)
			m.rebuild()
			m.status = "Due date cleared"
		}
	case key.Matches(msg, m.keys.Edit):
		if r, ok := m.selected(); ok {
			return m.startDueEdit(r)
		}
		m.status = "No tasks to edit"
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) startDueEdit(r row) (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = "due date (YYYY-MM-DD)"
	ti.CharLimit = len(todo.DateLayout)
	ti.Width = m.input.Width
	ti.SetValue(r.due)
	m.due = &dueEdit{taskID: r.id, input: ti}
	m.mode = modeDue
	m.status = "Edit due date: Enter to save, empty clears, Esc to cancel"
	return m, m.due.input.Focus()
}

func (m Model) updateDueMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.due == nil {
		m.mode = modeList
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.due = nil
		m.mode = modeList
		m.status = "Edit cancelled"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		return m.saveDue()
	default:
		var cmd tea.Cmd
		m.due.input, cmd = m.due.input.Update(msg)
		return m, cmd
	}
}

// saveDue keeps the prompt open when the date does not parse.
func (m Model) saveDue() (tea.Model, tea.Cmd) {
	due, err := todo.ParseDate(strings.TrimSpace(m.due.input.Value()))
	if err != nil {
		m.status = fmt.Sprintf("due date invalid: %v", err)
		return m, nil
	}
	taskID := m.due.taskID
	m.state.SetDue(taskID, due)
	m.due = nil
	m.mode = modeList
	m.rebuild()
	m.selectTask(taskID)
	if due == nil {
		m.status = "Due date cleared"
	} else {
		m.status = "Due " + due.Format(todo.DateLayout)
	}
	return m, nil
}

// selectTask moves the cursor to the row for id. The cursor stays put when
// the task is not visible.
func (m *Model) selectTask(id int) {
	for i, r := range m.rows {
		if r.id == id {
			m.cursor = i
			return
		}
	}
}

func (m *Model) setFilter(f query.Filter) {
	m.state.SetFilter(f)
	m.logger.Debug("filter changed", "filter", m.state.Filter())
	m.rebuild()
	m.status = "Filter: " + string(m.state.Filter())
}

func (m *Model) shiftDue(days int) {
	r, ok := m.selected()
	if !ok {
		return
	}
	m.state.ShiftDue(r.id, days)
	m.rebuild()
	if t, ok := m.state.Tasks.Get(r.id); ok {
		m.status = "Due " + t.DueString()
	}
}

func (m Model) selected() (row, bool) {
	if len(m.rows) == 0 {
		return row{}, false
	}
	return m.rows[clampCursor(m.cursor, len(m.rows))], true
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")
	b.WriteString(m.renderTaskList())
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("Add Task: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeSearch:
		b.WriteString(m.search.View())
		b.WriteString("\n")
	case modeDue:
		if m.due != nil {
			b.WriteString("Due Date: ")
			b.WriteString(m.due.input.View())
			b.WriteString("\n")
		}
	default:
		if q := m.state.Search(); q != "" {
			b.WriteString(m.styles.Muted.Render("search: " + sanitize(q)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
