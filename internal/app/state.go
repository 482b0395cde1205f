// Package app holds everything the view needs in one place: the tasks and
// the filter, search, sort and theme selections.
package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"tido/internal/logging"
	"tido/internal/query"
	"tido/internal/theme"
	"tido/internal/todo"
)

type State struct {
	Tasks  *todo.Store
	Theme  *theme.State
	logger *log.Logger

	filter query.Filter
	search string
	sort   query.SortKey
	now    func() time.Time
}

type Options struct {
	Filter query.Filter
	Sort   query.SortKey
	Logger *log.Logger
	Now    func() time.Time
}

func New(th *theme.State, opts Options) *State {
	s := &State{
		Tasks:  todo.NewStore(),
		Theme:  th,
		logger: opts.Logger,
		filter: query.ParseFilter(string(opts.Filter)),
		sort:   query.ParseSortKey(string(opts.Sort)),
		now:    opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	return s
}

// Add returns the new task's id. ok is false when text is blank.
func (s *State) Add(text string) (id int, ok bool) {
	t, ok := s.Tasks.Add(text)
	if !ok {
		return 0, false
	}
	s.logger.Debug("added task", "id", t.ID)
	return t.ID, true
}

func (s *State) Toggle(id int) {
	s.Tasks.Toggle(id)
}

func (s *State) Remove(id int) {
	s.Tasks.Remove(id)
	s.logger.Debug("removed task", "id", id)
}

func (s *State) ShiftDue(id, days int) {
	s.Tasks.ShiftDue(id, days, s.now())
}

func (s *State) ClearDue(id int) {
	s.Tasks.ClearDue(id)
}

// SetDue sets the due date, or clears it when due is nil.
func (s *State) SetDue(id int, due *time.Time) {
	if due == nil {
		s.Tasks.ClearDue(id)
		return
	}
	s.Tasks.SetDue(id, *due)
}

func (s *State) Filter() query.Filter {
	return s.filter
}

// SetFilter accepts any string; unknown values select all tasks.
func (s *State) SetFilter(f query.Filter) {
	s.filter = query.ParseFilter(string(f))
}

// NextFilter cycles all -> active -> completed.
func (s *State) NextFilter() query.Filter {
	for i, f := range query.Filters {
		if f == s.filter {
			s.filter = query.Filters[(i+1)%len(query.Filters)]
			return s.filter
		}
	}
	s.filter = query.FilterAll
	return s.filter
}

func (s *State) Search() string {
	return s.search
}

// SetSearch stores the query lower-cased.
func (s *State) SetSearch(q string) {
	s.search = strings.ToLower(q)
}

func (s *State) Sort() query.SortKey {
	return s.sort
}

func (s *State) SetSort(k query.SortKey) {
	s.sort = query.ParseSortKey(string(k))
}

func (s *State) CycleSort() query.SortKey {
	s.sort = query.NextSortKey(s.sort)
	return s.sort
}

// Visible is the list as it should be drawn right now.
func (s *State) Visible() []todo.Task {
	return query.Visible(s.Tasks.Tasks(), s.filter, s.search, s.sort)
}
