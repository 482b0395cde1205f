package todo

import (
	"slices"
	"strings"
	"time"
)

// Store holds tasks in creation order. Every mutation tolerates bad input
// by doing nothing.
type Store struct {
	tasks  []Task
	nextID int
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

// Add appends a new incomplete task and returns it. Text that is blank
// after trimming is ignored and ok is false.
func (s *Store) Add(text string) (Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}
	t := Task{
		ID:   s.nextID,
		Text: text,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, true
}

func (s *Store) Toggle(id int) {
	if i := s.index(id); i >= 0 {
		s.tasks[i].Completed = !s.tasks[i].Completed
	}
}

func (s *Store) Remove(id int) {
	s.tasks = slices.DeleteFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

func (s *Store) SetDue(id int, due time.Time) {
	if i := s.index(id); i >= 0 {
		s.tasks[i].Due = &due
	}
}

func (s *Store) ClearDue(id int) {
	if i := s.index(id); i >= 0 {
		s.tasks[i].Due = nil
	}
}

// ShiftDue moves the due date by days. A task without a due date starts
// counting from today.
func (s *Store) ShiftDue(id, days int, today time.Time) {
	i := s.index(id)
	if i < 0 {
		return
	}
	base := today
	if s.tasks[i].Due != nil {
		base = *s.tasks[i].Due
	}
	y, m, d := base.Date()
	next := time.Date(y, m, d+days, 0, 0, 0, 0, time.UTC)
	s.tasks[i].Due = &next
}

func (s *Store) Get(id int) (Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

// Tasks returns a copy of the collection in insertion order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}
