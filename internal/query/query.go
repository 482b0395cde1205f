// Package query narrows and orders task lists for display. Every function
// returns a new slice and leaves its input untouched.
package query

import (
	"slices"
	"strings"
	"time"

	"tido/internal/todo"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter maps unrecognised values to FilterAll.
func ParseFilter(v string) Filter {
	switch f := Filter(strings.ToLower(strings.TrimSpace(v))); f {
	case FilterActive, FilterCompleted:
		return f
	default:
		return FilterAll
	}
}

type SortKey string

const (
	SortCreated   SortKey = "created"
	SortCompleted SortKey = "completed"
	SortDueDate   SortKey = "dueDate"
)

var SortKeys = []SortKey{SortCreated, SortCompleted, SortDueDate}

// ParseSortKey maps unrecognised values to SortCreated. Matching ignores case
// so that "duedate" from a config file works.
func ParseSortKey(v string) SortKey {
	for _, k := range SortKeys {
		if strings.EqualFold(strings.TrimSpace(v), string(k)) {
			return k
		}
	}
	return SortCreated
}

// NextSortKey cycles created -> completed -> dueDate -> created.
func NextSortKey(k SortKey) SortKey {
	i := slices.Index(SortKeys, k)
	return SortKeys[(i+1)%len(SortKeys)]
}

// farFuture stands in for a missing due date so undated tasks sort last.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

func FilterByStatus(tasks []todo.Task, f Filter) []todo.Task {
	switch f {
	case FilterActive:
		return keep(tasks, func(t todo.Task) bool { return !t.Completed })
	case FilterCompleted:
		return keep(tasks, func(t todo.Task) bool { return t.Completed })
	default:
		return slices.Clone(tasks)
	}
}

// FilterBySearch keeps tasks whose text contains q, ignoring case. An empty
// query keeps everything.
func FilterBySearch(tasks []todo.Task, q string) []todo.Task {
	q = strings.ToLower(q)
	if q == "" {
		return slices.Clone(tasks)
	}
	return keep(tasks, func(t todo.Task) bool {
		return strings.Contains(strings.ToLower(t.Text), q)
	})
}

// Sort orders a copy of tasks by key. SortCreated and unknown keys keep the
// order the caller passed in; they do not re-sort by ID.
func Sort(tasks []todo.Task, key SortKey) []todo.Task {
	sorted := slices.Clone(tasks)
	switch key {
	case SortCompleted:
		slices.SortStableFunc(sorted, func(a, b todo.Task) int {
			return rank(a.Completed) - rank(b.Completed)
		})
	case SortDueDate:
		slices.SortStableFunc(sorted, func(a, b todo.Task) int {
			return dueOrMax(a).Compare(dueOrMax(b))
		})
	}
	return sorted
}

// Visible applies status filter, then search, then sort.
func Visible(tasks []todo.Task, f Filter, search string, key SortKey) []todo.Task {
	return Sort(FilterBySearch(FilterByStatus(tasks, f), search), key)
}

func keep(tasks []todo.Task, pred func(todo.Task) bool) []todo.Task {
	out := make([]todo.Task, 0, len(tasks))
	for _, t := range tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

func rank(done bool) int {
	if done {
		return 1
	}
	return 0
}

func dueOrMax(t todo.Task) time.Time {
	if t.Due == nil {
		return farFuture
	}
	return *t.Due
}
