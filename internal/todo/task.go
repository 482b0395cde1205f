package todo

import "time"

const DateLayout = "2006-01-02"

type Task struct {
	ID        int
	Text      string
	Completed bool
	Due       *time.Time
}

func (t Task) HasDue() bool {
	return t.Due != nil
}

// DueString is the due date in DateLayout, or "" when unset.
func (t Task) DueString() string {
	if t.Due == nil {
		return ""
	}
	return t.Due.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date. Blank input yields nil.
func ParseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
