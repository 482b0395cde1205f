// Package themetest provides an in-memory theme.Slot for tests.
package themetest

type Slot struct {
	values map[string]string
}

func NewSlot() *Slot {
	return &Slot{values: map[string]string{}}
}

func (s *Slot) Get(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Slot) Set(key, value string) error {
	s.values[key] = value
	return nil
}
