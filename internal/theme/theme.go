// Package theme tracks the light/dark preference, persists it in a
// key-value slot and pushes it to whatever is drawing the screen.
package theme

import (
	"io"

	"github.com/charmbracelet/log"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Key is the slot key the preference is stored under.
const Key = "theme"

func Valid(v string) bool {
	return v == string(Light) || v == string(Dark)
}

// Slot is a persistent string key-value store.
type Slot interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Root receives the active theme, e.g. the view's palette.
type Root interface {
	SetTheme(Theme)
}

type State struct {
	slot    Slot
	root    Root
	logger  *log.Logger
	current Theme
}

// New returns a State at Light. Call Init to load the stored preference.
// root and logger may be nil.
func New(slot Slot, root Root, logger *log.Logger) *State {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &State{
		slot:    slot,
		root:    root,
		logger:  logger,
		current: Light,
	}
}

// Init loads the stored preference, falling back to Light, and applies it.
func (s *State) Init() {
	stored := string(Light)
	if v, ok, err := s.slot.Get(Key); err != nil {
		s.logger.Warn("load theme", "err", err)
	} else if ok && v != "" {
		stored = v
	}
	s.Set(stored)
}

// Set ignores anything but "light" and "dark". A failed write is logged and
// the in-memory value still changes.
func (s *State) Set(v string) {
	if !Valid(v) {
		s.logger.Debug("ignoring theme", "value", v)
		return
	}
	s.current = Theme(v)
	if err := s.slot.Set(Key, v); err != nil {
		s.logger.Warn("save theme", "err", err)
	}
	if s.root != nil {
		s.root.SetTheme(s.current)
	}
}

func (s *State) Toggle() Theme {
	next := Dark
	if s.current == Dark {
		next = Light
	}
	s.Set(string(next))
	return next
}

func (s *State) Get() Theme {
	return s.current
}

// SetRoot swaps the render target and applies the current theme to it.
func (s *State) SetRoot(root Root) {
	s.root = root
	if root != nil {
		root.SetTheme(s.current)
	}
}
