package ui

import (
	"github.com/charmbracelet/lipgloss"

	"tido/internal/theme"
)

type palette struct {
	fg     lipgloss.Color
	muted  lipgloss.Color
	accent lipgloss.Color
	done   lipgloss.Color
	due    lipgloss.Color
	tabBg  lipgloss.Color
	tabFg  lipgloss.Color
}

var palettes = map[theme.Theme]palette{
	theme.Light: {
		fg:     lipgloss.Color("#1f2328"),
		muted:  lipgloss.Color("#6e7781"),
		accent: lipgloss.Color("#0969da"),
		done:   lipgloss.Color("#8c959f"),
		due:    lipgloss.Color("#9a6700"),
		tabBg:  lipgloss.Color("#0969da"),
		tabFg:  lipgloss.Color("#ffffff"),
	},
	theme.Dark: {
		fg:     lipgloss.Color("#e6edf3"),
		muted:  lipgloss.Color("#7d8590"),
		accent: lipgloss.Color("#58a6ff"),
		done:   lipgloss.Color("#484f58"),
		due:    lipgloss.Color("#d29922"),
		tabBg:  lipgloss.Color("#58a6ff"),
		tabFg:  lipgloss.Color("#0d1117"),
	},
}

// Styles is the theme root of the terminal view. theme.State pushes every
// change here and the next frame picks it up.
type Styles struct {
	theme theme.Theme

	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Item      lipgloss.Style
	Cursor    lipgloss.Style
	Done      lipgloss.Style
	Due       lipgloss.Style
	Status    lipgloss.Style
	Muted     lipgloss.Style
}

func NewStyles() *Styles {
	s := &Styles{}
	s.SetTheme(theme.Light)
	return s
}

func (s *Styles) SetTheme(t theme.Theme) {
	p, ok := palettes[t]
	if !ok {
		return
	}
	s.theme = t
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(p.accent)
	s.Tab = lipgloss.NewStyle().Padding(0, 1).Foreground(p.muted)
	s.ActiveTab = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(p.tabFg).Background(p.tabBg)
	s.Item = lipgloss.NewStyle().Foreground(p.fg)
	s.Cursor = lipgloss.NewStyle().Bold(true).Foreground(p.accent)
	s.Done = lipgloss.NewStyle().Strikethrough(true).Foreground(p.done)
	s.Due = lipgloss.NewStyle().Foreground(p.due)
	s.Status = lipgloss.NewStyle().Italic(true).Foreground(p.muted)
	s.Muted = lipgloss.NewStyle().Foreground(p.muted)
}

func (s *Styles) Theme() theme.Theme {
	return s.theme
}
