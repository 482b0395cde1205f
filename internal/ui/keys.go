package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tido/internal/config"
)

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Add        key.Binding
	Toggle     key.Binding
	Delete     key.Binding
	Search     key.Binding
	NextFilter key.Binding
	FilterAll  key.Binding
	FilterOpen key.Binding
	FilterDone key.Binding
	CycleSort  key.Binding
	Theme      key.Binding
	DueForward key.Binding
	DueBack    key.Binding
	DueClear   key.Binding
	Edit       key.Binding
	Help       key.Binding
	Quit       key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Up:         binding("move up", k.Up, "up"),
		Down:       binding("move down", k.Down, "down"),
		Add:        binding("add", k.Add),
		Toggle:     binding("toggle", k.Toggle),
		Delete:     binding("delete", k.Delete),
		Search:     binding("search", k.Search),
		NextFilter: binding("next filter", k.NextFilter),
		FilterAll:  binding("all", k.FilterAll),
		FilterOpen: binding("active", k.FilterOpen),
		FilterDone: binding("completed", k.FilterDone),
		CycleSort:  binding("sort", k.CycleSort),
		Theme:      binding("theme", k.Theme),
		DueForward: binding("due +1d", k.DueForward),
		DueBack:    binding("due -1d", k.DueBack),
		DueClear:   binding("clear due", k.DueClear),
		Edit:       binding("set due", k.Edit),
		Help:       binding("help", k.ToggleHelp),
		Quit:       binding("quit", k.Quit, "ctrl+c"),
		Confirm:    binding("confirm", k.Confirm),
		Cancel:     binding("cancel", k.Cancel),
	}
}

// binding shows the first key in help; the rest are aliases.
func binding(desc string, keys ...string) key.Binding {
	label := keys[0]
	if label == " " {
		label = "space"
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Search, k.NextFilter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Toggle, k.Delete},
		{k.Search, k.NextFilter, k.FilterAll, k.FilterOpen, k.FilterDone},
		{k.CycleSort, k.Theme, k.Edit, k.DueForward, k.DueBack, k.DueClear},
		{k.Help, k.Quit},
	}
}
