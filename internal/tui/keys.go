package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the page-level bindings, active while no field is being edited.
type keyMap struct {
	Up, Down      key.Binding
	Toggle        key.Binding
	EditTitle     key.Binding
	EditContent   key.Binding
	EditPageTitle key.Binding
	Add           key.Binding
	Duplicate     key.Binding
	Delete        key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k", "ctrl+p"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j", "ctrl+n"), key.WithHelp("↓/j", "down")),
		Toggle:        key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open/select")),
		EditTitle:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit title")),
		EditContent:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "edit content")),
		EditPageTitle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "edit page title")),
		Add:           key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add section")),
		Duplicate:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "duplicate selected")),
		Delete:        key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete selected")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.EditTitle, k.Add, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.EditTitle, k.EditContent, k.EditPageTitle},
		{k.Add, k.Duplicate, k.Delete},
		{k.Help, k.Quit},
	}
}

// fieldKeyMap holds the bindings that end an inline edit.
type fieldKeyMap struct {
	Commit          key.Binding
	CommitMultiline key.Binding
	Cancel          key.Binding
	Blur            key.Binding
	External        key.Binding
}

func defaultFieldKeyMap() fieldKeyMap {
	return fieldKeyMap{
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		// Terminals rarely report ctrl+enter, so alt+enter and ctrl+s stand in for it.
		CommitMultiline: key.NewBinding(key.WithKeys("alt+enter", "ctrl+s"), key.WithHelp("alt+enter/ctrl+s", "save")),
		Cancel:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Blur:            key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "save and leave")),
		External:        key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open in $EDITOR")),
	}
}
