package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"taskdeck/internal/config"
)

// KeyMap holds the bindings the controller dispatches on. It satisfies
// help.KeyMap so the same bindings drive the footer and the help screen.
type KeyMap struct {
	Quit        key.Binding
	New         key.Binding
	Up          key.Binding
	Down        key.Binding
	Help        key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Toggle      key.Binding
	Cancel      key.Binding
	Confirm     key.Binding
	SwitchField key.Binding
	Backspace   key.Binding
}

func NewKeyMap(k config.Keymap) KeyMap {
	return KeyMap{
		Quit:        binding(k.Quit, "quit"),
		New:         binding(k.New, "new task"),
		Up:          binding(k.Up, "up"),
		Down:        binding(k.Down, "down"),
		Help:        binding(k.Help, "help"),
		Edit:        binding(k.Edit, "edit"),
		Delete:      binding(k.Delete, "delete"),
		Toggle:      binding(k.Toggle, "cycle status"),
		Cancel:      binding(k.Cancel, "cancel"),
		Confirm:     binding(k.Confirm, "next field / save"),
		SwitchField: binding(k.SwitchField, "switch field"),
		Backspace:   binding(k.Backspace, "erase"),
	}
}

// DefaultKeyMap is the keymap built from config.Default.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpLabel(keys), desc),
	)
}

func helpLabel(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case " ":
			k = "space"
		case "up":
			k = "↑"
		case "down":
			k = "↓"
		}
		labels = append(labels, k)
	}
	return strings.Join(labels, "/")
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Toggle, k.Delete, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.New, k.Edit},
		{k.Toggle, k.Delete, k.Help, k.Quit},
		{k.SwitchField, k.Confirm, k.Backspace, k.Cancel},
	}
}

// EditHelp lists the bindings that act while a task is being edited.
func (k KeyMap) EditHelp() []key.Binding {
	return []key.Binding{k.SwitchField, k.Confirm, k.Cancel}
}
