package app

import (
	"github.com/charmbracelet/bubbles/key"

	"haat/browse/internal/config"
)

// KeyMap defines the global keybindings used across the application.
// Everything screen-specific (scrolling, tab strips, search) lives in the
// views; only keys that must work everywhere are global.
type KeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Refresh key.Binding
	Back    key.Binding
}

// NewKeyMap builds the global bindings from the configured keys. ctrl+c
// and ctrl+r stay hardwired alongside whatever the user picked.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys(kb.Quit, "ctrl+c"), key.WithHelp(kb.Quit, "quit")),
		Help:    key.NewBinding(key.WithKeys(kb.Help), key.WithHelp(kb.Help, "help")),
		Refresh: key.NewBinding(key.WithKeys(kb.Refresh, "ctrl+r"), key.WithHelp(kb.Refresh, "refresh")),
		Back:    key.NewBinding(key.WithKeys(kb.Back), key.WithHelp(kb.Back, "back")),
	}
}

// DefaultKeyMap returns the bindings used when nothing is configured.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeyBindings())
}
