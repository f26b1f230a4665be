package app

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"haat/browse/internal/config"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewKeyMapUsesConfiguredKeys(t *testing.T) {
	kb := config.DefaultKeyBindings()
	kb.Quit = "x"
	kb.Refresh = "F"
	km := NewKeyMap(kb)

	if !key.Matches(keyMsg("x"), km.Quit) {
		t.Error("configured quit key not matched")
	}
	if key.Matches(keyMsg("q"), km.Quit) {
		t.Error("default quit key still matched after override")
	}
	if !key.Matches(keyMsg("F"), km.Refresh) {
		t.Error("configured refresh key not matched")
	}
	// Hardwired fallbacks survive any override.
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit) {
		t.Error("ctrl+c no longer quits")
	}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	if !key.Matches(keyMsg("q"), km.Quit) {
		t.Error("q does not quit")
	}
	if !key.Matches(keyMsg("?"), km.Help) {
		t.Error("? does not open help")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, km.Back) {
		t.Error("esc does not go back")
	}
}
