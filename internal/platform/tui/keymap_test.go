package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-tiles/internal/core"
)

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultPlayKeyMap())

	testCases := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", keyUp, core.ActionUp},
		{"vim down", runeKey('j'), core.ActionDown},
		{"arrow left", keyLeft, core.ActionLeft},
		{"vim right", runeKey('l'), core.ActionRight},
		{"space", keySpace, core.ActionSelect},
		{"enter", keyEnter, core.ActionSubmit},
		{"undo", runeKey('u'), core.ActionUndo},
		{"escape", keyEsc, core.ActionClear},
		{"next", runeKey('n'), core.ActionNext},
		{"hint", runeKey('?'), core.ActionHint},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestHelpBindingsHaveText(t *testing.T) {
	for _, b := range DefaultPlayKeyMap().ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
	for _, b := range DefaultPromptKeyMap().ShortHelp() {
		if b.Help().Key == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
}
