package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-tiles/internal/core"
)

// PlayKeyMap defines key bindings for play mode.
type PlayKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Submit key.Binding
	Undo   key.Binding
	Clear  key.Binding
	Next   key.Binding
	Hint   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Submit, k.Undo, k.Clear, k.Next, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Submit, k.Clear},
		{k.Undo, k.Next, k.Hint, k.Quit},
	}
}

// DefaultPlayKeyMap returns the default play bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play word"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next level"),
		),
		Hint: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "hint"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to play actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings []binding
}

type binding struct {
	key    key.Binding
	action core.Action
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys PlayKeyMap) *KeyMapper {
	return &KeyMapper{
		bindings: []binding{
			{keys.Quit, core.ActionQuit},
			{keys.Up, core.ActionUp},
			{keys.Down, core.ActionDown},
			{keys.Left, core.ActionLeft},
			{keys.Right, core.ActionRight},
			{keys.Select, core.ActionSelect},
			{keys.Submit, core.ActionSubmit},
			{keys.Undo, core.ActionUndo},
			{keys.Clear, core.ActionClear},
			{keys.Next, core.ActionNext},
			{keys.Hint, core.ActionHint},
		},
	}
}

// MapKey translates a key message to an action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	for _, b := range km.bindings {
		if key.Matches(msg, b.key) {
			return b.action
		}
	}
	return core.ActionNone
}

// PromptKeyMap defines key bindings for the curation prompt.
type PromptKeyMap struct {
	Approve key.Binding
	Reject  key.Binding
	Lookup  key.Binding
	Abort   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k PromptKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Approve, k.Reject, k.Lookup, k.Abort}
}

// FullHelp returns keybindings for the expanded help view.
func (k PromptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultPromptKeyMap returns the default prompt bindings.
func DefaultPromptKeyMap() PromptKeyMap {
	return PromptKeyMap{
		Approve: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "approve"),
		),
		Reject: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "reject"),
		),
		Lookup: key.NewBinding(
			key.WithKeys("l", "L"),
			key.WithHelp("l", "look up"),
		),
		Abort: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "abort run"),
		),
	}
}

// HistoryKeyMap defines key bindings for the solutions browser.
type HistoryKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevLevel, k.NextLevel, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevLevel, k.NextLevel},
		{k.Quit},
	}
}

// DefaultHistoryKeyMap returns the default solutions browser bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/S-tab", "prev level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
