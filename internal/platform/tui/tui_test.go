package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-tiles/internal/levels"
	"github.com/vovakirdan/gravity-tiles/internal/words"
)

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testLevels(defs ...string) []levels.Level {
	out := make([]levels.Level, len(defs))
	for i, def := range defs {
		out[i] = levels.Level{
			ID:         "test-" + string(rune('1'+i)),
			Index:      i + 1,
			Definition: def,
		}
	}
	return out
}

func testDictionary() *words.Dictionary {
	return words.NewDictionary([]string{"AT", "CA", "CAT", "ACT"})
}

func newPlay(t *testing.T, opts PlayOptions, defs ...string) PlayModel {
	t.Helper()
	m, err := NewPlayModel(testLevels(defs...), 0, testDictionary(), opts)
	if err != nil {
		t.Fatalf("NewPlayModel failed: %v", err)
	}
	return m
}

// send feeds messages to a play model in order.
func send(t *testing.T, m PlayModel, msgs ...tea.Msg) PlayModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		pm, ok := next.(PlayModel)
		if !ok {
			t.Fatalf("expected PlayModel, got %T", next)
		}
		m = pm
	}
	return m
}
