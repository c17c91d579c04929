package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-tiles/internal/core"
	"github.com/vovakirdan/gravity-tiles/internal/solver"
)

// lookupDoneMsg reports the result of a lookup started from the prompt.
type lookupDoneMsg struct {
	word string
	err  error
}

// PromptModel asks the curator to approve or reject one word.
type PromptModel struct {
	prompt solver.Prompt
	lookup Lookup
	theme  Theme
	keys   PromptKeyMap
	help   help.Model

	decision solver.Decision
	decided  bool
	aborted  bool
	note     string
}

// NewPromptModel creates a prompt for p. lookup may be nil.
func NewPromptModel(p solver.Prompt, lookup Lookup, theme Theme) PromptModel {
	return PromptModel{
		prompt: p,
		lookup: lookup,
		theme:  theme,
		keys:   DefaultPromptKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model.
func (m PromptModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Abort):
			m.aborted = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Approve):
			m.decision = solver.Approve
			m.decided = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reject):
			m.decision = solver.Reject
			m.decided = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Lookup):
			if m.lookup == nil {
				m.note = "No lookup URL configured"
				return m, nil
			}
			m.note = "Looking up " + m.prompt.Word + "..."
			return m, lookupCmd(m.lookup, m.prompt.Word)
		}

	case lookupDoneMsg:
		if msg.err != nil {
			m.note = "Lookup failed: " + msg.err.Error()
		} else {
			m.note = "Opened a reference for " + msg.word
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func lookupCmd(lookup Lookup, word string) tea.Cmd {
	return func() tea.Msg {
		return lookupDoneMsg{word: word, err: lookup(word)}
	}
}

// Result returns the curator's decision. Quitting, or closing the prompt
// without answering, yields solver.ErrAborted.
func (m PromptModel) Result() (solver.Decision, error) {
	if m.aborted || !m.decided {
		return solver.Reject, solver.ErrAborted
	}
	return m.decision, nil
}

// View renders the prompt.
func (m PromptModel) View() string {
	if m.decided || m.aborted {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Level " + m.prompt.Level))
	b.WriteString("\n\n")

	if g := m.prompt.Board; g != nil && g.Width() > 0 {
		w, h := BoardSize(g.Width(), g.Height())
		s := core.NewScreen(w, h)
		DrawBoard(s, 0, 0, BoardView{Grid: g, Height: g.Height(), Path: m.prompt.Path})
		b.WriteString(RenderScreen(s, m.theme))
		b.WriteString("\n\n")
	}

	soFar := "(start)"
	if len(m.prompt.Context) > 0 {
		soFar = strings.Join(m.prompt.Context, " ")
	}
	b.WriteString(m.theme.Muted.Render("So far: " + soFar))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Is %s a word? ", m.theme.PromptWord.Render(m.prompt.Word)))

	if m.note != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Muted.Render(m.note))
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return m.theme.PromptBox.Render(b.String())
}

// TeaDecider asks the curator through a small Bubble Tea program per word.
type TeaDecider struct {
	Lookup Lookup
	Theme  Theme
	// ProgramOptions are passed to every prompt program (input/output in tests).
	ProgramOptions []tea.ProgramOption
}

// NewTeaDecider creates a decider with the default theme.
func NewTeaDecider(lookup Lookup) *TeaDecider {
	return &TeaDecider{Lookup: lookup, Theme: DefaultTheme()}
}

// Decide implements solver.Decider.
func (d *TeaDecider) Decide(ctx context.Context, p solver.Prompt) (solver.Decision, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, d.ProgramOptions...)
	final, err := tea.NewProgram(NewPromptModel(p, d.Lookup, d.Theme), opts...).Run()
	if err != nil {
		return solver.Reject, fmt.Errorf("prompt: %w", err)
	}

	m, ok := final.(PromptModel)
	if !ok {
		return solver.Reject, fmt.Errorf("prompt: unexpected model %T", final)
	}
	return m.Result()
}
