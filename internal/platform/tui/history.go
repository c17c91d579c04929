package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravity-tiles/internal/levels"
	"github.com/vovakirdan/gravity-tiles/internal/storage"
)

// Solutions browser layout constants
const (
	historyMinHeight = 5   // Minimum table height
	wordsMinWidth    = 20  // Minimum width of the words column
	maxSolutions     = 200 // Max solutions to load per level
)

// SolutionSource is the part of the run history the browser reads.
type SolutionSource interface {
	Solutions(levelID string, limit int) ([]storage.Solution, error)
	GetLevelStats(levelID string) (*storage.LevelStats, error)
}

// HistoryModel is the Bubble Tea model for browsing recorded solutions.
type HistoryModel struct {
	levels    []levels.Level
	cursor    int
	source    SolutionSource
	solutions []storage.Solution
	stats     *storage.LevelStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	theme     Theme
	width     int
	height    int
	quitting  bool
}

// NewHistoryModel creates a browser starting at lvls[start].
func NewHistoryModel(source SolutionSource, lvls []levels.Level, start, width, height int) HistoryModel {
	m := HistoryModel{
		levels: lvls,
		cursor: start,
		source: source,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		theme:  DefaultTheme(),
		width:  width,
		height: height,
	}
	if m.cursor < 0 || m.cursor >= len(lvls) {
		m.cursor = 0
	}

	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a table sized to the current window.
func (m *HistoryModel) createTable() table.Model {
	wordsWidth := max(m.width-4-6-8-14-8, wordsMinWidth)
	columns := []table.Column{
		{Title: "#", Width: 6},
		{Title: "Words", Width: wordsWidth},
		{Title: "Moves", Width: 8},
		{Title: "Found", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, historyMinHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the solutions and stats of the selected level.
func (m *HistoryModel) load() {
	m.solutions, m.stats, m.loadErr = nil, nil, nil
	if m.source == nil || len(m.levels) == 0 {
		m.updateTableRows()
		return
	}

	id := m.levels[m.cursor].ID
	m.solutions, m.loadErr = m.source.Solutions(id, maxSolutions)
	if m.loadErr == nil {
		m.stats, m.loadErr = m.source.GetLevelStats(id)
	}
	m.updateTableRows()
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.solutions))
	for i, s := range m.solutions {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			strings.Join(s.Words, " "),
			fmt.Sprintf("%d", len(s.Words)),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + 1) % len(m.levels)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor - 1 + len(m.levels)) % len(m.levels)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "SOLUTIONS"
	if len(m.levels) > 0 {
		lvl := m.levels[m.cursor]
		title = fmt.Sprintf("SOLUTIONS - %s (%d/%d)", lvl.Title(), m.cursor+1, len(m.levels))
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render(m.summary()))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(box.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// summary describes the level's history in one line.
func (m HistoryModel) summary() string {
	if m.stats == nil {
		return ""
	}
	shortest := "-"
	if m.stats.Shortest > 0 {
		shortest = fmt.Sprintf("%d words", m.stats.Shortest)
	}
	return fmt.Sprintf("runs: %d  solutions: %d  shortest: %s  player clears: %d",
		m.stats.Runs, m.stats.Solutions, shortest, m.stats.Clears)
}

func (m HistoryModel) renderTableContent() string {
	if m.loadErr != nil {
		return m.theme.Error.Render("Cannot load solutions: " + m.loadErr.Error())
	}
	if len(m.solutions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No solutions recorded yet.\nRun `gravtiles solve` on this level first.")
	}

	return m.table.View()
}

// Level returns the level being shown.
func (m HistoryModel) Level() levels.Level {
	return m.levels[m.cursor]
}

// Solutions returns the loaded solutions of the current level.
func (m HistoryModel) Solutions() []storage.Solution {
	return m.solutions
}

// RunHistory runs the solutions browser in the local terminal.
func RunHistory(source SolutionSource, lvls []levels.Level, start, width, height int) error {
	model := NewHistoryModel(source, lvls, start, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
