package tui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravity-tiles/internal/core"
	"github.com/vovakirdan/gravity-tiles/internal/levels"
	"github.com/vovakirdan/gravity-tiles/internal/puzzle"
)

// ClearEvent is reported when a player clears a level.
type ClearEvent struct {
	LevelID string
	Player  string
	Words   []string
	Undos   int
}

// PlayOptions configure a play session.
type PlayOptions struct {
	Player    string // recorded with clears; "local" when empty
	ShowHints bool
	OnClear   func(ClearEvent)
	Theme     *Theme // nil = DefaultTheme
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// PlayModel is the Bubble Tea model for playing levels.
type PlayModel struct {
	levels []levels.Level
	index  int
	oracle puzzle.Oracle
	opts   PlayOptions
	theme  Theme

	grid   *puzzle.Grid
	rows   int // board height, fixed at the level's starting height
	cursor puzzle.Coord
	path   puzzle.Path
	played []string
	undos  int

	status     string
	statusKind statusKind
	statusSeq  int
	showHints  bool

	screen    *core.Screen
	keys      PlayKeyMap
	keyMapper *KeyMapper
	help      help.Model
	width     int
	quitting  bool
}

// NewPlayModel creates a play model starting at lvls[start].
func NewPlayModel(lvls []levels.Level, start int, oracle puzzle.Oracle, opts PlayOptions) (PlayModel, error) {
	if len(lvls) == 0 {
		return PlayModel{}, errors.New("no levels to play")
	}
	if start < 0 || start >= len(lvls) {
		return PlayModel{}, fmt.Errorf("level index %d out of range", start)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	keys := DefaultPlayKeyMap()
	m := PlayModel{
		levels:    lvls,
		oracle:    oracle,
		opts:      opts,
		theme:     theme,
		showHints: opts.ShowHints,
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      help.New(),
	}

	if err := m.load(start); err != nil {
		return PlayModel{}, err
	}
	return m, nil
}

// load resets the model to the start of level i.
func (m *PlayModel) load(i int) error {
	g, err := m.levels[i].Grid()
	if err != nil {
		return err
	}

	m.index = i
	m.grid = g
	m.rows = g.Height()
	m.cursor = puzzle.C(0, m.rows-1)
	m.path = nil
	m.played = nil
	m.undos = 0
	m.status = ""

	w, h := playScreenSize(g.Width(), m.rows)
	if m.screen == nil {
		m.screen = core.NewScreen(w, h)
	} else {
		m.screen.Resize(w, h)
	}
	return nil
}

// captionWidth is the minimum screen width, so short words fit under
// narrow boards.
const captionWidth = 16

// playScreenSize returns the screen size for a board plus a caption row.
func playScreenSize(cols, rows int) (int, int) {
	w, h := BoardSize(cols, rows)
	return max(w, captionWidth), h + 2
}

// Init initializes the model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dc, dr := action.Delta()
		m.cursor = puzzle.C(
			core.Clamp(m.cursor.Col+dc, 0, m.grid.Width()-1),
			core.Clamp(m.cursor.Row+dr, 0, max(m.rows-1, 0)),
		)
		return m, nil

	case core.ActionSelect:
		return m.toggle()

	case core.ActionSubmit:
		return m.submit()

	case core.ActionUndo:
		if !m.grid.Undo() {
			return m.setStatus(statusError, "Nothing to undo")
		}
		word := m.played[len(m.played)-1]
		m.played = m.played[:len(m.played)-1]
		m.undos++
		m.path = nil
		return m.setStatus(statusInfo, "Took back "+word)

	case core.ActionClear:
		m.path = nil
		return m, nil

	case core.ActionNext:
		return m.next()

	case core.ActionHint:
		m.showHints = !m.showHints
		return m, nil
	}

	return m, nil
}

// toggle extends the path with the tile under the cursor, or shrinks the
// path back to just before it when the tile is already selected.
func (m PlayModel) toggle() (tea.Model, tea.Cmd) {
	c := m.cursor
	if i := slices.Index(m.path, c); i >= 0 {
		m.path = m.path[:i]
		return m, nil
	}

	if !m.grid.Occupied(c) {
		return m.setStatus(statusError, "That cell is empty")
	}
	if len(m.path) > 0 && !m.path.Last().Adjacent(c) {
		return m.setStatus(statusError, "Tiles must touch the last one selected")
	}

	m.path = m.path.Extend(c)
	return m, nil
}

// submit plays the selected path if it spells a word.
func (m PlayModel) submit() (tea.Model, tea.Cmd) {
	if len(m.path) == 0 {
		return m.setStatus(statusError, "Select some tiles first")
	}

	word, err := m.grid.WordAt(m.path)
	if err != nil {
		m.path = nil
		return m.setStatus(statusError, err.Error())
	}
	if !m.oracle.IsWord(word) {
		return m.setStatus(statusError, word+" is not a word")
	}
	if err := m.grid.ApplyMove(m.path); err != nil {
		m.path = nil
		return m.setStatus(statusError, err.Error())
	}

	m.played = append(m.played, word)
	m.path = nil

	if m.grid.IsCleared() {
		if m.opts.OnClear != nil {
			m.opts.OnClear(ClearEvent{
				LevelID: m.levels[m.index].ID,
				Player:  m.opts.Player,
				Words:   slices.Clone(m.played),
				Undos:   m.undos,
			})
		}
		return m.setStatus(statusSuccess,
			fmt.Sprintf("Level cleared in %d words! Press n for the next level", len(m.played)))
	}
	return m.setStatus(statusSuccess, word+"!")
}

// next advances to the following level once the current one is cleared.
func (m PlayModel) next() (tea.Model, tea.Cmd) {
	if !m.grid.IsCleared() {
		return m.setStatus(statusError, "Clear the level first")
	}
	if m.index+1 >= len(m.levels) {
		return m.setStatus(statusSuccess, "That was the last level")
	}
	if err := m.load(m.index + 1); err != nil {
		return m.setStatus(statusError, err.Error())
	}
	return m, nil
}

func (m PlayModel) setStatus(kind statusKind, text string) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusKind = kind
	m.statusSeq++
	return m, expireStatusCmd(m.statusSeq)
}

// View renders the play screen.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	lvl := m.levels[m.index]
	b.WriteString(m.theme.Title.Render(fmt.Sprintf("Level %d/%d  %s", m.index+1, len(m.levels), lvl.Title())))
	b.WriteString("\n\n")

	m.drawScreen()
	b.WriteString(RenderScreen(m.screen, m.theme))
	b.WriteString("\n\n")

	played := "-"
	if len(m.played) > 0 {
		played = strings.Join(m.played, " ")
	}
	b.WriteString(m.theme.Muted.Render("Played:   " + played))
	b.WriteString("\n")

	if m.showHints {
		b.WriteString(m.theme.Muted.Render(m.hint()))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// drawScreen paints the board centered above the selected word.
func (m PlayModel) drawScreen() {
	s := m.screen
	s.Clear()

	bw, bh := BoardSize(m.grid.Width(), m.rows)
	r := core.NewRect(0, 0, s.Width(), bh).Centered(bw, bh)
	DrawBoard(s, r.X, r.Y, BoardView{
		Grid:       m.grid,
		Height:     m.rows,
		Cursor:     m.cursor,
		Path:       m.path,
		ShowCursor: true,
	})

	if len(m.path) == 0 {
		s.DrawTextCentered(r.Bottom()+1, "select tiles", core.ColorMuted)
		return
	}
	if w, err := m.grid.WordAt(m.path); err == nil {
		s.DrawTextCentered(r.Bottom()+1, w, core.ColorSelected)
	}
}

func (m PlayModel) renderStatus() string {
	switch m.statusKind {
	case statusSuccess:
		return m.theme.Success.Render(m.status)
	case statusError:
		return m.theme.Error.Render(m.status)
	default:
		return m.status
	}
}

// hint describes the moves available on the current grid.
func (m PlayModel) hint() string {
	if m.grid.IsCleared() {
		return "Hint: nothing left to find"
	}
	moves := puzzle.AllMoves(m.grid, m.oracle)
	if len(moves) == 0 {
		return "Hint: no words left, press u to undo"
	}
	word, _ := m.grid.WordAt(moves[0])
	return fmt.Sprintf("Hint: %d moves, one starts with %c", len(moves), []rune(word)[0])
}

// Level returns the level being played.
func (m PlayModel) Level() levels.Level {
	return m.levels[m.index]
}

// Grid returns the live grid.
func (m PlayModel) Grid() *puzzle.Grid {
	return m.grid
}

// Cursor returns the cursor position.
func (m PlayModel) Cursor() puzzle.Coord {
	return m.cursor
}

// Path returns a copy of the current selection.
func (m PlayModel) Path() puzzle.Path {
	return m.path.Clone()
}

// Played returns the words played on this level so far.
func (m PlayModel) Played() []string {
	return slices.Clone(m.played)
}

// Status returns the current status line text.
func (m PlayModel) Status() string {
	return m.status
}

// IsQuitting returns true if the player asked to quit.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// RunPlay runs play mode in the local terminal.
func RunPlay(lvls []levels.Level, start int, oracle puzzle.Oracle, opts PlayOptions) error {
	model, err := NewPlayModel(lvls, start, oracle, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
