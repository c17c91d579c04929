package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravity-tiles/internal/core"
)

// Theme contains all configurable visual styles for the board and prompts.
type Theme struct {
	// Board cells
	Tile         lipgloss.Style
	Selected     lipgloss.Style
	Cursor       lipgloss.Style
	CursorOnPath lipgloss.Style
	Frame        lipgloss.Style

	// Text
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style

	// Curation prompt
	PromptBox  lipgloss.Style
	PromptWord lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Tile:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("226")).Bold(true),
		Cursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		CursorOnPath: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("208")).Bold(true),
		Frame:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		PromptBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		PromptWord: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}

// MonochromeTheme returns a theme that relies on bold and reverse video only.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Tile = lipgloss.NewStyle().Bold(true)
	theme.Selected = lipgloss.NewStyle().Reverse(true)
	theme.Cursor = lipgloss.NewStyle().Underline(true).Bold(true)
	theme.CursorOnPath = lipgloss.NewStyle().Reverse(true).Underline(true)
	theme.Success = lipgloss.NewStyle().Bold(true)
	theme.Error = lipgloss.NewStyle().Italic(true)
	return theme
}

// Style maps a screen color to its style.
func (t Theme) Style(c core.Color) lipgloss.Style {
	switch c {
	case core.ColorTile:
		return t.Tile
	case core.ColorSelected:
		return t.Selected
	case core.ColorCursor:
		return t.Cursor
	case core.ColorCursorOnPath:
		return t.CursorOnPath
	case core.ColorFrame:
		return t.Frame
	case core.ColorMuted:
		return t.Muted
	case core.ColorTitle:
		return t.Title
	case core.ColorSuccess:
		return t.Success
	case core.ColorError:
		return t.Error
	default:
		return lipgloss.NewStyle()
	}
}
