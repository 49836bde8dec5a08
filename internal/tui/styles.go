package tui

import (
	"github.com/charmbracelet/lipgloss"

	"mihorario/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	Title     lipgloss.Style
	DayHeader lipgloss.Style
	TimeLabel lipgloss.Style
	EmptyCell lipgloss.Style

	// Schedule list below the grid
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	ListVirtual  lipgloss.Style

	// Footer
	Status     lipgloss.Style
	StatusWarn lipgloss.Style
	Help       lipgloss.Style

	// Modal contents
	ModalTitle       lipgloss.Style
	ModalItem        lipgloss.Style
	ModalCursor      lipgloss.Style
	ModalMuted       lipgloss.Style
	ModalWarning     lipgloss.Style
	ModalInput       lipgloss.Style
	ModalPlaceholder lipgloss.Style
	ModalBox         lipgloss.Style
}

// NewStyles creates styles from a theme palette.
func NewStyles(p *theme.Palette) *Styles {
	return &Styles{
		palette: p,

		Title:     lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		DayHeader: lipgloss.NewStyle().Foreground(p.Fg).Background(p.BgHighlight).Bold(true).Align(lipgloss.Center),
		TimeLabel: lipgloss.NewStyle().Foreground(p.FgMuted),
		EmptyCell: lipgloss.NewStyle().Background(p.Bg),

		ListItem:     lipgloss.NewStyle().Foreground(p.Fg),
		ListSelected: lipgloss.NewStyle().Foreground(p.Fg).Background(p.BgSelection).Bold(true),
		ListVirtual:  lipgloss.NewStyle().Foreground(p.FgMuted).Italic(true),

		Status:     lipgloss.NewStyle().Foreground(p.Accent),
		StatusWarn: lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		Help:       lipgloss.NewStyle().Foreground(p.FgMuted),

		ModalTitle:       lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		ModalItem:        lipgloss.NewStyle().Foreground(p.Fg),
		ModalCursor:      lipgloss.NewStyle().Foreground(p.TextOnAccent).Background(p.Accent),
		ModalMuted:       lipgloss.NewStyle().Foreground(p.FgMuted),
		ModalWarning:     lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		ModalInput:       lipgloss.NewStyle().Foreground(p.Fg),
		ModalPlaceholder: lipgloss.NewStyle().Foreground(p.FgMuted),
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Background(p.BgHighlight).
			Padding(0, 1),
	}
}

// Card returns the style for a class block with the given background.
// Text color is picked for contrast against the block color.
func (s *Styles) Card(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(bg).Foreground(s.palette.TextOn(bg))
}
