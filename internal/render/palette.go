package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/JawandS/WbgNews/internal/format"
)

// Palette holds the hex colors the terminal renderer draws with. The UI
// derives one from its active theme.
type Palette struct {
	Text    string
	Muted   string
	Border  string
	Primary string
	Success string
	Neutral string
	Warning string
	Danger  string
	Info    string
}

// DefaultPalette is used when no theme is available (the -once path).
func DefaultPalette() Palette {
	return Palette{
		Text:    "#F8F8F2",
		Muted:   "#6272A4",
		Border:  "#44475A",
		Primary: "#BD93F9",
		Success: "#50FA7B",
		Neutral: "#6272A4",
		Warning: "#FFB86C",
		Danger:  "#FF5555",
		Info:    "#8BE9FD",
	}
}

// AccentColor returns the palette color for a council accent.
func (p Palette) AccentColor(a format.Accent) lipgloss.Color {
	switch a {
	case format.AccentPrimary:
		return lipgloss.Color(p.Primary)
	case format.AccentSuccess:
		return lipgloss.Color(p.Success)
	default:
		return lipgloss.Color(p.Neutral)
	}
}

// BadgeColor returns the palette color for a status badge.
func (p Palette) BadgeColor(b format.Badge) lipgloss.Color {
	if b == format.BadgeCompleted {
		return lipgloss.Color(p.Success)
	}
	return lipgloss.Color(p.Primary)
}
