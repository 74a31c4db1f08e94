package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/JawandS/WbgNews/internal/format"
)

const defaultCardWidth = 72

// Terminal renders views as lipgloss-styled text.
type Terminal struct {
	palette  Palette
	renderer *lipgloss.Renderer
	width    int
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithProfile fixes the color profile. termenv.Ascii yields plain text.
func WithProfile(p termenv.Profile) TerminalOption {
	return func(t *Terminal) { t.renderer.SetColorProfile(p) }
}

// WithWidth sets the card width in cells.
func WithWidth(width int) TerminalOption {
	return func(t *Terminal) {
		if width > 0 {
			t.width = width
		}
	}
}

// NewTerminal builds a terminal renderer. Output colors are decided once
// here, not per writer, so the same view always renders to the same bytes.
func NewTerminal(p Palette, opts ...TerminalOption) *Terminal {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	t := &Terminal{palette: p, renderer: r, width: defaultCardWidth}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Palette returns the colors t draws with.
func (t *Terminal) Palette() Palette {
	return t.palette
}

// RenderList writes every card, separated by a blank line.
func (t *Terminal) RenderList(w io.Writer, views []format.MeetingView, v Variant) error {
	if len(views) == 0 {
		return writeString(w, t.muted().Render(EmptyListMessage)+"\n")
	}
	cards := make([]string, 0, len(views))
	for _, view := range views {
		cards = append(cards, t.card(view, v))
	}
	return writeString(w, strings.Join(cards, "\n\n")+"\n")
}

// RenderCard writes a single card.
func (t *Terminal) RenderCard(w io.Writer, view format.MeetingView, v Variant) error {
	return writeString(w, t.card(view, v)+"\n")
}

// RenderLoading writes the loading line.
func (t *Terminal) RenderLoading(w io.Writer, message string) error {
	spinner := t.style().Foreground(lipgloss.Color(t.palette.Primary)).Render("…")
	return writeString(w, spinner+" "+t.muted().Render(orDefault(message, DefaultLoadingMessage))+"\n")
}

// RenderError writes the error region with its retry affordance.
func (t *Terminal) RenderError(w io.Writer, message string) error {
	title := t.style().Foreground(lipgloss.Color(t.palette.Warning)).Bold(true).Render("⚠ Error")
	body := t.muted().Render(orDefault(message, DefaultErrorMessage))
	hint := t.style().Foreground(lipgloss.Color(t.palette.Primary)).Render("[r] Try Again")
	return writeString(w, strings.Join([]string{title, body, hint}, "\n")+"\n")
}

func (t *Terminal) card(view format.MeetingView, v Variant) string {
	if v == Detailed {
		return t.detailedCard(view)
	}
	return t.compactCard(view)
}

func (t *Terminal) compactCard(view format.MeetingView) string {
	accent := t.palette.AccentColor(view.Accent)
	icon := t.style().Foreground(accent).Render("●")
	title := t.style().Foreground(lipgloss.Color(t.palette.Text)).Bold(true).Render(view.Title)

	lines := []string{
		fmt.Sprintf("%s %s %s", icon, title, t.badge(view.Badge)),
		t.muted().Render(view.CouncilName),
		t.muted().Render(view.DisplayDate + "  " + view.DisplayTime),
	}

	var actions []string
	for _, a := range []format.Action{view.Agenda, view.Minutes} {
		if a.Enabled {
			actions = append(actions, t.link(a.Label, a.URL, accent))
		}
	}
	actions = append(actions, t.link("Details", view.DetailsPath, lipgloss.Color(t.palette.Primary)))
	lines = append(lines, strings.Join(actions, "  "))

	return t.box(lipgloss.Color(t.palette.Border)).Render(strings.Join(lines, "\n"))
}

func (t *Terminal) detailedCard(view format.MeetingView) string {
	accent := t.palette.AccentColor(view.Accent)
	title := t.style().Foreground(lipgloss.Color(t.palette.Text)).Bold(true).Render(view.Title)

	lines := []string{
		title + " " + t.badge(view.Badge),
		t.muted().Render(view.CouncilName),
	}
	if view.Type != "" {
		lines = append(lines, t.muted().Render("Type: "+view.Type))
	}
	lines = append(lines, t.muted().Render(view.DisplayLongDate+"  "+view.DisplayTime))
	if view.Location != "" {
		lines = append(lines, t.muted().Render("Location: "+view.Location))
	}
	if view.Description != "" {
		lines = append(lines, "", t.wrap(view.Description))
	}
	if view.Summary != "" {
		heading := t.style().Foreground(lipgloss.Color(t.palette.Info)).Bold(true).Render("Summary")
		lines = append(lines, "", heading, t.wrap(view.Summary))
	}

	lines = append(lines, "")
	for _, a := range []format.Action{view.Agenda, view.Minutes} {
		if a.Enabled {
			lines = append(lines, t.link(viewLabel(a), a.URL, accent))
			continue
		}
		lines = append(lines, t.style().Foreground(lipgloss.Color(t.palette.Neutral)).Faint(true).Render(missingLabel(a)))
	}
	lines = append(lines, t.link("View Details", view.DetailsPath, accent))

	return t.box(accent).Render(strings.Join(lines, "\n"))
}

func (t *Terminal) badge(b format.Badge) string {
	return t.style().
		Foreground(lipgloss.Color("#000000")).
		Background(t.palette.BadgeColor(b)).
		Padding(0, 1).
		Render(b.Label())
}

func (t *Terminal) link(label, target string, color lipgloss.Color) string {
	return t.style().Foreground(color).Underline(true).Render(label) + " " + t.muted().Render(target)
}

func (t *Terminal) wrap(s string) string {
	return t.style().Foreground(lipgloss.Color(t.palette.Text)).Width(t.width - 4).Render(s)
}

func (t *Terminal) box(border lipgloss.Color) lipgloss.Style {
	return t.style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(t.width)
}

func (t *Terminal) muted() lipgloss.Style {
	return t.style().Foreground(lipgloss.Color(t.palette.Muted))
}

func (t *Terminal) style() lipgloss.Style {
	return t.renderer.NewStyle()
}

func writeString(w io.Writer, s string) error {
	if w == nil {
		return fmt.Errorf("render: nil writer")
	}
	_, err := io.WriteString(w, s)
	return err
}
