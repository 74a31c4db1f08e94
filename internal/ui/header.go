package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain stacks header, command bar, search line, content and the
// status line.
func (m Model) renderMain() string {
	parts := []string{m.renderHeader(), m.renderCommandBar()}
	if m.currentView == ViewList && m.searchLineVisible() {
		parts = append(parts, m.renderSearchLine())
	}

	var content string
	switch m.currentView {
	case ViewDetail:
		content = m.renderDetailContent()
	case ViewLogs:
		content = m.renderLogsContent()
	default:
		content = m.renderListContent()
	}
	content = lipgloss.NewStyle().
		Width(m.width).
		Height(m.contentHeight()).
		MaxHeight(m.contentHeight()).
		Render(content)

	parts = append(parts, content, m.renderStatusLine())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader renders the title bar with data freshness and filters.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("wbgnews", styles.Logo)}

	snap := m.snapshot
	switch {
	case snap.Loading():
		parts = append(parts, bg.Render("Connecting...", styles.WarningText))
	case snap.IsOffline():
		parts = append(parts, bg.Render("OFFLINE", styles.DangerText))
	case snap.LastError != nil:
		parts = append(parts, bg.Render(strings.ToUpper(errorMessage(snap.LastError)), styles.DangerText))
	default:
		parts = append(parts, bg.Render(fmt.Sprintf("%d meetings", len(snap.Meetings)), styles.Text))
	}

	if snap.HasHealth && !snap.Health.Healthy() {
		parts = append(parts, bg.Render("API "+snap.Health.Status, styles.WarningText))
	}

	if m.currentView == ViewList {
		visible := len(m.visibleViews())
		parts = append(parts,
			bg.Render("Council", styles.FaintText)+bg.Space()+
				bg.Render(councilFilterLabel(m.filter.Council), styles.AccentText),
			bg.Render("Status", styles.FaintText)+bg.Space()+
				bg.Render(m.filter.Status.Label(), styles.AccentText))
		if m.filter.active() {
			parts = append(parts, bg.Render(fmt.Sprintf("%d shown", visible), styles.MutedText))
		}
	}

	if !snap.LastUpdated.IsZero() {
		parts = append(parts, bg.Render("updated "+snap.LastUpdated.Format("15:04:05"), styles.MutedText))
	}
	if m.refreshing {
		parts = append(parts, bg.Render("refreshing", styles.InfoText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderCommandBar renders the key hints for the active view.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	type cmd struct{ key, desc string }
	var commands []cmd
	switch m.currentView {
	case ViewDetail:
		commands = []cmd{{"esc", "Back"}, {"j/k", "Scroll"}}
		if m.detail.err != nil {
			commands = append(commands, cmd{"r", "Try again"})
		}
	case ViewLogs:
		commands = []cmd{{"esc", "Back"}, {"j/k", "Scroll"}, {"G", "Follow"}, {"r", "Reload"}}
	default:
		if m.search.active {
			commands = []cmd{{"enter", "Apply"}, {"esc", "Cancel"}}
		} else {
			commands = []cmd{
				{"enter", "Details"},
				{"/", "Search"},
				{"c", "Council"},
				{"s", "Status"},
				{"r", "Refresh"},
				{"L", "Log"},
			}
		}
	}
	commands = append(commands, cmd{"T", "Theme"}, cmd{"?", "Help"}, cmd{"q", "Quit"})

	parts := make([]string, 0, len(commands))
	for _, c := range commands {
		parts = append(parts,
			bg.Render("<"+c.key+">", styles.WarningText)+bg.Space()+
				bg.Render(c.desc, styles.MutedText))
	}
	return styles.Header.Width(m.width).Render(bg.Join(parts, bg.Spaces(2)))
}

// renderStatusLine shows the newest notification, falling back to the
// stored fetch error when meetings are still on screen.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	line := m.renderNotification(styles, bg)
	if line == "" && m.snapshot.HasMeetings && m.snapshot.LastError != nil {
		line = bg.Render(errorMessage(m.snapshot.LastError)+", showing cached meetings", styles.WarningText)
	}
	if line == "" && m.logPath != "" {
		line = bg.Render("log "+truncateMiddle(m.logPath, maxInt(m.width-8, 10)), styles.FaintText)
	}
	return bg.FillLine(line, m.width)
}
