package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JawandS/WbgNews/internal/logtail"
)

// logState holds the diagnostic log tail.
type logState struct {
	lines []string
	err   error
	// follow keeps the view pinned to the newest line.
	follow bool
	loaded bool
}

type logsLoadedMsg struct {
	lines []string
	err   error
}

func loadLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return logsLoadedMsg{}
		}
		lines, err := logtail.Read(path, logTailLines)
		return logsLoadedMsg{lines: lines, err: err}
	}
}

func (m *Model) handleLogsLoaded(msg logsLoadedMsg) {
	if !m.logs.loaded {
		m.logs.follow = true
	}
	m.logs.loaded = true
	m.logs.lines = msg.lines
	m.logs.err = msg.err
	m.updateLogViewport()
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Retry):
		return m, loadLogsCmd(m.logPath)
	case key.Matches(msg, m.keys.Up):
		m.logs.follow = false
		m.logViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
		m.logs.follow = m.logViewport.AtBottom()
	case key.Matches(msg, m.keys.Top):
		m.logs.follow = false
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logs.follow = true
		m.logViewport.GotoBottom()
	case key.Matches(msg, m.keys.PageUp):
		m.logs.follow = false
		m.logViewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.logViewport.PageDown()
		m.logs.follow = m.logViewport.AtBottom()
	}
	return m, nil
}

func (m *Model) updateLogViewport() {
	styles := m.theme.Styles()

	var content string
	switch {
	case m.logs.err != nil:
		content = styles.DangerText.Render("Log unavailable: " + m.logs.err.Error())
	case strings.TrimSpace(m.logPath) == "":
		content = styles.MutedText.Render("Logging to file is disabled.")
	case len(m.logs.lines) == 0:
		content = styles.MutedText.Render("No log entries yet.")
	default:
		rendered := make([]string, 0, len(m.logs.lines))
		for _, line := range m.logs.lines {
			rendered = append(rendered, colorizeLogLine(styles, line))
		}
		content = strings.Join(rendered, "\n")
	}

	m.logViewport.SetContent(content)
	if m.logs.follow {
		m.logViewport.GotoBottom()
	}
}

// colorizeLogLine renders one slog text line as
// "15:04:05 LEVEL message key=value ...".
func colorizeLogLine(styles Styles, line string) string {
	entry := logtail.Parse(line)
	if entry.Level == "" {
		return styles.Text.Render(entry.Raw)
	}

	parts := make([]string, 0, 3+len(entry.Attrs))
	if ts := shortTime(entry.Time); ts != "" {
		parts = append(parts, styles.FaintText.Render(ts))
	}
	parts = append(parts,
		styles.LevelStyle(entry.Level).Render(padLevel(entry.Level)),
		styles.Text.Render(entry.Message))
	for _, attr := range entry.Attrs {
		parts = append(parts, styles.MutedText.Render(attr.Key+"=")+styles.AccentText.Render(attr.Value))
	}
	return strings.Join(parts, " ")
}

// shortTime keeps the clock part of an RFC 3339 timestamp.
func shortTime(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 && len(ts) >= i+9 {
		return ts[i+1 : i+9]
	}
	return ts
}

func padLevel(level string) string {
	if len(level) >= 5 {
		return level
	}
	return level + strings.Repeat(" ", 5-len(level))
}

func (m Model) renderLogsContent() string {
	if !m.logs.loaded {
		return m.renderLoading("Reading log...")
	}
	return m.logViewport.View()
}
