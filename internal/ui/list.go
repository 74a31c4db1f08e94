package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JawandS/WbgNews/internal/format"
	"github.com/JawandS/WbgNews/internal/meeting"
	"github.com/JawandS/WbgNews/internal/render"
)

const selectionMarker = "▌ "

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleViews()

	switch {
	case key.Matches(msg, m.keys.Search):
		cmd := m.openSearch()
		return m, cmd

	case key.Matches(msg, m.keys.CycleCouncil):
		m.filter.Council = nextCouncil(m.filter.Council)
		m.resetSelection()
		return m, nil

	case key.Matches(msg, m.keys.CycleStatus):
		m.filter.Status = m.filter.Status.Next()
		m.resetSelection()
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		m.clearFilters()
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		return m.retry()

	case key.Matches(msg, m.keys.OpenDetail):
		view, ok := m.selectedView()
		if !ok {
			return m, nil
		}
		return m.openDetail(view)

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1, len(visible))
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1, len(visible))
	case key.Matches(msg, m.keys.Top):
		m.moveSelection(-len(visible), len(visible))
	case key.Matches(msg, m.keys.Bottom):
		m.moveSelection(len(visible), len(visible))
	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-m.cardsPerPage(), len(visible))
	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(m.cardsPerPage(), len(visible))
	}
	return m, nil
}

// visibleViews returns the meetings that pass the current filters.
func (m Model) visibleViews() []format.MeetingView {
	return filterViews(m.views, m.filter)
}

// selectedView returns the highlighted meeting, if any.
func (m Model) selectedView() (format.MeetingView, bool) {
	visible := m.visibleViews()
	if m.selected < 0 || m.selected >= len(visible) {
		return format.MeetingView{}, false
	}
	return visible[m.selected], true
}

// recordFor finds the list record behind a view key.
func (m Model) recordFor(meetingKey string) (meeting.Record, bool) {
	for _, r := range m.snapshot.Meetings {
		if r.Key() == meetingKey {
			return r, true
		}
	}
	return meeting.Record{}, false
}

func (m *Model) moveSelection(delta, count int) {
	if count == 0 {
		m.selected = 0
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= count {
		m.selected = count - 1
	}
	m.updateListViewport()
}

func (m *Model) resetSelection() {
	m.selected = 0
	m.listViewport.GotoTop()
	m.updateListViewport()
}

func (m *Model) clearFilters() {
	m.filter = listFilter{}
	m.search.input.SetValue("")
	m.resize()
	m.resetSelection()
}

func (m Model) cardsPerPage() int {
	if len(m.cardHeights) == 0 || m.cardHeights[0] == 0 {
		return 1
	}
	return maxInt(m.listViewport.Height/(m.cardHeights[0]+1), 1)
}

// updateListViewport re-renders the card list and keeps the selected card
// in view.
func (m *Model) updateListViewport() {
	visible := m.visibleViews()
	if m.selected >= len(visible) {
		m.selected = maxInt(len(visible)-1, 0)
	}

	m.cardOffsets = m.cardOffsets[:0:0]
	m.cardHeights = m.cardHeights[:0:0]

	var b strings.Builder
	if len(visible) == 0 {
		_ = m.cards.RenderList(&b, nil, render.Compact)
		m.listViewport.SetContent(b.String())
		return
	}

	marker := m.theme.Styles().AccentText.Render(selectionMarker)
	blank := strings.Repeat(" ", len([]rune(selectionMarker)))

	var lines []string
	for i, view := range visible {
		b.Reset()
		_ = m.cards.RenderCard(&b, view, render.Compact)
		cardLines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")

		prefix := blank
		if i == m.selected {
			prefix = marker
		}
		m.cardOffsets = append(m.cardOffsets, len(lines))
		m.cardHeights = append(m.cardHeights, len(cardLines))
		for _, line := range cardLines {
			lines = append(lines, prefix+line)
		}
		lines = append(lines, "")
	}
	m.listViewport.SetContent(strings.Join(lines, "\n"))

	start := m.cardOffsets[m.selected]
	end := start + m.cardHeights[m.selected]
	switch {
	case start < m.listViewport.YOffset:
		m.listViewport.SetYOffset(start)
	case end > m.listViewport.YOffset+m.listViewport.Height:
		m.listViewport.SetYOffset(end - m.listViewport.Height)
	}
}

// renderListContent draws the loading, error, or card region.
func (m Model) renderListContent() string {
	if m.snapshot.Loading() {
		return m.renderLoading("Loading meetings...")
	}
	if m.snapshot.LastError != nil && !m.snapshot.HasMeetings {
		var b strings.Builder
		_ = m.cards.RenderError(&b, errorMessage(m.snapshot.LastError))
		return b.String()
	}
	return m.listViewport.View()
}

func (m Model) renderLoading(message string) string {
	styles := m.theme.Styles()
	return m.spinner.View() + " " + styles.MutedText.Render(message)
}
