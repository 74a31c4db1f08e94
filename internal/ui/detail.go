package ui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JawandS/WbgNews/internal/api"
	"github.com/JawandS/WbgNews/internal/format"
	"github.com/JawandS/WbgNews/internal/meeting"
	"github.com/JawandS/WbgNews/internal/render"
)

// detailState tracks the meeting open in the detail view. base is the list
// record, shown until the detail payload arrives and merged under it after.
type detailState struct {
	key     string
	base    meeting.Record
	record  meeting.Record
	loading bool
	err     error
}

type detailLoadedMsg struct {
	key    string
	record meeting.Record
	err    error
}

func fetchDetailCmd(ctx context.Context, fetcher api.MeetingFetcher, r meeting.Record) tea.Cmd {
	meetingKey := r.Key()
	return func() tea.Msg {
		rec, err := fetcher.FetchMeetingDetails(ctx, r.Council, r.ID)
		return detailLoadedMsg{key: meetingKey, record: rec, err: err}
	}
}

func (m Model) openDetail(view format.MeetingView) (tea.Model, tea.Cmd) {
	base, ok := m.recordFor(view.Key)
	if !ok {
		return m, nil
	}
	m.detail = detailState{key: view.Key, base: base, record: base}
	m.currentView = ViewDetail
	m.detailViewport.GotoTop()

	var cmd tea.Cmd
	if m.fetcher != nil {
		m.detail.loading = true
		cmd = fetchDetailCmd(m.ctx, m.fetcher, base)
	}
	m.updateDetailViewport()
	return m, cmd
}

func (m *Model) handleDetailLoaded(msg detailLoadedMsg) {
	if msg.key != m.detail.key {
		// The user moved on to another meeting.
		return
	}
	m.detail.loading = false
	if msg.err != nil {
		slog.Warn("load meeting details failed", slog.String("meeting", msg.key), slog.Any("error", msg.err))
		m.detail.err = msg.err
		return
	}
	m.detail.err = nil
	m.detail.record = m.detail.base.Merge(msg.record)
	m.updateDetailViewport()
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Retry):
		if m.detail.err == nil || m.detail.loading || m.fetcher == nil {
			return m, nil
		}
		m.detail.err = nil
		m.detail.loading = true
		return m, fetchDetailCmd(m.ctx, m.fetcher, m.detail.base)
	case key.Matches(msg, m.keys.Up):
		m.detailViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.detailViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
	case key.Matches(msg, m.keys.PageUp):
		m.detailViewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.detailViewport.PageDown()
	}
	return m, nil
}

func (m *Model) updateDetailViewport() {
	if m.detail.key == "" {
		m.detailViewport.SetContent("")
		return
	}
	var b strings.Builder
	_ = m.cards.RenderCard(&b, format.BuildView(m.detail.record), render.Detailed)
	m.detailViewport.SetContent(b.String())
}

// renderDetailContent draws the detail card, or the loading and error
// regions while the payload is outstanding or failed.
func (m Model) renderDetailContent() string {
	switch {
	case m.detail.loading:
		return m.renderLoading("Loading meeting details...")
	case m.detail.err != nil:
		var b strings.Builder
		_ = m.cards.RenderError(&b, errorMessage(m.detail.err))
		return b.String()
	default:
		return m.detailViewport.View()
	}
}
