package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type noticeLevel int

const (
	levelInfo noticeLevel = iota
	levelWarn
	levelError
)

type notification struct {
	id    int
	text  string
	level noticeLevel
}

type notificationExpiredMsg int

// notify queues a transient message. Each one carries its own timer, so
// dismissing one never cancels another.
func (m Model) notify(text string, level noticeLevel) (Model, tea.Cmd) {
	m.nextNoteID++
	id := m.nextNoteID
	m.notifications = append(m.notifications, notification{id: id, text: text, level: level})
	if len(m.notifications) > maxNotifications {
		m.notifications = m.notifications[len(m.notifications)-maxNotifications:]
	}
	return m, tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return notificationExpiredMsg(id)
	})
}

func (m *Model) dismiss(id int) {
	kept := m.notifications[:0:0]
	for _, n := range m.notifications {
		if n.id != id {
			kept = append(kept, n)
		}
	}
	m.notifications = kept
}

// renderNotification shows the newest notification, or nothing.
func (m Model) renderNotification(styles Styles, bg BgStyle) string {
	if len(m.notifications) == 0 {
		return ""
	}
	n := m.notifications[len(m.notifications)-1]
	style := styles.InfoText
	switch n.level {
	case levelWarn:
		style = styles.WarningText
	case levelError:
		style = styles.DangerText
	}
	return bg.Render(truncate(n.text, maxInt(m.width-4, 10)), style)
}
