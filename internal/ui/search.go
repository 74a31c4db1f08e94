package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JawandS/WbgNews/internal/debounce"
)

// searchState holds the search box. Keystrokes go through a debouncer whose
// callback runs on a timer goroutine; it hands the settled query back to
// the program through events.
type searchState struct {
	active    bool
	input     textinput.Model
	debouncer *debounce.Debouncer[string]
	events    chan string
}

type searchAppliedMsg string

func newSearchState() searchState {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "Search meetings"
	input.CharLimit = 120

	events := make(chan string, 1)
	d := debounce.New(searchDebounce, func(q string) {
		// Keep only the newest query if the UI has not caught up yet.
		select {
		case <-events:
		default:
		}
		select {
		case events <- q:
		default:
		}
	})
	return searchState{input: input, debouncer: d, events: events}
}

func waitForSearchCmd(ctx context.Context, events <-chan string) tea.Cmd {
	return func() tea.Msg {
		select {
		case q := <-events:
			return searchAppliedMsg(q)
		case <-ctx.Done():
			return nil
		}
	}
}

func (m *Model) openSearch() tea.Cmd {
	m.search.active = true
	m.search.input.SetValue(m.filter.Query)
	m.search.input.CursorEnd()
	m.resize()
	return m.search.input.Focus()
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Abandon the search and restore the full list.
		m.search.debouncer.Stop()
		m.search.active = false
		m.search.input.Blur()
		m.search.input.SetValue("")
		m.applySearch("")
		m.resize()
		return m, nil

	case tea.KeyEnter:
		m.search.debouncer.Stop()
		m.search.active = false
		m.search.input.Blur()
		m.applySearch(m.search.input.Value())
		m.resize()
		return m, nil

	case tea.KeyCtrlC:
		m.search.debouncer.Stop()
		return m, tea.Quit
	}

	before := m.search.input.Value()
	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	if value := m.search.input.Value(); value != before {
		m.search.debouncer.Call(value)
	}
	return m, cmd
}

// applySearch filters the list by query and resets the selection.
func (m *Model) applySearch(query string) {
	query = strings.TrimSpace(query)
	if query == m.filter.Query {
		return
	}
	m.filter.Query = query
	m.selected = 0
	m.listViewport.GotoTop()
	m.updateListViewport()
}

func (m Model) searchLineVisible() bool {
	return m.search.active || m.filter.Query != ""
}

func (m Model) renderSearchLine() string {
	if m.search.active {
		return m.search.input.View()
	}
	styles := m.theme.Styles()
	return styles.FaintText.Render("/ ") + styles.AccentText.Render(m.filter.Query) +
		styles.FaintText.Render("  (esc to clear)")
}
