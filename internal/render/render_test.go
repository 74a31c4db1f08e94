package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JawandS/WbgNews/internal/format"
	"github.com/JawandS/WbgNews/internal/meeting"
)

func sampleView() format.MeetingView {
	return format.BuildView(meeting.Record{
		ID:          "42",
		Council:     meeting.CouncilWilliamsburg,
		Title:       "Regular Meeting",
		CouncilName: "Williamsburg City Council",
		Type:        "Regular",
		Date:        "2024-03-14",
		Time:        "14:00",
		Status:      meeting.StatusCompleted,
		AgendaURL:   "https://example.com/agenda.pdf",
	})
}

func plainTerminal() *Terminal {
	return NewTerminal(DefaultPalette(), WithProfile(termenv.Ascii), WithWidth(100))
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("Detailed")
	require.NoError(t, err)
	assert.Equal(t, Detailed, v)

	v, err = ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, Compact, v)

	_, err = ParseVariant("poster")
	require.Error(t, err)
}

func TestTerminal_CompactCard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, plainTerminal().RenderCard(&buf, sampleView(), Compact))

	out := buf.String()
	assert.Contains(t, out, "Regular Meeting")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "March 14, 2024")
	assert.Contains(t, out, "2:00 PM")
	assert.Contains(t, out, "https://example.com/agenda.pdf")
	assert.Contains(t, out, "/meeting/williamsburg/42")
	assert.NotContains(t, out, "Minutes")
	assert.NotContains(t, out, "\x1b[")
}

func TestTerminal_DetailedCardShowsMissingDocuments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, plainTerminal().RenderCard(&buf, sampleView(), Detailed))

	out := buf.String()
	assert.Contains(t, out, "Thursday, March 14, 2024")
	assert.Contains(t, out, "View Agenda")
	assert.Contains(t, out, "No Minutes Available")
	assert.Contains(t, out, "View Details")
}

func TestTerminal_Idempotent(t *testing.T) {
	term := NewTerminal(DefaultPalette())
	views := []format.MeetingView{sampleView(), sampleView()}

	var first, second bytes.Buffer
	require.NoError(t, term.RenderList(&first, views, Detailed))
	require.NoError(t, term.RenderList(&second, views, Detailed))
	assert.Equal(t, first.String(), second.String())
}

func TestTerminal_EmptyListAndRegions(t *testing.T) {
	term := plainTerminal()

	var buf bytes.Buffer
	require.NoError(t, term.RenderList(&buf, nil, Compact))
	assert.Contains(t, buf.String(), EmptyListMessage)

	buf.Reset()
	require.NoError(t, term.RenderLoading(&buf, ""))
	assert.Contains(t, buf.String(), DefaultLoadingMessage)

	buf.Reset()
	require.NoError(t, term.RenderError(&buf, "Server unavailable"))
	assert.Contains(t, buf.String(), "Server unavailable")
	assert.Contains(t, buf.String(), "Try Again")
}

func TestTerminal_NilWriter(t *testing.T) {
	require.Error(t, plainTerminal().RenderLoading(nil, "x"))
}

func TestHTML_CompactCard(t *testing.T) {
	h, err := NewHTML()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, h.RenderCard(&buf, sampleView(), Compact))

	out := buf.String()
	assert.Contains(t, out, `class="badge bg-success">Completed</span>`)
	assert.Contains(t, out, `href="https://example.com/agenda.pdf"`)
	assert.Contains(t, out, `href="/meeting/williamsburg/42"`)
	assert.Contains(t, out, "fa-building text-primary")
	assert.NotContains(t, out, "Minutes")
}

func TestHTML_DetailedDisabledActions(t *testing.T) {
	h, err := NewHTML()
	require.NoError(t, err)

	view := sampleView()
	view.Agenda = format.ActionFor("Agenda", "")

	var buf bytes.Buffer
	require.NoError(t, h.RenderCard(&buf, view, Detailed))

	out := buf.String()
	assert.Contains(t, out, `<button class="btn btn-outline-secondary me-2" disabled>No Agenda Available</button>`)
	assert.Contains(t, out, `<button class="btn btn-outline-secondary me-2" disabled>No Minutes Available</button>`)
	assert.Contains(t, out, `class="btn btn-primary">View Details</a>`)
	assert.Contains(t, out, "Thursday, March 14, 2024")
}

func TestHTML_EscapesMarkup(t *testing.T) {
	h, err := NewHTML()
	require.NoError(t, err)

	view := sampleView()
	view.Title = `<script>alert("x")</script>`
	view.Minutes = format.ActionFor("Minutes", `javascript:alert(1)`)

	var buf bytes.Buffer
	require.NoError(t, h.RenderCard(&buf, view, Compact))

	out := buf.String()
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "javascript:alert")
}

func TestHTML_IdempotentList(t *testing.T) {
	h, err := NewHTML()
	require.NoError(t, err)
	views := []format.MeetingView{sampleView()}

	var first, second bytes.Buffer
	require.NoError(t, h.RenderList(&first, views, Compact))
	require.NoError(t, h.RenderList(&second, views, Compact))
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, 1, strings.Count(first.String(), `class="meeting-card`))
}

func TestHTML_LoadingErrorEmpty(t *testing.T) {
	h, err := NewHTML()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, h.RenderLoading(&buf, "Fetching meetings"))
	assert.Contains(t, buf.String(), "Fetching meetings")

	buf.Reset()
	require.NoError(t, h.RenderError(&buf, ""))
	assert.Contains(t, buf.String(), DefaultErrorMessage)
	assert.Contains(t, buf.String(), "Try Again")

	buf.Reset()
	require.NoError(t, h.RenderList(&buf, []format.MeetingView{}, Detailed))
	assert.Contains(t, buf.String(), EmptyListMessage)
}
