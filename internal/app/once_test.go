package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/JawandS/WbgNews/internal/meeting"
	"github.com/JawandS/WbgNews/internal/render"
)

func TestRunOnceHTML(t *testing.T) {
	fetcher := &stubFetcher{records: []meeting.Record{{
		ID:        "7",
		Council:   meeting.CouncilJamesCity,
		Title:     "Board of Supervisors",
		Date:      "2024-03-12",
		Time:      "17:00",
		Status:    meeting.StatusCompleted,
		AgendaURL: "https://example.com/agenda.pdf",
	}}}

	var buf bytes.Buffer
	if err := RunOnce(context.Background(), fetcher, &buf, FormatHTML, render.Compact); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Board of Supervisors", `href="https://example.com/agenda.pdf"`, "/meeting/james_city/7"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunOnceText(t *testing.T) {
	fetcher := &stubFetcher{records: []meeting.Record{{ID: "1", Council: meeting.CouncilWilliamsburg, Title: "Work Session", Date: "2024-03-15", Time: "14:30"}}}

	var buf bytes.Buffer
	if err := RunOnce(context.Background(), fetcher, &buf, "", render.Detailed); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Work Session", "Friday, March 15, 2024", "2:30 PM", "No Minutes Available"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunOnceFailureWritesErrorRegion(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}

	var buf bytes.Buffer
	err := RunOnce(context.Background(), fetcher, &buf, FormatHTML, render.Compact)
	if err == nil {
		t.Fatal("RunOnce error = nil, want failure")
	}
	if !strings.Contains(buf.String(), "Try Again") {
		t.Fatalf("output missing retry affordance:\n%s", buf.String())
	}
}

func TestNewRendererRejectsUnknownFormat(t *testing.T) {
	if _, err := NewRenderer("pdf", &bytes.Buffer{}); err == nil {
		t.Fatal("NewRenderer(pdf) error = nil")
	}
	if _, err := NewRenderer(" HTML ", &bytes.Buffer{}); err != nil {
		t.Fatalf("NewRenderer(HTML): %v", err)
	}
}
