package format

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JawandS/WbgNews/internal/meeting"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:05", "12:05 AM"},
		{"09:00", "9:00 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"13:30", "1:30 PM"},
		{"23:59", "11:59 PM"},
		{"18:30:00", "6:30 PM"},
		{"7:5", "7:5 AM"},
		{"not-a-time", "not-a-time"},
		{"ab:30", "ab:30"},
		{"24:00", "24:00"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.want {
			t.Fatalf("FormatTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []DateOptions
		want string
	}{
		{name: "iso", in: "2024-03-15", want: "March 15, 2024"},
		{name: "rfc3339", in: "2024-03-15T18:30:00Z", want: "March 15, 2024"},
		{name: "us numeric", in: "03/15/2024", want: "March 15, 2024"},
		{name: "weekday", in: "2024-03-15", opts: []DateOptions{LongDateOptions}, want: "Friday, March 15, 2024"},
		{name: "numeric month", in: "2024-03-15", opts: []DateOptions{{Month: StyleNumeric}}, want: "3/15/2024"},
		{name: "short month no year", in: "2024-03-15", opts: []DateOptions{{Month: StyleShort, Year: StyleOmit}}, want: "Mar 15"},
		{name: "later options win", in: "2024-03-15", opts: []DateOptions{LongDateOptions, {Weekday: StyleShort}}, want: "Fri, March 15, 2024"},
		{name: "unparseable", in: "sometime soon", want: "sometime soon"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.in, tt.opts...); got != tt.want {
				t.Fatalf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBadgeForIsBinary(t *testing.T) {
	for _, status := range []meeting.Status{"upcoming", "", "Completed", "cancelled", "completed "} {
		if got := BadgeFor(status); got != BadgeUpcoming {
			t.Fatalf("BadgeFor(%q) = %v, want upcoming", status, got)
		}
	}
	if got := BadgeFor(meeting.StatusCompleted); got != BadgeCompleted {
		t.Fatalf("BadgeFor(completed) = %v, want completed", got)
	}
	if BadgeCompleted.Label() != "Completed" || BadgeUpcoming.Label() != "Upcoming" {
		t.Fatalf("unexpected badge labels")
	}
}

func TestAccentFor(t *testing.T) {
	if got := AccentFor(meeting.CouncilWilliamsburg); got != AccentPrimary {
		t.Fatalf("williamsburg accent = %v, want primary", got)
	}
	if got := AccentFor(meeting.CouncilJamesCity); got != AccentSuccess {
		t.Fatalf("james_city accent = %v, want success", got)
	}
	if got := AccentFor(meeting.Council("york_county")); got != AccentNeutral {
		t.Fatalf("unknown accent = %v, want neutral", got)
	}
}

func TestActionFor(t *testing.T) {
	got := ActionFor("Agenda", "")
	if got.Enabled || got.URL != "" {
		t.Fatalf("empty url action = %+v, want disabled", got)
	}
	got = ActionFor("Agenda", "   ")
	if got.Enabled {
		t.Fatalf("blank url action should be disabled")
	}
	const link = "https://example.com/a b?x=1&y=<2>"
	got = ActionFor("Minutes", link)
	if !got.Enabled || got.URL != link {
		t.Fatalf("action = %+v, want enabled with literal url", got)
	}
}

func TestBuildView(t *testing.T) {
	rec := meeting.Record{
		ID:        "42",
		Council:   meeting.CouncilJamesCity,
		Title:     "Board of Supervisors",
		Type:      "Regular",
		Date:      "2024-03-15",
		Time:      "18:30",
		Status:    meeting.StatusCompleted,
		AgendaURL: "https://example.com/agenda.pdf",
		Location:  "Building F",
	}
	want := MeetingView{
		ID:              "42",
		Council:         meeting.CouncilJamesCity,
		Key:             "james_city/42",
		Title:           "Board of Supervisors",
		CouncilName:     "James City County",
		Type:            "Regular",
		Location:        "Building F",
		DisplayDate:     "March 15, 2024",
		DisplayLongDate: "Friday, March 15, 2024",
		DisplayTime:     "6:30 PM",
		Badge:           BadgeCompleted,
		Accent:          AccentSuccess,
		Agenda:          Action{Label: "Agenda", URL: "https://example.com/agenda.pdf", Enabled: true},
		Minutes:         Action{Label: "Minutes"},
		DetailsPath:     "/meeting/james_city/42",
	}
	if diff := cmp.Diff(want, BuildView(rec)); diff != "" {
		t.Fatalf("BuildView mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildViewKeepsCouncilName(t *testing.T) {
	v := BuildView(meeting.Record{ID: "1", Council: meeting.CouncilWilliamsburg, CouncilName: "City Council"})
	if v.CouncilName != "City Council" {
		t.Fatalf("CouncilName = %q, want %q", v.CouncilName, "City Council")
	}
}

func TestDetailsPathEscapes(t *testing.T) {
	got := DetailsPath(meeting.Council("a b"), meeting.ID("x/y"))
	if got != "/meeting/a%20b/x%2Fy" {
		t.Fatalf("DetailsPath = %q", got)
	}
}

func TestBuildViewsAndIndex(t *testing.T) {
	records := []meeting.Record{
		{ID: "1", Council: meeting.CouncilWilliamsburg, Title: "first"},
		{ID: "1", Council: meeting.CouncilJamesCity, Title: "second"},
		{ID: "2", Council: meeting.CouncilWilliamsburg, Title: "third"},
	}
	views := BuildViews(records)
	if len(views) != 3 {
		t.Fatalf("len(views) = %d, want 3", len(views))
	}
	for i, v := range views {
		if v.Title != records[i].Title {
			t.Fatalf("views[%d].Title = %q, want %q", i, v.Title, records[i].Title)
		}
	}
	idx := Index(views)
	if len(idx) != 3 {
		t.Fatalf("len(index) = %d, want 3", len(idx))
	}
	if idx["james_city/1"].Title != "second" {
		t.Fatalf("index lookup = %q, want second", idx["james_city/1"].Title)
	}
}
