package ui

import (
	"testing"

	"github.com/JawandS/WbgNews/internal/format"
	"github.com/JawandS/WbgNews/internal/meeting"
)

func sampleRecords() []meeting.Record {
	return []meeting.Record{
		{ID: "1", Council: meeting.CouncilWilliamsburg, Title: "City Council Regular Meeting", Date: "2024-03-14", Time: "14:00", Status: meeting.StatusCompleted, AgendaURL: "https://example.com/a1.pdf"},
		{ID: "2", Council: meeting.CouncilJamesCity, Title: "Board of Supervisors Budget Work Session", Date: "2024-04-09", Time: "16:00", Status: meeting.StatusUpcoming, Location: "Building F"},
		{ID: "3", Council: meeting.CouncilWilliamsburg, Title: "Planning Commission", Date: "2024-04-17", Time: "18:30", Status: meeting.StatusUpcoming},
	}
}

func titles(views []format.MeetingView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Title)
	}
	return out
}

func TestFilterViews(t *testing.T) {
	views := format.BuildViews(sampleRecords())

	tests := []struct {
		name   string
		filter listFilter
		want   []string
	}{
		{"no filter", listFilter{}, []string{"City Council Regular Meeting", "Board of Supervisors Budget Work Session", "Planning Commission"}},
		{"council", listFilter{Council: meeting.CouncilWilliamsburg}, []string{"City Council Regular Meeting", "Planning Commission"}},
		{"status upcoming", listFilter{Status: StatusUpcoming}, []string{"Board of Supervisors Budget Work Session", "Planning Commission"}},
		{"status completed", listFilter{Status: StatusCompleted}, []string{"City Council Regular Meeting"}},
		{"query case insensitive", listFilter{Query: "BUDGET"}, []string{"Board of Supervisors Budget Work Session"}},
		{"query matches location", listFilter{Query: "building f"}, []string{"Board of Supervisors Budget Work Session"}},
		{"query all terms", listFilter{Query: "planning budget"}, []string{}},
		{"combined", listFilter{Council: meeting.CouncilWilliamsburg, Status: StatusUpcoming, Query: "planning"}, []string{"Planning Commission"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(filterViews(views, tt.filter))
			if len(got) != len(tt.want) {
				t.Fatalf("filterViews = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("filterViews[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNextCouncilCycles(t *testing.T) {
	c := meeting.Council("")
	var seen []meeting.Council
	for i := 0; i < len(meeting.Councils)+1; i++ {
		c = nextCouncil(c)
		seen = append(seen, c)
	}
	if seen[0] != meeting.CouncilWilliamsburg || seen[1] != meeting.CouncilJamesCity || seen[2] != "" {
		t.Fatalf("nextCouncil cycle = %q", seen)
	}
	if got := nextCouncil("hampton"); got != "" {
		t.Fatalf("nextCouncil(unknown) = %q, want all", got)
	}
}

func TestStatusFilterCycle(t *testing.T) {
	f := StatusAll
	want := []StatusFilter{StatusUpcoming, StatusCompleted, StatusAll}
	for _, w := range want {
		f = f.Next()
		if f != w {
			t.Fatalf("Next = %v, want %v", f, w)
		}
	}
	if got := StatusCompleted.Label(); got != "Completed" {
		t.Fatalf("Label = %q, want %q", got, "Completed")
	}
}

func TestListFilterActive(t *testing.T) {
	if (listFilter{}).active() {
		t.Fatal("zero filter reported active")
	}
	if !(listFilter{Query: "x"}).active() {
		t.Fatal("query filter reported inactive")
	}
	if (listFilter{Query: "   "}).active() {
		t.Fatal("blank query reported active")
	}
}
