package meeting

import (
	"encoding/json"
	"testing"
)

func TestRecord_DecodesStringAndNumericIDs(t *testing.T) {
	payload := `[
		{"id": "wbg-1", "council": "williamsburg", "status": "completed"},
		{"id": 42, "council": "James-City", "status": "upcoming", "agenda_url": null}
	]`
	var records []Record
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if records[0].ID != "wbg-1" {
		t.Fatalf("ID = %q, want wbg-1", records[0].ID)
	}
	if records[1].ID != "42" {
		t.Fatalf("ID = %q, want 42", records[1].ID)
	}
	if records[1].Council != CouncilJamesCity {
		t.Fatalf("Council = %q, want %q", records[1].Council, CouncilJamesCity)
	}
	if records[1].AgendaURL != "" {
		t.Fatalf("AgendaURL = %q, want empty", records[1].AgendaURL)
	}
	if got := records[1].Key(); got != "james_city/42" {
		t.Fatalf("Key = %q, want james_city/42", got)
	}
}

func TestID_RejectsObjects(t *testing.T) {
	var id ID
	if err := json.Unmarshal([]byte(`{"x":1}`), &id); err == nil {
		t.Fatalf("Unmarshal object returned nil error")
	}
}

func TestStatus_CompletedIsExact(t *testing.T) {
	cases := map[Status]bool{
		"completed":  true,
		"Completed":  false,
		"upcoming":   false,
		"":           false,
		"cancelled":  false,
		"completed ": false,
	}
	for status, want := range cases {
		if got := status.Completed(); got != want {
			t.Fatalf("Status(%q).Completed() = %v, want %v", status, got, want)
		}
	}
}

func TestCouncil_KnownAndLabel(t *testing.T) {
	if !CouncilWilliamsburg.Known() || !CouncilJamesCity.Known() {
		t.Fatalf("recognized councils reported unknown")
	}
	other := ParseCouncil(" York ")
	if other.Known() {
		t.Fatalf("ParseCouncil(York).Known() = true, want false")
	}
	if other.Label() != "york" {
		t.Fatalf("Label = %q, want york", other.Label())
	}
	if CouncilJamesCity.Label() != "James City County" {
		t.Fatalf("Label = %q", CouncilJamesCity.Label())
	}
}

func TestRecordMerge(t *testing.T) {
	list := Record{ID: "7", Council: CouncilWilliamsburg, Title: "City Council", Status: StatusUpcoming, AgendaURL: "a.pdf"}
	detail := Record{ID: "other", Council: CouncilJamesCity, Status: StatusCompleted, MinutesURL: "m.pdf", AISummary: "Budget adopted."}

	got := list.Merge(detail)
	if got.ID != "7" || got.Council != CouncilWilliamsburg {
		t.Fatalf("identity changed: %s", got.Key())
	}
	if got.Title != "City Council" || got.AgendaURL != "a.pdf" {
		t.Fatalf("empty detail fields overwrote list fields: %+v", got)
	}
	if got.Status != StatusCompleted || got.MinutesURL != "m.pdf" || got.AISummary != "Budget adopted." {
		t.Fatalf("detail fields not applied: %+v", got)
	}
}
