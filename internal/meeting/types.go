// Package meeting defines the meeting records served by the meetings API.
package meeting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Council identifies the body that held a meeting.
type Council string

const (
	CouncilWilliamsburg Council = "williamsburg"
	CouncilJamesCity    Council = "james_city"
)

// Councils lists the recognized councils in display order.
var Councils = []Council{CouncilWilliamsburg, CouncilJamesCity}

// ParseCouncil normalizes a council identifier. Unrecognized values are kept
// verbatim (lowercased) so they can still be displayed and routed.
func ParseCouncil(value string) Council {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "williamsburg":
		return CouncilWilliamsburg
	case "james_city", "james-city", "jamescity":
		return CouncilJamesCity
	}
	return Council(v)
}

// Known reports whether c is one of Councils.
func (c Council) Known() bool {
	return c == CouncilWilliamsburg || c == CouncilJamesCity
}

// Label returns the human-readable council name.
func (c Council) Label() string {
	switch c {
	case CouncilWilliamsburg:
		return "Williamsburg City Council"
	case CouncilJamesCity:
		return "James City County"
	}
	return string(c)
}

// UnmarshalJSON normalizes the council identifier.
func (c *Council) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("council: %w", err)
	}
	*c = ParseCouncil(raw)
	return nil
}

// Status is the lifecycle state reported for a meeting.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusUpcoming  Status = "upcoming"
)

// Completed reports whether s is exactly "completed". Every other value,
// including empty and unknown ones, counts as upcoming.
func (s Status) Completed() bool {
	return s == StatusCompleted
}

// ID is an opaque meeting identifier, unique within a council. The API emits
// it as either a JSON string or a number.
type ID string

// UnmarshalJSON accepts string and numeric identifiers.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("meeting id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("meeting id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Record mirrors a meeting as returned by /api/meetings and
// /api/meeting/{council}/{id}.
type Record struct {
	ID          ID      `json:"id"`
	Council     Council `json:"council"`
	Title       string  `json:"title"`
	CouncilName string  `json:"council_name"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      Status  `json:"status"`
	AgendaURL   string  `json:"agenda_url,omitempty"`
	MinutesURL  string  `json:"minutes_url,omitempty"`

	// Detail-only fields.
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	AISummary   string `json:"ai_summary,omitempty"`
}

// Key identifies r across councils.
func (r Record) Key() string {
	return string(r.Council) + "/" + string(r.ID)
}

// Merge overlays the non-empty fields of detail onto r. The identity of r
// (council and id) is kept.
func (r Record) Merge(detail Record) Record {
	out := r
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&out.Title, detail.Title)
	set(&out.CouncilName, detail.CouncilName)
	set(&out.Type, detail.Type)
	set(&out.Date, detail.Date)
	set(&out.Time, detail.Time)
	set(&out.AgendaURL, detail.AgendaURL)
	set(&out.MinutesURL, detail.MinutesURL)
	set(&out.Location, detail.Location)
	set(&out.Description, detail.Description)
	set(&out.AISummary, detail.AISummary)
	if detail.Status != "" {
		out.Status = detail.Status
	}
	return out
}
