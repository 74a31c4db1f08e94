package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/JawandS/WbgNews/internal/meeting"
)

// APIError reports a response whose envelope carried success=false.
type APIError struct {
	Endpoint string
	Message  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api %s reported failure", e.Endpoint)
	}
	return fmt.Sprintf("api %s reported failure: %s", e.Endpoint, e.Message)
}

// HealthStatus mirrors /api/health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// Healthy reports whether the backend described itself as healthy.
func (h HealthStatus) Healthy() bool {
	return h.Status == "healthy"
}

// envelope is the {success, error, ...} wrapper the backend puts around
// meeting payloads. Success is a pointer so a missing field can be told
// apart from false.
type envelope struct {
	Success  *bool            `json:"success"`
	Error    string           `json:"error"`
	Meetings []meeting.Record `json:"meetings"`
	Meeting  *meeting.Record  `json:"meeting"`
}

func (e envelope) failed() bool {
	return e.Success != nil && !*e.Success
}

// meetingList accepts either a bare JSON array of records or an envelope.
type meetingList struct {
	records []meeting.Record
	env     envelope
	wrapped bool
}

func (l *meetingList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &l.records)
	}
	if err := json.Unmarshal(trimmed, &l.env); err != nil {
		return err
	}
	l.wrapped = true
	l.records = l.env.Meetings
	return nil
}

// meetingDetail accepts either a bare record or an envelope.
type meetingDetail struct {
	record  meeting.Record
	env     envelope
	wrapped bool
}

func (d *meetingDetail) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	_, hasSuccess := probe["success"]
	_, hasMeeting := probe["meeting"]
	if !hasSuccess && !hasMeeting {
		return json.Unmarshal(data, &d.record)
	}
	if err := json.Unmarshal(data, &d.env); err != nil {
		return err
	}
	d.wrapped = true
	if d.env.Meeting != nil {
		d.record = *d.env.Meeting
	}
	return nil
}
