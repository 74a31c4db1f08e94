package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/JawandS/WbgNews/internal/httpclient"
	"github.com/JawandS/WbgNews/internal/meeting"
)

const (
	meetingsPath = "/api/meetings"
	meetingPath  = "/api/meeting/"
	healthPath   = "/api/health"
)

// MeetingFetcher is implemented by *Service and faked in UI and poller tests.
type MeetingFetcher interface {
	FetchMeetings(ctx context.Context) ([]meeting.Record, error)
	FetchMeetingDetails(ctx context.Context, council meeting.Council, id meeting.ID) (meeting.Record, error)
}

var _ MeetingFetcher = (*Service)(nil)

// Requester is the subset of *httpclient.Client the service needs.
type Requester interface {
	Request(ctx context.Context, target string, opts httpclient.RequestOptions, dest any) error
	RequestRetries(ctx context.Context, target string, opts httpclient.RequestOptions, retries int, dest any) error
}

// Service talks to the meetings API.
type Service struct {
	client Requester
}

// NewService wraps client.
func NewService(client Requester) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("requester is nil")
	}
	return &Service{client: client}, nil
}

// FetchMeetings retrieves every meeting, newest first as served.
func (s *Service) FetchMeetings(ctx context.Context) ([]meeting.Record, error) {
	if s == nil {
		return nil, fmt.Errorf("service is nil")
	}
	var payload meetingList
	if err := s.client.Request(ctx, meetingsPath, httpclient.RequestOptions{}, &payload); err != nil {
		return nil, fmt.Errorf("fetch meetings: %w", err)
	}
	if payload.wrapped && payload.env.failed() {
		return nil, &APIError{Endpoint: meetingsPath, Message: payload.env.Error}
	}
	if payload.records == nil {
		return []meeting.Record{}, nil
	}
	return payload.records, nil
}

// FetchMeetingDetails retrieves one meeting. Councils outside
// meeting.Councils are still requested; the backend decides.
func (s *Service) FetchMeetingDetails(ctx context.Context, council meeting.Council, id meeting.ID) (meeting.Record, error) {
	if s == nil {
		return meeting.Record{}, fmt.Errorf("service is nil")
	}
	if strings.TrimSpace(string(council)) == "" {
		return meeting.Record{}, fmt.Errorf("council required")
	}
	if strings.TrimSpace(string(id)) == "" {
		return meeting.Record{}, fmt.Errorf("meeting id required")
	}
	path := DetailsEndpoint(council, id)
	var payload meetingDetail
	if err := s.client.Request(ctx, path, httpclient.RequestOptions{}, &payload); err != nil {
		return meeting.Record{}, fmt.Errorf("fetch meeting %s/%s: %w", council, id, err)
	}
	if payload.wrapped && payload.env.failed() {
		return meeting.Record{}, &APIError{Endpoint: path, Message: payload.env.Error}
	}
	rec := payload.record
	if rec.ID == "" {
		rec.ID = id
	}
	if rec.Council == "" {
		rec.Council = council
	}
	return rec, nil
}

// Health performs a single unretried request to /api/health.
func (s *Service) Health(ctx context.Context) (HealthStatus, error) {
	if s == nil {
		return HealthStatus{}, fmt.Errorf("service is nil")
	}
	var status HealthStatus
	if err := s.client.RequestRetries(ctx, healthPath, httpclient.RequestOptions{}, 0, &status); err != nil {
		return HealthStatus{}, fmt.Errorf("health check: %w", err)
	}
	return status, nil
}

// DetailsEndpoint is the API path for one meeting.
func DetailsEndpoint(council meeting.Council, id meeting.ID) string {
	return meetingPath + url.PathEscape(string(council)) + "/" + url.PathEscape(string(id))
}
