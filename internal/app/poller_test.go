package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/JawandS/WbgNews/internal/logging"
	"github.com/JawandS/WbgNews/internal/meeting"
	"github.com/JawandS/WbgNews/internal/state"
)

type stubFetcher struct {
	mu      sync.Mutex
	records []meeting.Record
	err     error
	calls   int
}

func (s *stubFetcher) FetchMeetings(context.Context) ([]meeting.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.records, s.err
}

func (s *stubFetcher) FetchMeetingDetails(context.Context, meeting.Council, meeting.ID) (meeting.Record, error) {
	return meeting.Record{}, errors.New("not used")
}

func (s *stubFetcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type refreshLog struct {
	mu      sync.Mutex
	counts  []int
	errored int
}

func (r *refreshLog) RecordRefresh(count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.errored++
		return
	}
	r.counts = append(r.counts, count)
}

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Minute

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Minute},
		{"negative failures", -1, 2 * time.Minute},
		{"one failure", 1, 4 * time.Minute},
		{"two failures", 2, 8 * time.Minute},
		{"three failures", 3, 16 * time.Minute},
		{"four failures capped", 4, 30 * time.Minute}, // Would be 32m, capped to 30m
		{"many failures capped", 60, 30 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	// Verify that backoff never exceeds maxBackoff regardless of input
	baseInterval := 5 * time.Minute
	for failures := 0; failures <= 20; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

func TestPollerRefreshUpdatesStore(t *testing.T) {
	store := &state.Store{}
	fetcher := &stubFetcher{records: []meeting.Record{{ID: "1", Council: meeting.CouncilWilliamsburg}}}
	rec := &refreshLog{}
	p := NewPoller(store, fetcher, 0, logging.Discard(), rec)

	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	snap := store.Snapshot()
	if !snap.HasMeetings || len(snap.Meetings) != 1 {
		t.Fatalf("snapshot meetings = %d (has=%v), want 1", len(snap.Meetings), snap.HasMeetings)
	}
	if len(rec.counts) != 1 || rec.counts[0] != 1 {
		t.Fatalf("recorded counts = %v, want [1]", rec.counts)
	}

	fetcher.err = errors.New("connection refused")
	if err := p.Refresh(context.Background()); err == nil {
		t.Fatal("Refresh error = nil, want failure")
	}
	snap = store.Snapshot()
	if snap.LastError == nil || snap.ConsecutiveFailures != 1 {
		t.Fatalf("snapshot error = %v failures = %d", snap.LastError, snap.ConsecutiveFailures)
	}
	if len(snap.Meetings) != 1 {
		t.Fatalf("failed refresh dropped cached meetings")
	}
	if rec.errored != 1 {
		t.Fatalf("recorded failures = %d, want 1", rec.errored)
	}
}

func TestPollerRefreshIgnoresShutdown(t *testing.T) {
	store := &state.Store{}
	fetcher := &stubFetcher{err: context.Canceled}
	p := NewPoller(store, fetcher, 0, logging.Discard(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = p.Refresh(ctx)

	if snap := store.Snapshot(); snap.LastError != nil {
		t.Fatalf("shutdown recorded as failure: %v", snap.LastError)
	}
}

func TestPollerRunDisabledFetchesOnce(t *testing.T) {
	fetcher := &stubFetcher{}
	p := NewPoller(&state.Store{}, fetcher, 0, logging.Discard(), nil)

	done := make(chan error, 1)
	go func() { done <- p.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return with auto refresh disabled")
	}
	if got := fetcher.callCount(); got != 1 {
		t.Fatalf("fetch calls = %d, want 1", got)
	}
}

func TestPollerRunRefreshesUntilCancelled(t *testing.T) {
	fetcher := &stubFetcher{}
	p := NewPoller(&state.Store{}, fetcher, 5*time.Millisecond, logging.Discard(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for fetcher.callCount() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("fetch calls = %d, want >= 3", fetcher.callCount())
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
