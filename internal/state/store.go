package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/JawandS/WbgNews/internal/api"
	"github.com/JawandS/WbgNews/internal/meeting"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Meetings            []meeting.Record
	HasMeetings         bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive fetch failures

	Health      api.HealthStatus
	HasHealth   bool
	HealthError error
}

// IsOffline returns true when the API has been unreachable for multiple fetches.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Loading reports whether no fetch has completed yet, successful or not.
func (s Snapshot) Loading() bool {
	return !s.HasMeetings && s.LastError == nil
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored meetings. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(meetings []meeting.Record, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Meetings = cloneMeetings(meetings)
	s.snapshot.HasMeetings = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// SetHealth records the result of the startup health probe.
func (s *Store) SetHealth(status api.HealthStatus, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.HealthError = err
		s.snapshot.HasHealth = false
		return
	}
	s.snapshot.Health = status
	s.snapshot.HasHealth = true
	s.snapshot.HealthError = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Meetings = cloneMeetings(s.snapshot.Meetings)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	if s.snapshot.HealthError != nil {
		snap.HealthError = fmt.Errorf("%w", s.snapshot.HealthError)
	}
	return snap
}

func cloneMeetings(items []meeting.Record) []meeting.Record {
	if len(items) == 0 {
		return nil
	}
	dup := make([]meeting.Record, len(items))
	copy(dup, items)
	return dup
}
