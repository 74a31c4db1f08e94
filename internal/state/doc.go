// Package state provides thread-safe state shared by the poller and the UI.
//
// # Overview
//
// The Store holds the most recent meeting list fetched from the API along
// with error bookkeeping. The poller is the only writer; the UI reads
// snapshots on its own schedule.
//
//	Producer (poller):             Consumer (UI):
//	┌──────────────────┐          ┌──────────────────┐
//	│ FetchMeetings()  │          │                  │
//	│      ↓           │          │                  │
//	│ store.Update()   │─────────→│ store.Snapshot() │
//	│      ↓           │ (mutex)  │      ↓           │
//	│  wait interval   │          │  render views    │
//	└──────────────────┘          └──────────────────┘
//
// # Update Semantics
//
//	// Success: replace the meeting list
//	store.Update(meetings, nil)
//	→ snapshot.Meetings = meetings
//	→ snapshot.HasMeetings = true
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Failure: keep the old list, record the error
//	store.Update(nil, err)
//	→ snapshot.Meetings = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// LastUpdated is stamped in both cases. Two failures in a row mark the
// snapshot offline.
//
// The startup health probe reports through SetHealth and never touches the
// meeting fields.
//
// # Copying
//
// Snapshot copies the meeting slice and wraps stored errors with %w, so the
// caller can mutate what it gets and still use errors.As on LastError.
//
// The zero Store is ready to use.
package state
